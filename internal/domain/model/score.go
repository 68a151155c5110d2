// Package model contains domain models passed between layers.
package model

import "fmt"

// Guess bounds for a single Wordle round.
const (
	MinGuesses = 1
	MaxGuesses = 6
)

// Score represents one submitted puzzle result. Records are immutable once
// created; the store assigns the ID at submission time.
type Score struct {
	ID          string // store-assigned unique id
	Username    string // supplied by the caller or generated by the store
	Guesses     int    // number of guesses taken, MinGuesses..MaxGuesses
	TimeSeconds int    // elapsed solve time in seconds, >= 0
	PuzzleDate  string // partition key, YYYY-MM-DD
}

// Validate reports whether the submitted values satisfy the record
// invariants. It never inspects the ID or username, which the store fills in.
func (s Score) Validate() error {
	if s.Guesses < MinGuesses || s.Guesses > MaxGuesses {
		return fmt.Errorf("%w: guesses must be between %d and %d", ErrInvalidScore, MinGuesses, MaxGuesses)
	}
	if s.TimeSeconds < 0 {
		return fmt.Errorf("%w: time_seconds must be non-negative", ErrInvalidScore)
	}
	if s.PuzzleDate == "" {
		return fmt.Errorf("%w: puzzle_date must not be empty", ErrInvalidScore)
	}
	return nil
}
