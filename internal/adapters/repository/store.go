// Package repository defines the score store interface and errors.
package repository

import (
	"context"

	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
)

// Submission carries the caller-provided fields of a score submission.
// Username may be empty, in which case the store generates one.
type Submission struct {
	Guesses     int
	TimeSeconds int
	PuzzleDate  string
	Username    string
}

// Store is the authoritative keeper of submitted scores, partitioned by
// puzzle date. Implementations must be safe for concurrent use.
type Store interface {
	// Submit validates and persists a new score, assigning its id (and a
	// generated username when none is supplied). Validation happens before
	// any mutation: a rejected submission leaves the store unchanged and
	// returns an error wrapping model.ErrInvalidScore.
	Submit(ctx context.Context, sub Submission) (model.Score, error)

	// Query returns a snapshot of the day's records in submission order.
	// The returned slice is an isolated copy; a day with no submissions
	// yields an empty slice, never an error.
	Query(ctx context.Context, puzzleDate string) []model.Score

	// Clear removes all records for one day. Clearing an empty or unknown
	// day is a no-op.
	Clear(ctx context.Context, puzzleDate string)

	// ClearAll wipes the entire store.
	ClearAll(ctx context.Context)

	// ListDates returns the dates that currently hold at least one record,
	// sorted ascending.
	ListDates(ctx context.Context) []string

	// Count returns the total number of records across all days.
	Count(ctx context.Context) int
}
