// Package types contains common types used across the application
package types

// Entry represents a ranked leaderboard entry. Entries are derived at query
// time and never persisted; Rank is the 1-based position within the
// truncated result set that produced the entry.
type Entry struct {
	Rank           int    `json:"rank"`
	Username       string `json:"username"`
	Guesses        int    `json:"guesses"`
	GuessesDisplay string `json:"guesses_display"`
	TimeSeconds    int    `json:"time_seconds"`
}
