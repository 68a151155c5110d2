// Package seedscores submits randomized score batches to a running server
// and verifies the returned leaderboards. It is a manual load/smoke tool,
// not part of the serving path.
package seedscores

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumScores  int           // Number of scores to submit
	NumDays    int           // Number of distinct puzzle dates to spread scores over
	Workers    int           // Number of concurrent submitters
	Limit      int           // Leaderboard limit to request during verification
	Timeout    time.Duration // HTTP request timeout
	Verbose    bool          // Enable verbose logging
}

// Submission mirrors the POST /api/leaderboard/score body.
type Submission struct {
	Guesses     int    `json:"guesses"`
	TimeSeconds int    `json:"time_seconds"`
	PuzzleDate  string `json:"puzzle_date"`
}

// Entry mirrors a returned leaderboard entry.
type Entry struct {
	Rank           int    `json:"rank"`
	Username       string `json:"username"`
	Guesses        int    `json:"guesses"`
	GuessesDisplay string `json:"guesses_display"`
	TimeSeconds    int    `json:"time_seconds"`
}

// Stats holds run statistics.
type Stats struct {
	ScoresGenerated  int
	ScoresSubmitted  int
	ScoresSuccessful int
	ScoresFailed     int
	DaysVerified     int
	StartTime        time.Time
	Duration         time.Duration
}
