package seedscores

import (
	"context"
	"math/rand"
	"time"

	"github.com/tapinapp/wordle-leaderboard/pkg/logger"
)

// Guess distribution weights: most rounds finish in 3-5 guesses.
var guessWeights = []int{2, 8, 25, 30, 25, 10} // index 0 -> 1 guess

// Solve time bounds in seconds.
const (
	minSolveSeconds = 20
	maxSolveSeconds = 900
)

// generateSubmissions builds randomized submissions spread across the
// configured number of consecutive puzzle dates, ending today.
func generateSubmissions(ctx context.Context, config *Config, stats *Stats) []Submission {
	logger.Get().Info(ctx, "generating submissions",
		logger.Int("numScores", config.NumScores),
		logger.Int("numDays", config.NumDays),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // load generation, not crypto

	days := make([]string, config.NumDays)
	today := time.Now().UTC()
	for i := range days {
		days[i] = today.AddDate(0, 0, -i).Format("2006-01-02")
	}

	subs := make([]Submission, config.NumScores)
	for i := range subs {
		subs[i] = Submission{
			Guesses:     weightedGuesses(rng),
			TimeSeconds: minSolveSeconds + rng.Intn(maxSolveSeconds-minSolveSeconds),
			PuzzleDate:  days[rng.Intn(len(days))],
		}
	}

	stats.ScoresGenerated = len(subs)
	return subs
}

// weightedGuesses draws a guess count from the distribution above.
func weightedGuesses(rng *rand.Rand) int {
	total := 0
	for _, w := range guessWeights {
		total += w
	}
	n := rng.Intn(total)
	for i, w := range guessWeights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return len(guessWeights)
}
