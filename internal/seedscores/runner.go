package seedscores

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tapinapp/wordle-leaderboard/pkg/logger"
)

// Run executes the full seed-and-verify cycle: health check, concurrent
// submission, then per-day leaderboard verification.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting seed run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("scores", config.NumScores),
		logger.Int("days", config.NumDays),
		logger.Int("workers", config.Workers),
	)

	c := newClient(config.BaseURL, config.Timeout)

	if err := c.checkHealth(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	subs := generateSubmissions(ctx, config, stats)

	if err := submitAll(ctx, config, c, subs, stats); err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	if err := verifyDays(ctx, config, c, subs, stats); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "seed run completed",
		logger.Int("generated", stats.ScoresGenerated),
		logger.Int("submitted", stats.ScoresSubmitted),
		logger.Int("successful", stats.ScoresSuccessful),
		logger.Int("failed", stats.ScoresFailed),
		logger.Int("daysVerified", stats.DaysVerified),
		logger.String("duration", stats.Duration.String()),
	)
	return nil
}

// submitAll posts every submission using the configured worker count.
func submitAll(ctx context.Context, config *Config, c *client, subs []Submission, stats *Stats) error {
	var successful, failed atomic.Int64

	jobs := make(chan Submission)
	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				if err := c.submit(ctx, sub); err != nil {
					failed.Add(1)
					if config.Verbose {
						logger.Get().Warn(ctx, "submission failed", logger.Error(err))
					}
					continue
				}
				successful.Add(1)
			}
		}()
	}

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- sub:
		}
	}
	close(jobs)
	wg.Wait()

	stats.ScoresSubmitted = len(subs)
	stats.ScoresSuccessful = int(successful.Load())
	stats.ScoresFailed = int(failed.Load())
	return nil
}

// verifyDays fetches each seeded day's leaderboard and checks the ordering
// and size laws.
func verifyDays(ctx context.Context, config *Config, c *client, subs []Submission, stats *Stats) error {
	countByDay := make(map[string]int)
	for _, sub := range subs {
		countByDay[sub.PuzzleDate]++
	}

	for day, count := range countByDay {
		entries, err := c.leaderboard(ctx, day, config.Limit)
		if err != nil {
			return err
		}

		want := count
		if config.Limit < want {
			want = config.Limit
		}
		if len(entries) != want {
			return fmt.Errorf("day %s: got %d entries, want %d", day, len(entries), want)
		}

		for i, e := range entries {
			if e.Rank != i+1 {
				return fmt.Errorf("day %s: entry %d has rank %d", day, i, e.Rank)
			}
			if strings.Count(e.GuessesDisplay, "🟩") != e.Guesses {
				return fmt.Errorf("day %s: rank %d display does not match guesses", day, e.Rank)
			}
			if i == 0 {
				continue
			}
			prev := entries[i-1]
			if e.Guesses < prev.Guesses ||
				(e.Guesses == prev.Guesses && e.TimeSeconds < prev.TimeSeconds) {
				return fmt.Errorf("day %s: ordering violated at rank %d", day, e.Rank)
			}
		}
		stats.DaysVerified++
	}
	return nil
}
