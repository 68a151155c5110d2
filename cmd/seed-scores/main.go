// Command seed-scores submits randomized score batches to a running
// leaderboard server and verifies the returned rankings.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tapinapp/wordle-leaderboard/internal/seedscores"
	"github.com/tapinapp/wordle-leaderboard/pkg/logger"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "base URL of the service")
		numScores = flag.Int("scores", 200, "number of scores to submit")
		numDays   = flag.Int("days", 3, "number of puzzle dates to spread scores over")
		workers   = flag.Int("workers", runtime.NumCPU()*2, "number of concurrent submitters")
		limit     = flag.Int("limit", 10, "leaderboard limit requested during verification")
		timeout   = flag.Duration("timeout", 30*time.Second, "HTTP request timeout")
		verbose   = flag.Bool("verbose", false, "enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config := &seedscores.Config{
		BaseURL:   *baseURL,
		NumScores: *numScores,
		NumDays:   *numDays,
		Workers:   *workers,
		Limit:     *limit,
		Timeout:   *timeout,
		Verbose:   *verbose,
	}

	if err := seedscores.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "seed run failed", logger.Error(err))
		os.Exit(1)
	}
}
