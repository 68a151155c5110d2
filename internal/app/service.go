// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	repository "github.com/tapinapp/wordle-leaderboard/internal/adapters/repository"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/ranking"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/types"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/username"
	"github.com/tapinapp/wordle-leaderboard/pkg/logger"
	"github.com/tapinapp/wordle-leaderboard/pkg/metrics"
)

// Service owns the score store and drives the ranker. One instance is
// constructed by the process and injected into request handlers.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	usernameSeed int64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithUsernameSeed seeds the username generator for reproducible names.
// Zero keeps the clock-seeded default.
func WithUsernameSeed(seed int64) Option {
	return func(s *Service) {
		s.usernameSeed = seed
	}
}

// WithStore injects a pre-built store. Mainly for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components. Calling Start on a started
// service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		var storeOpts []repository.Option
		if s.usernameSeed != 0 {
			storeOpts = append(storeOpts, repository.WithUsernameGenerator(
				username.NewGenerator(username.WithSeed(s.usernameSeed)),
			))
		}
		s.store = repository.NewMemoryStore(ctx, storeOpts...)
	}

	s.started = true
	s.logger.Info(ctx, "leaderboard service started")
	return nil
}

// Stop shuts the service down. The store is in-memory; state is dropped
// with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "leaderboard service stopped")
}

// SubmitScore validates and stores a submission, returning the created
// record. Errors wrap model.ErrInvalidScore and leave the store unchanged.
func (s *Service) SubmitScore(ctx context.Context, sub repository.Submission) (model.Score, error) {
	score, err := s.store.Submit(ctx, sub)
	if err != nil {
		s.logger.Debug(ctx, "submission rejected",
			logger.Int("guesses", sub.Guesses),
			logger.String("puzzle_date", sub.PuzzleDate),
			logger.Error(err),
		)
		return model.Score{}, err
	}

	s.logger.Debug(ctx, "score stored",
		logger.String("id", score.ID),
		logger.String("username", score.Username),
		logger.String("puzzle_date", score.PuzzleDate),
	)
	return score, nil
}

// Leaderboard returns up to limit ranked entries for the given date. The
// limit arrives pre-clamped by the HTTP layer; the ranker still defends
// against out-of-range values.
func (s *Service) Leaderboard(ctx context.Context, puzzleDate string, limit int) []types.Entry {
	records := s.store.Query(ctx, puzzleDate)
	metrics.RecordLeaderboardQuery()
	return ranking.Rank(records, limit)
}

// Dates returns every puzzle date currently holding records.
func (s *Service) Dates(ctx context.Context) []string {
	return s.store.ListDates(ctx)
}

// Clear removes all records for one day. Idempotent.
func (s *Service) Clear(ctx context.Context, puzzleDate string) {
	s.store.Clear(ctx, puzzleDate)
	s.logger.Info(ctx, "cleared scores", logger.String("puzzle_date", puzzleDate))
}

// ClearAll wipes the whole store. Idempotent.
func (s *Service) ClearAll(ctx context.Context) {
	s.store.ClearAll(ctx)
	s.logger.Info(ctx, "cleared all scores")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		ctx := context.Background()
		days := len(s.store.ListDates(ctx))
		records := s.store.Count(ctx)

		stats["days"] = days
		stats["records"] = records

		metrics.UpdateStoreDays(days)
		metrics.UpdateStoreRecords(records)
	}

	return stats
}
