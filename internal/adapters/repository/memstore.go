package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/username"
	"github.com/tapinapp/wordle-leaderboard/pkg/metrics"
)

// MemoryStore is the in-memory Store implementation: a date-keyed map of
// submission-ordered record slices behind a single RWMutex.
type MemoryStore struct {
	mu     sync.RWMutex
	byDate map[string][]model.Score
	names  *username.Generator
}

// NewMemoryStore creates an empty store. Context is accepted first to
// satisfy the project-wide convention; it is currently unused.
func NewMemoryStore(_ context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byDate: make(map[string][]model.Score),
		names:  username.NewGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit implements Store.
func (s *MemoryStore) Submit(_ context.Context, sub Submission) (model.Score, error) {
	score := model.Score{
		Username:    sub.Username,
		Guesses:     sub.Guesses,
		TimeSeconds: sub.TimeSeconds,
		PuzzleDate:  sub.PuzzleDate,
	}
	// Reject before taking the write lock; nothing is mutated on failure.
	if err := score.Validate(); err != nil {
		metrics.RecordScoreRejected()
		return model.Score{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if score.Username == "" {
		score.Username = s.names.Generate()
	}
	score.ID = uuid.New().String()

	s.byDate[score.PuzzleDate] = append(s.byDate[score.PuzzleDate], score)

	metrics.RecordScoreSubmitted()
	metrics.UpdateStoreDays(len(s.byDate))
	metrics.UpdateStoreRecords(s.countLocked())

	return score, nil
}

// Query implements Store. The returned slice is a copy in submission order.
func (s *MemoryStore) Query(_ context.Context, puzzleDate string) []model.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byDate[puzzleDate]
	out := make([]model.Score, len(records))
	copy(out, records)
	return out
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context, puzzleDate string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byDate, puzzleDate)
	metrics.UpdateStoreDays(len(s.byDate))
	metrics.UpdateStoreRecords(s.countLocked())
}

// ClearAll implements Store.
func (s *MemoryStore) ClearAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byDate = make(map[string][]model.Score)
	metrics.UpdateStoreDays(0)
	metrics.UpdateStoreRecords(0)
}

// ListDates implements Store. Dates come back sorted ascending; the keys are
// ISO dates, so lexicographic order is chronological.
func (s *MemoryStore) ListDates(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]string, 0, len(s.byDate))
	for date := range s.byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked()
}

// countLocked sums record counts; callers must hold at least the read lock.
func (s *MemoryStore) countLocked() int {
	total := 0
	for _, records := range s.byDate {
		total += len(records)
	}
	return total
}
