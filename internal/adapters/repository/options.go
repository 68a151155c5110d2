// Package repository defines the score store interface and errors.
package repository

import "github.com/tapinapp/wordle-leaderboard/internal/domain/username"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithUsernameGenerator overrides the generator used for anonymous
// submissions. Tests use a seeded generator for deterministic names.
func WithUsernameGenerator(g *username.Generator) Option {
	return func(s *MemoryStore) {
		if g != nil {
			s.names = g
		}
	}
}
