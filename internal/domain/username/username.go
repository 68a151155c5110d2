// Package username generates display names for anonymous submissions.
package username

import (
	"math/rand"
	"time"
)

// Adjectives drawn for the first half of a generated name.
var adjectives = []string{
	"Swift", "Brave", "Clever", "Mighty", "Noble",
	"Bold", "Quick", "Sharp", "Bright", "Keen",
	"Agile", "Fierce", "Lucky", "Calm", "Wise",
	"Golden", "Silver", "Cosmic", "Epic", "Grand",
	"Royal", "Mystic", "Ancient", "Stellar", "Thunder",
}

// Nouns drawn for the second half of a generated name.
var nouns = []string{
	"Falcon", "Otter", "Wolf", "Eagle", "Bear",
	"Tiger", "Lion", "Hawk", "Fox", "Deer",
	"Panda", "Koala", "Shark", "Dragon", "Phoenix",
	"Mustang", "Aggie", "Knight", "Warrior", "Champion",
	"Legend", "Pioneer", "Voyager", "Ranger", "Scout",
}

// Generator produces Adjective+Noun names, e.g. "SwiftFalcon". Both words
// are drawn uniformly with replacement; collisions between records are
// allowed and expected, so there is no uniqueness check.
type Generator struct {
	rng *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic. Intended for tests.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // display names, not secrets
	}
}

// NewGenerator creates a Generator seeded from the clock unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // display names, not secrets
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new Adjective+Noun name with no separator.
func (g *Generator) Generate() string {
	adjective := adjectives[g.rng.Intn(len(adjectives))]
	noun := nouns[g.rng.Intn(len(nouns))]
	return adjective + noun
}
