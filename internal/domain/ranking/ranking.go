// Package ranking turns a day's unordered score records into an ordered,
// ranked, display-ready leaderboard.
package ranking

import (
	"sort"
	"strings"

	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/types"
)

// GuessMarker is the glyph repeated once per guess in the display column.
const GuessMarker = "🟩"

// Rank sorts records by guesses ascending, then time ascending, truncates to
// limit, and assigns 1-based ranks within the truncated result.
//
// The sort is stable: records with identical (guesses, timeSeconds) keep
// their relative input order, so repeated calls over the same snapshot yield
// identical output. The input slice is never mutated. A limit below 1 is
// treated as 1; a limit beyond the input length returns every record.
func Rank(records []model.Score, limit int) []types.Entry {
	if limit < 1 {
		limit = 1
	}

	// Sort a copy so the caller's snapshot stays in submission order.
	sorted := make([]model.Score, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Guesses != sorted[j].Guesses {
			return sorted[i].Guesses < sorted[j].Guesses
		}
		return sorted[i].TimeSeconds < sorted[j].TimeSeconds
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	top := sorted[:limit]

	entries := make([]types.Entry, len(top))
	for i, s := range top {
		entries[i] = types.Entry{
			Rank:           i + 1,
			Username:       s.Username,
			Guesses:        s.Guesses,
			GuessesDisplay: FormatGuesses(s.Guesses),
			TimeSeconds:    s.TimeSeconds,
		}
	}
	return entries
}

// FormatGuesses renders a guess count as repeated marker glyphs, e.g. 3 -> "🟩🟩🟩".
func FormatGuesses(guesses int) string {
	if guesses < 0 {
		return ""
	}
	return strings.Repeat(GuessMarker, guesses)
}
