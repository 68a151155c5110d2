package ranking_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
	"github.com/tapinapp/wordle-leaderboard/internal/domain/ranking"
)

func score(username string, guesses, timeSeconds int) model.Score {
	return model.Score{
		ID:          username + "-id",
		Username:    username,
		Guesses:     guesses,
		TimeSeconds: timeSeconds,
		PuzzleDate:  "2026-02-02",
	}
}

func TestRank_Ordering(t *testing.T) {
	Convey("Given three scores for one day", t, func() {
		records := []model.Score{
			score("Alpha", 4, 120),
			score("Bravo", 3, 95),
			score("Charlie", 3, 200),
		}

		Convey("When ranking with limit 5", func() {
			entries := ranking.Rank(records, 5)

			Convey("Then fewer guesses win and faster time breaks ties", func() {
				So(entries, ShouldHaveLength, 3)

				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Guesses, ShouldEqual, 3)
				So(entries[0].TimeSeconds, ShouldEqual, 95)

				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].Guesses, ShouldEqual, 3)
				So(entries[1].TimeSeconds, ShouldEqual, 200)

				So(entries[2].Rank, ShouldEqual, 3)
				So(entries[2].Guesses, ShouldEqual, 4)
				So(entries[2].TimeSeconds, ShouldEqual, 120)
			})

			Convey("And every adjacent pair satisfies the ordering law", func() {
				for i := 1; i < len(entries); i++ {
					a, b := entries[i-1], entries[i]
					ordered := a.Guesses < b.Guesses ||
						(a.Guesses == b.Guesses && a.TimeSeconds <= b.TimeSeconds)
					So(ordered, ShouldBeTrue)
				}
			})
		})
	})
}

func TestRank_Limit(t *testing.T) {
	Convey("Given twelve scores for one day", t, func() {
		records := make([]model.Score, 0, 12)
		for i := 0; i < 12; i++ {
			records = append(records, score("Player", i%6+1, 60+i))
		}

		Convey("When ranking with limit 10", func() {
			entries := ranking.Rank(records, 10)

			Convey("Then exactly ten entries come back with ranks 1..10", func() {
				So(entries, ShouldHaveLength, 10)
				for i, e := range entries {
					So(e.Rank, ShouldEqual, i+1)
				}
			})
		})

		Convey("When the limit exceeds the input length", func() {
			entries := ranking.Rank(records, 50)

			Convey("Then every record is returned", func() {
				So(entries, ShouldHaveLength, 12)
			})
		})

		Convey("When the limit is below one", func() {
			entries := ranking.Rank(records, 0)

			Convey("Then it is treated as one", func() {
				So(entries, ShouldHaveLength, 1)
			})
		})
	})
}

func TestRank_EmptyInput(t *testing.T) {
	Convey("Given no scores", t, func() {
		entries := ranking.Rank(nil, 5)

		Convey("Then the result is empty, not an error", func() {
			So(entries, ShouldNotBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}

func TestRank_Idempotent(t *testing.T) {
	Convey("Given a fixed record set", t, func() {
		records := []model.Score{
			score("Alpha", 5, 300),
			score("Bravo", 2, 45),
			score("Charlie", 2, 45),
			score("Delta", 4, 10),
		}

		Convey("When ranking twice with the same limit", func() {
			first := ranking.Rank(records, 10)
			second := ranking.Rank(records, 10)

			Convey("Then both results are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestRank_StableTies(t *testing.T) {
	Convey("Given records with identical (guesses, time)", t, func() {
		records := []model.Score{
			score("First", 3, 100),
			score("Second", 3, 100),
			score("Third", 3, 100),
		}

		Convey("When ranking", func() {
			entries := ranking.Rank(records, 10)

			Convey("Then exact ties keep submission order", func() {
				So(entries[0].Username, ShouldEqual, "First")
				So(entries[1].Username, ShouldEqual, "Second")
				So(entries[2].Username, ShouldEqual, "Third")
			})
		})
	})
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	Convey("Given records in submission order", t, func() {
		records := []model.Score{
			score("Alpha", 6, 500),
			score("Bravo", 1, 30),
		}

		Convey("When ranking", func() {
			ranking.Rank(records, 10)

			Convey("Then the input slice is untouched", func() {
				So(records[0].Username, ShouldEqual, "Alpha")
				So(records[1].Username, ShouldEqual, "Bravo")
			})
		})
	})
}

func TestFormatGuesses(t *testing.T) {
	Convey("Given guess counts 1 through 6", t, func() {
		Convey("Then the display repeats one marker per guess", func() {
			for guesses := 1; guesses <= 6; guesses++ {
				So(strings.Count(ranking.FormatGuesses(guesses), ranking.GuessMarker), ShouldEqual, guesses)
			}
		})
	})

	Convey("Given a ranked result", t, func() {
		entries := ranking.Rank([]model.Score{score("Alpha", 4, 120)}, 1)

		Convey("Then the entry display matches its guesses", func() {
			So(entries[0].GuessesDisplay, ShouldEqual, strings.Repeat(ranking.GuessMarker, 4))
		})
	})
}
