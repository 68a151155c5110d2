package model_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tapinapp/wordle-leaderboard/internal/domain/model"
)

func TestScore_Validate(t *testing.T) {
	Convey("Given a score submission", t, func() {
		valid := model.Score{
			Username:    "SwiftFalcon",
			Guesses:     4,
			TimeSeconds: 120,
			PuzzleDate:  "2026-02-02",
		}

		Convey("When every guess count in range is used", func() {
			for guesses := model.MinGuesses; guesses <= model.MaxGuesses; guesses++ {
				s := valid
				s.Guesses = guesses
				So(s.Validate(), ShouldBeNil)
			}
		})

		Convey("When guesses is below the minimum", func() {
			s := valid
			s.Guesses = 0

			err := s.Validate()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, model.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When guesses is above the maximum", func() {
			s := valid
			s.Guesses = 7

			err := s.Validate()
			So(errors.Is(err, model.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When time is negative", func() {
			s := valid
			s.TimeSeconds = -1

			err := s.Validate()
			So(errors.Is(err, model.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When the puzzle date is empty", func() {
			s := valid
			s.PuzzleDate = ""

			err := s.Validate()
			So(errors.Is(err, model.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When time is zero", func() {
			s := valid
			s.TimeSeconds = 0

			So(s.Validate(), ShouldBeNil)
		})
	})
}
