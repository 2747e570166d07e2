package risk_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/okian/claimtrainer/internal/domain/risk"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBand(t *testing.T) {
	Convey("Given the band thresholds", t, func() {
		Convey("When scoring around the boundaries", func() {
			Convey("Then the bands should meet without gaps", func() {
				So(risk.Band(0), ShouldEqual, risk.Low)
				So(risk.Band(49.999), ShouldEqual, risk.Low)
				So(risk.Band(50), ShouldEqual, risk.Medium)
				So(risk.Band(74.999), ShouldEqual, risk.Medium)
				So(risk.Band(75), ShouldEqual, risk.High)
				So(risk.Band(100), ShouldEqual, risk.High)
			})
		})

		Convey("When scoring outside [0,100]", func() {
			Convey("Then banding should still be total", func() {
				So(risk.Band(-5), ShouldEqual, risk.Low)
				So(risk.Band(250), ShouldEqual, risk.High)
			})
		})
	})
}

func TestRecommendedAction(t *testing.T) {
	Convey("Given 10,000 random scores in [0,100]", t, func() {
		rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic sample

		Convey("Then the action should never disagree with the band", func() {
			want := map[risk.Level]risk.Action{
				risk.High:   risk.Investigate,
				risk.Medium: risk.Review,
				risk.Low:    risk.Approve,
			}
			mismatches := 0
			for i := 0; i < 10000; i++ {
				s := rng.Float64() * 100
				if risk.RecommendedAction(s) != want[risk.Band(s)] {
					mismatches++
				}
			}
			So(mismatches, ShouldEqual, 0)
		})

		Convey("And ActionFor should agree with RecommendedAction", func() {
			for _, s := range []float64{10, 50, 80} {
				So(risk.ActionFor(risk.Band(s)), ShouldEqual, risk.RecommendedAction(s))
			}
		})
	})
}

func TestColorOf(t *testing.T) {
	Convey("Given list colouring", t, func() {
		So(risk.ColorOf(0), ShouldEqual, risk.Grey)
		So(risk.ColorOf(5), ShouldEqual, risk.Green)
		So(risk.ColorOf(24.9), ShouldEqual, risk.Green)
		So(risk.ColorOf(25), ShouldEqual, risk.Gold)
		So(risk.ColorOf(50), ShouldEqual, risk.Orange)
		So(risk.ColorOf(78), ShouldEqual, risk.Red)
	})
}

func TestValidate(t *testing.T) {
	Convey("Given score validation", t, func() {
		Convey("When the score is finite and in range", func() {
			So(risk.Validate(0), ShouldBeNil)
			So(risk.Validate(100), ShouldBeNil)
			So(risk.Validate(62.5), ShouldBeNil)
		})

		Convey("When the score is not usable", func() {
			for _, s := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.1, 100.1} {
				err := risk.Validate(s)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, risk.ErrInvalidScore), ShouldBeTrue)
			}
		})
	})
}

func TestLevelTitle(t *testing.T) {
	Convey("Given risk levels", t, func() {
		So(risk.High.Title(), ShouldEqual, "High")
		So(risk.Medium.Title(), ShouldEqual, "Medium")
		So(risk.Low.Title(), ShouldEqual, "Low")
	})
}
