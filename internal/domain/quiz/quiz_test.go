package quiz_test

import (
	"errors"
	"testing"

	"github.com/okian/claimtrainer/internal/domain/evaluation"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/quiz"
	. "github.com/smartystreets/goconvey/convey"
)

func apply(s quiz.State, claim model.Claim, actions ...quiz.Action) (quiz.State, error) {
	var err error
	for _, a := range actions {
		s, err = quiz.Reduce(s, claim, a)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

func TestNewState(t *testing.T) {
	Convey("Given a new quiz", t, func() {
		s := quiz.New()

		Convey("Then it should start empty at step 1", func() {
			So(s.Step, ShouldEqual, 1)
			So(s.Phase, ShouldEqual, quiz.InProgress)
			So(s.Response.FraudAssessment, ShouldEqual, model.AssessmentNone)
			So(s.Response.RedFlags, ShouldBeEmpty)
			So(s.Progress(), ShouldEqual, 20)
			So(s.CanGoBack(), ShouldBeFalse)
			So(s.CanSubmit(), ShouldBeFalse)
		})
	})
}

func TestNavigation(t *testing.T) {
	claim := model.Claim{ID: 1, FraudScore: 85}

	Convey("Given a quiz at step 1", t, func() {
		s := quiz.New()

		Convey("When going back", func() {
			_, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Previous})
			So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
		})

		Convey("When advancing to the last step", func() {
			s, err := apply(s, claim,
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
			)
			So(err, ShouldBeNil)

			Convey("Then submit should be offered instead of next", func() {
				So(s.Step, ShouldEqual, 5)
				So(s.Progress(), ShouldEqual, 100)
				So(s.CanSubmit(), ShouldBeTrue)
				_, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Next})
				So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
			})

			Convey("And previous should step back", func() {
				back, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Previous})
				So(err, ShouldBeNil)
				So(back.Step, ShouldEqual, 4)
			})
		})

		Convey("When submitting before step 5", func() {
			_, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Submit})
			So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
		})

		Convey("When sending an unknown action", func() {
			_, err := quiz.Reduce(s, claim, quiz.Action{Type: "teleport"})
			So(errors.Is(err, quiz.ErrInvalidValue), ShouldBeTrue)
		})
	})
}

func TestEdits(t *testing.T) {
	claim := model.Claim{ID: 3, FraudScore: 92}

	Convey("Given a quiz", t, func() {
		s := quiz.New()

		Convey("When editing a field on its own step", func() {
			next, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.SetAssessment, Value: "high"})
			So(err, ShouldBeNil)
			So(next.Response.FraudAssessment, ShouldEqual, model.AssessmentHigh)

			Convey("Then the input state should be untouched", func() {
				So(s.Response.FraudAssessment, ShouldEqual, model.AssessmentNone)
			})
		})

		Convey("When editing a field from another step", func() {
			_, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.SetDecision, Value: "approve"})
			So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
		})

		Convey("When giving a value outside the options", func() {
			_, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.SetAssessment, Value: "extreme"})
			So(errors.Is(err, quiz.ErrInvalidValue), ShouldBeTrue)
			So(errors.Is(err, model.ErrUnknownOption), ShouldBeTrue)
		})

		Convey("When toggling red flags on step 2", func() {
			s, err := apply(s, claim,
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.ToggleRedFlag, Value: "No police report", Checked: true},
				quiz.Action{Type: quiz.ToggleRedFlag, Value: "remote location", Checked: true},
				quiz.Action{Type: quiz.ToggleRedFlag, Value: "No police report", Checked: true},
			)
			So(err, ShouldBeNil)
			So(s.Response.RedFlags, ShouldResemble, []string{"Accident in remote location", "No police report"})

			Convey("Then unchecking should remove the flag", func() {
				s, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.ToggleRedFlag, Value: "No police report"})
				So(err, ShouldBeNil)
				So(s.Response.RedFlags, ShouldResemble, []string{"Accident in remote location"})
			})
		})

		Convey("When toggling next steps on step 5", func() {
			s, err := apply(s, claim,
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.Next},
				quiz.Action{Type: quiz.ToggleNextStep, Value: "witnesses", Checked: true},
				quiz.Action{Type: quiz.ToggleNextStep, Value: "Request police report", Checked: true},
			)
			So(err, ShouldBeNil)
			So(s.Response.NextSteps, ShouldResemble, []string{"police-report", "witnesses"})
		})
	})
}

func TestSubmitAndReview(t *testing.T) {
	claim := model.Claim{ID: 1, FraudScore: 85}

	Convey("Given a fully answered high-risk quiz", t, func() {
		s, err := apply(quiz.New(), claim,
			quiz.Action{Type: quiz.SetAssessment, Value: "high"},
			quiz.Action{Type: quiz.Next},
			quiz.Action{Type: quiz.ToggleRedFlag, Value: "No police report", Checked: true},
			quiz.Action{Type: quiz.ToggleRedFlag, Value: "Multiple recent claims", Checked: true},
			quiz.Action{Type: quiz.ToggleRedFlag, Value: "High claim amount", Checked: true},
			quiz.Action{Type: quiz.Next},
			quiz.Action{Type: quiz.SetDecision, Value: "investigate"},
			quiz.Action{Type: quiz.Next},
			quiz.Action{Type: quiz.SetJustification, Value: "Filed right after policy start"},
			quiz.Action{Type: quiz.Next},
		)
		So(err, ShouldBeNil)

		Convey("When submitting", func() {
			done, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Submit})
			So(err, ShouldBeNil)

			Convey("Then the result should be attached", func() {
				So(done.Phase, ShouldEqual, quiz.Submitted)
				So(done.Result, ShouldNotBeNil)
				So(done.Result.Score, ShouldEqual, 100)
				So(done.Result.Tier, ShouldEqual, evaluation.Excellent)
			})

			Convey("And edits should be rejected", func() {
				_, err := quiz.Reduce(done, claim, quiz.Action{Type: quiz.SetJustification, Value: "x"})
				So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
				_, err = quiz.Reduce(done, claim, quiz.Action{Type: quiz.Submit})
				So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
			})

			Convey("And review should return to step 1 keeping the answers", func() {
				again, err := quiz.Reduce(done, claim, quiz.Action{Type: quiz.ReviewAnswers})
				So(err, ShouldBeNil)
				So(again.Step, ShouldEqual, 1)
				So(again.Phase, ShouldEqual, quiz.InProgress)
				So(again.Result, ShouldBeNil)
				So(again.Response.FraudAssessment, ShouldEqual, model.AssessmentHigh)
				So(len(again.Response.RedFlags), ShouldEqual, 3)
			})

			Convey("And finish should be terminal", func() {
				end, err := quiz.Reduce(done, claim, quiz.Action{Type: quiz.Finish})
				So(err, ShouldBeNil)
				So(end.Phase, ShouldEqual, quiz.Complete)
				for _, a := range []quiz.ActionType{quiz.Next, quiz.Previous, quiz.ToggleHint, quiz.Submit, quiz.ReviewAnswers, quiz.Finish} {
					_, err := quiz.Reduce(end, claim, quiz.Action{Type: a})
					So(errors.Is(err, quiz.ErrInvalidTransition), ShouldBeTrue)
				}
			})
		})
	})
}

func TestHints(t *testing.T) {
	claim := model.Claim{ID: 1, FraudScore: 85, Amount: model.NewAmount(45000), RedFlags: []string{"a", "b"}}

	Convey("Given a quiz with the hint hidden", t, func() {
		s := quiz.New()
		So(quiz.Hint(s, claim), ShouldEqual, "")

		Convey("When the hint is shown on step 1", func() {
			s, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.ToggleHint})
			So(err, ShouldBeNil)
			So(quiz.Hint(s, claim), ShouldEqual, "Look at the claim amount ($45000) and timing of the claim filing.")

			Convey("Then step 2 should count documented red flags", func() {
				s, err := quiz.Reduce(s, claim, quiz.Action{Type: quiz.Next})
				So(err, ShouldBeNil)
				So(quiz.Hint(s, claim), ShouldEqual, "This claim has 2 documented red flags.")
				So(quiz.Hint(s, model.Claim{FraudScore: 10}), ShouldEqual, "")
			})

			Convey("And a missing amount should read N/A", func() {
				So(quiz.Hint(s, model.Claim{FraudScore: 10}), ShouldEqual, "Look at the claim amount (N/A) and timing of the claim filing.")
			})
		})
	})
}

func TestStep(t *testing.T) {
	Convey("Given the step copy", t, func() {
		info, ok := quiz.Step(4)
		So(ok, ShouldBeTrue)
		So(info.Title, ShouldEqual, "Provide Justification")
		So(info.Tip, ShouldNotBeEmpty)

		_, ok = quiz.Step(6)
		So(ok, ShouldBeFalse)
	})
}
