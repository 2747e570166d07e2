// Package quiz implements the five-step evaluation flow as an immutable reducer.
//
// A State is never mutated in place: Reduce returns a new State or an error
// and leaves its input untouched.
package quiz

import (
	"fmt"

	"github.com/okian/claimtrainer/internal/domain/evaluation"
	"github.com/okian/claimtrainer/internal/domain/model"
)

// Quiz steps.
const (
	StepAssessment    = 1
	StepRedFlags      = 2
	StepDecision      = 3
	StepJustification = 4
	StepNextSteps     = 5

	FirstStep  = StepAssessment
	TotalSteps = StepNextSteps
)

// Phase is the lifecycle position of a session.
type Phase string

// Phases.
const (
	InProgress Phase = "in_progress"
	Submitted  Phase = "submitted"
	Complete   Phase = "complete"
)

// State is a quiz session snapshot.
type State struct {
	Step     int                    `json:"step"`
	Phase    Phase                  `json:"phase"`
	ShowHint bool                   `json:"show_hint"`
	Response model.TrainingResponse `json:"response"`
	Result   *evaluation.Result     `json:"result,omitempty"`
}

// New returns the initial state: step 1 with an empty response.
func New() State {
	return State{
		Step:  FirstStep,
		Phase: InProgress,
		Response: model.TrainingResponse{
			RedFlags:  []string{},
			NextSteps: []string{},
		},
	}
}

// Progress is the completion percentage shown above the steps.
func (s State) Progress() float64 {
	return float64(s.Step) / TotalSteps * 100
}

// CanGoBack reports whether Previous is enabled.
func (s State) CanGoBack() bool {
	return s.Phase == InProgress && s.Step > FirstStep
}

// CanSubmit reports whether Submit is offered instead of Next.
func (s State) CanSubmit() bool {
	return s.Phase == InProgress && s.Step == TotalSteps
}

// ActionType names a transition.
type ActionType string

// Actions.
const (
	SetAssessment    ActionType = "set_assessment"
	ToggleRedFlag    ActionType = "toggle_red_flag"
	SetDecision      ActionType = "set_decision"
	SetJustification ActionType = "set_justification"
	ToggleNextStep   ActionType = "toggle_next_step"
	Next             ActionType = "next"
	Previous         ActionType = "previous"
	ToggleHint       ActionType = "toggle_hint"
	Submit           ActionType = "submit"
	ReviewAnswers    ActionType = "review_answers"
	Finish           ActionType = "finish"
)

// Action is one trainee input. Value carries the selection and Checked
// the checkbox state for toggles.
type Action struct {
	Type    ActionType `json:"type"`
	Value   string     `json:"value,omitempty"`
	Checked bool       `json:"checked,omitempty"`
}

// fieldStep binds each edit action to the only step that shows its field.
var fieldStep = map[ActionType]int{ //nolint:gochecknoglobals // fixed transition table
	SetAssessment:    StepAssessment,
	ToggleRedFlag:    StepRedFlags,
	SetDecision:      StepDecision,
	SetJustification: StepJustification,
	ToggleNextStep:   StepNextSteps,
}

// Reduce applies action to s. claim is the ground truth used on Submit.
func Reduce(s State, claim model.Claim, a Action) (State, error) {
	if step, ok := fieldStep[a.Type]; ok {
		if s.Phase != InProgress || s.Step != step {
			return s, fmt.Errorf("%w: %s at step %d (%s)", ErrInvalidTransition, a.Type, s.Step, s.Phase)
		}
		return edit(s, a)
	}

	next := s
	next.Response = s.Response.Clone()
	switch a.Type {
	case Next:
		if s.Phase != InProgress || s.Step >= TotalSteps {
			return s, invalid(s, a)
		}
		next.Step++
	case Previous:
		if !s.CanGoBack() {
			return s, invalid(s, a)
		}
		next.Step--
	case ToggleHint:
		if s.Phase != InProgress {
			return s, invalid(s, a)
		}
		next.ShowHint = !s.ShowHint
	case Submit:
		if !s.CanSubmit() {
			return s, invalid(s, a)
		}
		res := evaluation.Score(next.Response, claim)
		next.Phase = Submitted
		next.Result = &res
	case ReviewAnswers:
		if s.Phase != Submitted {
			return s, invalid(s, a)
		}
		next.Phase = InProgress
		next.Step = FirstStep
		next.Result = nil
	case Finish:
		if s.Phase != Submitted {
			return s, invalid(s, a)
		}
		next.Phase = Complete
	default:
		return s, fmt.Errorf("%w: action %q", ErrInvalidValue, a.Type)
	}
	return next, nil
}

func invalid(s State, a Action) error {
	return fmt.Errorf("%w: %s at step %d (%s)", ErrInvalidTransition, a.Type, s.Step, s.Phase)
}

func edit(s State, a Action) (State, error) {
	next := s
	r := s.Response.Clone()
	switch a.Type {
	case SetAssessment:
		v, err := model.ParseAssessment(a.Value)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		r.FraudAssessment = v
	case ToggleRedFlag:
		flag, err := model.ResolveRedFlag(a.Value)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		r.RedFlags = model.Toggle(r.RedFlags, flag, a.Checked)
	case SetDecision:
		v, err := model.ParseDecision(a.Value)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		r.Decision = v
	case SetJustification:
		r.Justification = a.Value
	case ToggleNextStep:
		ns, err := model.ResolveNextStep(a.Value)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		r.NextSteps = model.Toggle(r.NextSteps, ns.ID, a.Checked)
	}
	next.Response = r
	return next, nil
}
