package service

import (
	"time"

	"github.com/okian/claimtrainer/internal/adapters/repository"
	"github.com/okian/claimtrainer/internal/domain/claims"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/quiz"
	"github.com/okian/claimtrainer/internal/domain/risk"
)

// ClaimDetail is a claim with its risk analysis.
type ClaimDetail struct {
	claims.Row
	RecommendedAction risk.Action `json:"recommended_action"`
}

func newClaimDetail(c model.Claim) ClaimDetail {
	return ClaimDetail{
		Row:               claims.Present([]model.Claim{c})[0],
		RecommendedAction: risk.RecommendedAction(c.FraudScore),
	}
}

// ListOptions are the browser's select values and the quiz catalogs.
type ListOptions struct {
	Categories []string          `json:"categories"`
	Statuses   []string          `json:"statuses"`
	Columns    map[string]string `json:"columns"`
	RedFlags   []string          `json:"red_flags"`
	NextSteps  []model.NextStep  `json:"next_steps"`
}

// SessionView is a quiz session as shown to the trainee.
type SessionView struct {
	ID        string        `json:"id"`
	ClaimID   int           `json:"claim_id"`
	Claim     model.Claim   `json:"claim"`
	State     quiz.State    `json:"state"`
	Step      quiz.StepInfo `json:"step"`
	Progress  float64       `json:"progress"`
	Hint      string        `json:"hint,omitempty"`
	CanGoBack bool          `json:"can_go_back"`
	CanSubmit bool          `json:"can_submit"`
	StartedAt time.Time     `json:"started_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newSessionView(sess repository.Session, c model.Claim) SessionView {
	info, _ := quiz.Step(sess.State.Step)
	return SessionView{
		ID:        sess.ID,
		ClaimID:   sess.ClaimID,
		Claim:     c,
		State:     sess.State,
		Step:      info,
		Progress:  sess.State.Progress(),
		Hint:      quiz.Hint(sess.State, c),
		CanGoBack: sess.State.CanGoBack(),
		CanSubmit: sess.State.CanSubmit(),
		StartedAt: sess.StartedAt,
		UpdatedAt: sess.UpdatedAt,
	}
}
