// Package drill implements a scripted trainee that walks the quiz for every
// claim with the ideal answers and checks that each one scores full marks.
package drill

import "time"

// Config holds configuration for a drill run.
type Config struct {
	BaseURL string        // Base URL of the service
	Workers int           // Number of concurrent trainees
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every claim result
}

// claimRow is the part of a claims list row the drill reads.
type claimRow struct {
	ID         int     `json:"id"`
	FraudScore float64 `json:"fraud_score"`
}

type claimsResponse struct {
	Claims []claimRow `json:"claims"`
	Total  int        `json:"total"`
}

type options struct {
	RedFlags  []string `json:"red_flags"`
	NextSteps []struct {
		ID string `json:"id"`
	} `json:"next_steps"`
}

// Action is one quiz action as sent to the service.
type Action struct {
	Type    string `json:"type"`
	Value   string `json:"value,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}

type session struct {
	ID    string `json:"id"`
	State struct {
		Phase  string `json:"phase"`
		Result *struct {
			Score int    `json:"score"`
			Tier  string `json:"tier"`
		} `json:"result"`
	} `json:"state"`
}

type dashboard struct {
	Metrics struct {
		ClaimsReviewed int `json:"claims_reviewed"`
	} `json:"metrics"`
}

// Outcome is the drill result for one claim.
type Outcome struct {
	ClaimID int
	Score   int
	Tier    string
	Err     error
}

// Report summarises a drill run.
type Report struct {
	Claims   int
	Passed   int
	Failed   []Outcome
	Reviewed int
	Duration time.Duration
}
