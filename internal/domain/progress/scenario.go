package progress

import (
	"strconv"
)

// Scenario is a dashboard training scenario bound to one claim.
type Scenario struct {
	ID          int     `koanf:"id" json:"id"`
	Title       string  `koanf:"title" json:"title" validate:"required"`
	Description string  `koanf:"description" json:"description"`
	Difficulty  string  `koanf:"difficulty" json:"difficulty"`
	FraudScore  float64 `koanf:"fraud_score" json:"fraud_score" validate:"gte=0,lte=100"`
	ClaimID     int     `koanf:"claim_id" json:"claim_id" validate:"gt=0"`
}

// DefaultScenarios is the built-in training queue.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{ID: 1, Title: "High-Risk Auto Claim", Description: "Multiple red flags detected", Difficulty: "Advanced", FraudScore: 85, ClaimID: 1},
		{ID: 2, Title: "Routine Home Insurance", Description: "Standard claim processing", Difficulty: "Beginner", FraudScore: 15, ClaimID: 2},
		{ID: 3, Title: "Suspicious Vehicle Theft", Description: "Complex investigation required", Difficulty: "Expert", FraudScore: 92, ClaimID: 3},
		{ID: 4, Title: "Life Insurance Investigation", Description: "Critical analysis needed", Difficulty: "Expert", FraudScore: 95, ClaimID: 7},
	}
}

var difficultyColors = map[string]string{ //nolint:gochecknoglobals // fixed palette
	"Beginner":     "green",
	"Intermediate": "blue",
	"Advanced":     "orange",
	"Expert":       "red",
}

// DifficultyColor returns the label colour for a difficulty.
func DifficultyColor(d string) string {
	if c, ok := difficultyColors[d]; ok {
		return c
	}
	return "grey"
}

// ScenarioView is a scenario decorated with the trainee's progress on it.
type ScenarioView struct {
	Scenario
	DifficultyColor string `json:"difficulty_color"`
	RiskColor       string `json:"risk_color"`
	Completed       bool   `json:"completed"`
	Score           *int   `json:"score,omitempty"`
	ActionLabel     string `json:"action_label"`
	DetailPath      string `json:"detail_path"`
}

// Dashboard is the trainee's overview.
type Dashboard struct {
	Overall   int            `json:"overall_progress"`
	Metrics   Metrics        `json:"metrics"`
	Scenarios []ScenarioView `json:"scenarios"`
}

// BuildDashboard combines the scenario list with a tracker snapshot.
// A scenario counts as completed once its claim has been submitted.
func BuildDashboard(scenarios []Scenario, snap Snapshot) Dashboard {
	d := Dashboard{Metrics: snap.Metrics, Scenarios: make([]ScenarioView, 0, len(scenarios))}
	done := 0
	for _, s := range scenarios {
		v := ScenarioView{
			Scenario:        s,
			DifficultyColor: DifficultyColor(s.Difficulty),
			RiskColor:       "gold",
			ActionLabel:     "Start Training",
			DetailPath:      "/ClaimDetail/" + strconv.Itoa(s.ClaimID),
		}
		if s.FraudScore > 75 {
			v.RiskColor = "red"
		}
		if best, ok := snap.BestScores[s.ClaimID]; ok {
			score := best
			v.Completed = true
			v.Score = &score
			v.ActionLabel = "Review"
			done++
		}
		d.Scenarios = append(d.Scenarios, v)
	}
	d.Overall = percent(done, len(scenarios))
	return d
}
