// Package evaluation scores a trainee's answers against a claim's true risk band.
//
// The rubric has three independent checks. Each awards its full weight or
// nothing, so the only reachable totals are 0, 30, 40, 60, 70 and 100.
package evaluation

import (
	"slices"
	"strings"

	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/risk"
)

// Tier is the feedback bucket a total falls into.
type Tier string

// Feedback tiers.
const (
	Excellent   Tier = "excellent"
	Good        Tier = "good"
	NeedsReview Tier = "needs_review"
)

// Tier floors. Excellent at 80 is only reachable with a perfect 100 because
// 70 is the next reachable total below it.
const (
	ExcellentThreshold = 80
	GoodThreshold      = 60
)

// Check names.
const (
	CheckRiskAssessment = "RiskAssessment"
	CheckRedFlagCount   = "RedFlagCount"
	CheckDecision       = "Decision"
)

// Check is one rubric component.
type Check struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// Checks is the full rubric.
var Checks = []Check{ //nolint:gochecknoglobals // fixed rubric
	{
		Name:        CheckRiskAssessment,
		Description: "Fraud assessment matches the claim's risk band",
		Weight:      40,
	},
	{
		Name:        CheckRedFlagCount,
		Description: "Number of red flags selected fits the claim's risk band",
		Weight:      30,
	},
	{
		Name:        CheckDecision,
		Description: "Decision matches the recommended action",
		Weight:      30,
	},
}

// flagRule is the red-flag count expected per band.
var flagRule = map[risk.Level]func(n int) bool{ //nolint:gochecknoglobals // fixed rubric
	risk.High:   func(n int) bool { return n >= 3 },
	risk.Medium: func(n int) bool { return n >= 2 },
	risk.Low:    func(n int) bool { return n <= 1 },
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Check
	Passed  bool `json:"passed"`
	Awarded int  `json:"awarded"`
}

// Analysis is the expected answer shown after submission.
type Analysis struct {
	RiskLevel         risk.Level  `json:"risk_level"`
	FraudScore        float64     `json:"fraud_score"`
	RedFlags          []string    `json:"red_flags,omitempty"`
	RecommendedAction risk.Action `json:"recommended_action"`
}

// Lines renders the analysis as display lines.
func (a Analysis) Lines() []string {
	lines := []string{"Risk Level: " + a.RiskLevel.Title() + " (" + formatScore(a.FraudScore) + "%)"}
	if len(a.RedFlags) > 0 {
		lines = append(lines, "Red Flags: "+strings.Join(a.RedFlags, ", "))
	}
	action := string(a.RecommendedAction)
	if action != "" {
		action = strings.ToUpper(action[:1]) + action[1:]
	}
	return append(lines, "Recommended Action: "+action)
}

// Result is a scored submission.
type Result struct {
	Score           int           `json:"score"`
	Tier            Tier          `json:"tier"`
	Checks          []CheckResult `json:"checks"`
	Feedback        Feedback      `json:"feedback"`
	CorrectAnalysis Analysis      `json:"correct_analysis"`
}

// Score evaluates response against the claim's fraud score. Unanswered
// fields simply fail their check. Score is pure.
func Score(response model.TrainingResponse, claim model.Claim) Result {
	level := risk.Band(claim.FraudScore)
	passed := map[string]bool{
		CheckRiskAssessment: response.FraudAssessment == model.Assessment(level),
		CheckRedFlagCount:   flagRule[level](len(response.RedFlags)),
		CheckDecision:       response.Decision == model.Decision(risk.ActionFor(level)),
	}

	res := Result{Checks: make([]CheckResult, 0, len(Checks))}
	for _, c := range Checks {
		cr := CheckResult{Check: c, Passed: passed[c.Name]}
		if cr.Passed {
			cr.Awarded = c.Weight
		}
		res.Score += cr.Awarded
		res.Checks = append(res.Checks, cr)
	}
	res.Tier = TierOf(res.Score)
	res.Feedback = FeedbackFor(res.Tier, res.Score)
	res.CorrectAnalysis = Analysis{
		RiskLevel:         level,
		FraudScore:        claim.FraudScore,
		RedFlags:          slices.Clone(claim.RedFlags),
		RecommendedAction: risk.ActionFor(level),
	}
	return res
}

// TierOf maps a total to its tier.
func TierOf(score int) Tier {
	switch {
	case score >= ExcellentThreshold:
		return Excellent
	case score >= GoodThreshold:
		return Good
	default:
		return NeedsReview
	}
}

// MaxScore is the sum of all check weights.
func MaxScore() int {
	total := 0
	for _, c := range Checks {
		total += c.Weight
	}
	return total
}
