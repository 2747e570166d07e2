package quiz

import (
	"strconv"

	"github.com/okian/claimtrainer/internal/domain/model"
)

// StepInfo describes what a step shows.
type StepInfo struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Tip    string `json:"tip,omitempty"`
}

var steps = [TotalSteps]StepInfo{ //nolint:gochecknoglobals // fixed step copy
	{Number: StepAssessment, Title: "Initial Risk Assessment", Prompt: "Based on the claim information, what is your initial fraud risk assessment?"},
	{Number: StepRedFlags, Title: "Identify Red Flags", Prompt: "Select all red flags that apply to this claim:"},
	{Number: StepDecision, Title: "Make a Decision", Prompt: "Based on your analysis, what is your recommendation?"},
	{
		Number: StepJustification,
		Title:  "Provide Justification",
		Prompt: "Explain your reasoning for this decision:",
		Tip:    "Include specific evidence, red flags identified, and policy considerations in your justification.",
	},
	{Number: StepNextSteps, Title: "Next Steps", Prompt: "Select the appropriate next steps:"},
}

// Step returns the copy for step n, or false when n is out of range.
func Step(n int) (StepInfo, bool) {
	if n < FirstStep || n > TotalSteps {
		return StepInfo{}, false
	}
	return steps[n-1], true
}

// Hint returns the hint text for the current step, or "" when the step has
// none or the hint is hidden.
func Hint(s State, claim model.Claim) string {
	if !s.ShowHint || s.Phase != InProgress {
		return ""
	}
	switch s.Step {
	case StepAssessment:
		amount := "N/A"
		if claim.Amount.Valid && !claim.Amount.Decimal.IsZero() {
			amount = "$" + claim.Amount.Decimal.String()
		}
		return "Look at the claim amount (" + amount + ") and timing of the claim filing."
	case StepRedFlags:
		if claim.RedFlags == nil {
			return ""
		}
		return "This claim has " + strconv.Itoa(len(claim.RedFlags)) + " documented red flags."
	}
	return ""
}
