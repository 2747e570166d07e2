package model

import (
	"fmt"
	"slices"
	"strings"
)

// Assessment is the trainee's fraud-risk call.
type Assessment string

// Assessments. The empty value means "not answered".
const (
	AssessmentNone   Assessment = ""
	AssessmentLow    Assessment = "low"
	AssessmentMedium Assessment = "medium"
	AssessmentHigh   Assessment = "high"
)

// ParseAssessment accepts low, medium or high in any case.
func ParseAssessment(s string) (Assessment, error) {
	switch a := Assessment(strings.ToLower(strings.TrimSpace(s))); a {
	case AssessmentLow, AssessmentMedium, AssessmentHigh:
		return a, nil
	}
	return AssessmentNone, fmt.Errorf("%w: assessment %q", ErrUnknownOption, s)
}

// Decision is the trainee's handling decision.
type Decision string

// Decisions. The empty value means "not answered".
const (
	DecisionNone        Decision = ""
	DecisionApprove     Decision = "approve"
	DecisionReview      Decision = "review"
	DecisionInvestigate Decision = "investigate"
	DecisionDeny        Decision = "deny"
)

// ParseDecision accepts approve, review, investigate or deny in any case.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(s))); d {
	case DecisionApprove, DecisionReview, DecisionInvestigate, DecisionDeny:
		return d, nil
	}
	return DecisionNone, fmt.Errorf("%w: decision %q", ErrUnknownOption, s)
}

// TrainingResponse holds a trainee's answers for one quiz session.
// RedFlags and NextSteps are sets kept as sorted, duplicate-free slices.
type TrainingResponse struct {
	FraudAssessment Assessment `json:"fraud_assessment"`
	RedFlags        []string   `json:"red_flags"`
	Decision        Decision   `json:"decision"`
	Justification   string     `json:"justification"`
	NextSteps       []string   `json:"next_steps"`
}

// Clone returns a deep copy.
func (r TrainingResponse) Clone() TrainingResponse {
	r.RedFlags = slices.Clone(r.RedFlags)
	r.NextSteps = slices.Clone(r.NextSteps)
	return r
}

// HasRedFlag reports whether flag is selected.
func (r TrainingResponse) HasRedFlag(flag string) bool {
	_, ok := slices.BinarySearch(r.RedFlags, flag)
	return ok
}

// HasNextStep reports whether the next step id is selected.
func (r TrainingResponse) HasNextStep(id string) bool {
	_, ok := slices.BinarySearch(r.NextSteps, id)
	return ok
}

// Toggle returns a copy of the sorted set with v added (on) or removed.
func Toggle(set []string, v string, on bool) []string {
	out := slices.Clone(set)
	i, found := slices.BinarySearch(out, v)
	switch {
	case on && !found:
		out = slices.Insert(out, i, v)
	case !on && found:
		out = slices.Delete(out, i, i+1)
	}
	return out
}
