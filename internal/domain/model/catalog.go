package model

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RedFlagOptions is the fixed list a trainee picks red flags from.
var RedFlagOptions = []string{ //nolint:gochecknoglobals // fixed catalog
	"Claim filed immediately after policy start",
	"Multiple recent claims",
	"Accident in remote location",
	"No police report",
	"Conflicting statements",
	"High claim amount",
	"Recent policy changes",
	"Missing documentation",
}

// NextStep is an investigation follow-up the trainee can select.
type NextStep struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NextStepOptions is the fixed list of follow-ups.
var NextStepOptions = []NextStep{ //nolint:gochecknoglobals // fixed catalog
	{ID: "police-report", Label: "Request police report"},
	{ID: "witnesses", Label: "Interview witnesses"},
	{ID: "documentation", Label: "Verify documentation"},
	{ID: "history", Label: "Check claim history"},
}

// ResolveRedFlag maps user input to a catalog entry. An exact
// case-insensitive match wins; otherwise the input must fuzzy-match a
// single best entry.
func ResolveRedFlag(input string) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", fmt.Errorf("%w: empty red flag", ErrUnknownOption)
	}
	for _, opt := range RedFlagOptions {
		if strings.EqualFold(opt, in) {
			return opt, nil
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(in, RedFlagOptions)
	if len(ranks) == 0 {
		return "", fmt.Errorf("%w: red flag %q", ErrUnknownOption, input)
	}
	best := ranks[0]
	ambiguous := false
	for _, r := range ranks[1:] {
		switch {
		case r.Distance < best.Distance:
			best, ambiguous = r, false
		case r.Distance == best.Distance:
			ambiguous = true
		}
	}
	if ambiguous {
		return "", fmt.Errorf("%w: red flag %q is ambiguous", ErrUnknownOption, input)
	}
	return best.Target, nil
}

// ResolveNextStep accepts a next step id or its label.
func ResolveNextStep(input string) (NextStep, error) {
	in := strings.TrimSpace(input)
	for _, s := range NextStepOptions {
		if strings.EqualFold(s.ID, in) || strings.EqualFold(s.Label, in) {
			return s, nil
		}
	}
	return NextStep{}, fmt.Errorf("%w: next step %q", ErrUnknownOption, input)
}
