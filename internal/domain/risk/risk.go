// Package risk maps a claim's fraud score to a risk band, the recommended
// handling action and the colour used when listing claims.
package risk

import (
	"fmt"
	"math"
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Level is a three-way risk category.
type Level string

// Risk levels.
const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Title returns the display form ("High").
func (l Level) Title() string {
	switch l {
	case High:
		return "High"
	case Medium:
		return "Medium"
	default:
		return "Low"
	}
}

// Action is the handling recommended for a risk level.
type Action string

// Recommended actions.
const (
	Approve     Action = "approve"
	Review      Action = "review"
	Investigate Action = "investigate"
)

// Color is a list colour token.
type Color string

// List colours.
const (
	Grey   Color = "grey"
	Green  Color = "green"
	Gold   Color = "gold"
	Orange Color = "orange"
	Red    Color = "red"
)

// threshold is one row of the band table. Rows are ordered by descending floor.
type threshold struct {
	floor  float64
	level  Level
	action Action
	color  Color
}

// thresholds is the only place the band boundaries live.
var thresholds = []threshold{ //nolint:gochecknoglobals // read-only band table
	{floor: 75, level: High, action: Investigate, color: Red},
	{floor: 50, level: Medium, action: Review, color: Orange},
	{floor: math.Inf(-1), level: Low, action: Approve, color: Green},
}

// watchFloor only affects colour: low-band scores at or above it render gold.
const watchFloor = 25

func lookup(score float64) threshold {
	for _, t := range thresholds {
		if score >= t.floor {
			return t
		}
	}
	return thresholds[len(thresholds)-1]
}

// Band returns the risk level for score.
// High if score>=75, Medium if 50<=score<75, Low otherwise.
func Band(score float64) Level {
	return lookup(score).level
}

// RecommendedAction returns the action matching Band(score).
func RecommendedAction(score float64) Action {
	return lookup(score).action
}

// ActionFor returns the action recommended for a level.
func ActionFor(l Level) Action {
	for _, t := range thresholds {
		if t.level == l {
			return t.action
		}
	}
	return Approve
}

// ColorOf returns the list colour for score. A zero score means "no score"
// and renders grey.
func ColorOf(score float64) Color {
	if score == 0 || math.IsNaN(score) {
		return Grey
	}
	t := lookup(score)
	if t.level == Low && score >= watchFloor {
		return Gold
	}
	return t.color
}

// Validate rejects scores that cannot be banded meaningfully.
func Validate(score float64) error {
	switch {
	case math.IsNaN(score):
		return fmt.Errorf("%w: NaN", ErrInvalidScore)
	case math.IsInf(score, 0):
		return fmt.Errorf("%w: infinite", ErrInvalidScore)
	case score < MinScore || score > MaxScore:
		return fmt.Errorf("%w: %v outside [%d,%d]", ErrInvalidScore, score, MinScore, MaxScore)
	}
	return nil
}
