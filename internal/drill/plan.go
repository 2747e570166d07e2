package drill

import (
	"github.com/okian/claimtrainer/internal/domain/risk"
)

// idealFlagCount is how many red flags the ideal answer checks per band.
var idealFlagCount = map[risk.Level]int{ //nolint:gochecknoglobals // fixed answer key
	risk.High:   3,
	risk.Medium: 2,
	risk.Low:    0,
}

// IdealActions returns the quiz actions that should score full marks on a
// claim with the given fraud score. redFlags and nextStep come from the
// service's option catalogs.
func IdealActions(fraudScore float64, redFlags []string, nextStep string) []Action {
	level := risk.Band(fraudScore)
	out := []Action{
		{Type: "set_assessment", Value: string(level)},
		{Type: "next"},
	}
	for i := 0; i < idealFlagCount[level] && i < len(redFlags); i++ {
		out = append(out, Action{Type: "toggle_red_flag", Value: redFlags[i], Checked: true})
	}
	out = append(out,
		Action{Type: "next"},
		Action{Type: "set_decision", Value: string(risk.ActionFor(level))},
		Action{Type: "next"},
		Action{Type: "set_justification", Value: level.Title() + " risk band, decision follows the recommended action."},
		Action{Type: "next"},
	)
	if nextStep != "" {
		out = append(out, Action{Type: "toggle_next_step", Value: nextStep, Checked: true})
	}
	return append(out, Action{Type: "submit"})
}
