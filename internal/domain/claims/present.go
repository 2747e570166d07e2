package claims

import (
	"strconv"

	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/risk"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CategoryOptions and StatusOptions are the browser's select values.
var (
	CategoryOptions = []string{AnyCategory, "Auto", "Home", "Health", "Life"}                         //nolint:gochecknoglobals // fixed options
	StatusOptions   = []string{AnyStatus, "Approved", "Processing", "Flagged", "Under Investigation"} //nolint:gochecknoglobals // fixed options
)

// ColumnTitles are the display headers per column.
var ColumnTitles = map[string]string{ //nolint:gochecknoglobals // fixed headers
	"id":           "ID",
	"claim_number": "Claim Number",
	"category":     "Category",
	"client_name":  "Client Name",
	"amount":       "Amount",
	"fraud_score":  "Risk Score",
	"status":       "Status",
}

// statusColors maps a claim status to its label colour.
var statusColors = map[string]string{ //nolint:gochecknoglobals // fixed palette
	"Processed":           "green",
	"Approved":            "green",
	"New":                 "blue",
	"Processing":          "blue",
	"Denied":              "red",
	"Flagged":             "red",
	"Under Investigation": "orange",
	"In Process":          "gold",
}

// StatusColor returns the label colour for a status.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "default"
}

// FormatAmount renders whole US dollars with grouping ("$45,000"), or "-"
// when the amount is missing.
func FormatAmount(c model.Claim) string {
	if !c.Amount.Valid {
		return "-"
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%d", c.Amount.Decimal.Round(0).IntPart())
}

// FormatScore renders "85%", or "-" when there is no score.
func FormatScore(score float64) string {
	if score == 0 {
		return "-"
	}
	return strconv.FormatFloat(score, 'f', -1, 64) + "%"
}

// Row is a claim decorated for the browser.
type Row struct {
	model.Claim
	RiskLevel     risk.Level `json:"risk_level"`
	RiskColor     risk.Color `json:"risk_color"`
	ScoreLabel    string     `json:"score_label"`
	StatusColor   string     `json:"status_color"`
	AmountDisplay string     `json:"amount_display"`
	Highlight     bool       `json:"highlight"`
	DetailPath    string     `json:"detail_path"`
}

// Present decorates claims for display.
func Present(rows []model.Claim) []Row {
	out := make([]Row, 0, len(rows))
	for _, c := range rows {
		out = append(out, Row{
			Claim:         c,
			RiskLevel:     c.RiskLevel(),
			RiskColor:     risk.ColorOf(c.FraudScore),
			ScoreLabel:    FormatScore(c.FraudScore),
			StatusColor:   StatusColor(c.Status),
			AmountDisplay: FormatAmount(c),
			Highlight:     c.RiskLevel() == risk.High,
			DetailPath:    c.DetailPath(),
		})
	}
	return out
}
