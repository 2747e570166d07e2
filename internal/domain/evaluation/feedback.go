package evaluation

import (
	"strconv"
)

// Alert variants.
const (
	AlertSuccess = "success"
	AlertWarning = "warning"
	AlertDanger  = "danger"
)

// Feedback is the text shown to the trainee after submitting.
type Feedback struct {
	Alert   string `json:"alert"`
	Summary string `json:"summary"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type feedbackText struct {
	alert, summary, title, message string
}

var feedbackByTier = map[Tier]feedbackText{ //nolint:gochecknoglobals // fixed copy
	Excellent: {
		alert:   AlertSuccess,
		summary: "Excellent analysis! You correctly identified the risk level.",
		title:   "Excellent Work!",
		message: "You demonstrated strong understanding of fraud detection principles.",
	},
	Good: {
		alert:   AlertWarning,
		summary: "Good effort, but review the red flags again.",
		title:   "Good Effort",
		message: "Review the red flags section for better accuracy.",
	},
	NeedsReview: {
		alert:   AlertDanger,
		summary: "Review needed. Check the training materials.",
		title:   "Additional Training Recommended",
		message: "Please review the training materials before attempting again.",
	},
}

// FeedbackFor returns the feedback for a tier and total.
func FeedbackFor(t Tier, score int) Feedback {
	f, ok := feedbackByTier[t]
	if !ok {
		f = feedbackByTier[NeedsReview]
	}
	return Feedback{
		Alert:   f.alert,
		Summary: f.summary + " Score: " + strconv.Itoa(score) + "%",
		Title:   f.title,
		Message: f.message,
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
