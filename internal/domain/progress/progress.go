// Package progress tracks submitted evaluations and derives the trainee's
// dashboard metrics from them.
package progress

import (
	"maps"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/okian/claimtrainer/internal/domain/evaluation"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/risk"
)

// Outcome is one submitted evaluation.
type Outcome struct {
	ClaimID    int
	FraudScore float64
	Decision   model.Decision
	Result     evaluation.Result
	Elapsed    time.Duration
}

// Metrics are the dashboard key figures.
type Metrics struct {
	ClaimsReviewed  int            `json:"claims_reviewed"`
	AccuracyRate    int            `json:"accuracy_rate"`
	AvgResponseTime string         `json:"avg_response_time"`
	FraudDetected   int            `json:"fraud_detected"`
	Modules         map[string]int `json:"modules"`
}

// Snapshot is a consistent copy of the tracker state.
type Snapshot struct {
	Metrics    Metrics
	BestScores map[int]int
}

// Tracker accumulates outcomes. It is safe for concurrent use.
type Tracker struct {
	mu           sync.RWMutex
	reviewed     int
	accurate     int
	elapsed      time.Duration
	fraudCaught  int
	best         map[int]int
	checksPassed map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		best:         make(map[int]int),
		checksPassed: make(map[string]int),
	}
}

// Record adds an outcome.
func (t *Tracker) Record(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.reviewed++
	t.elapsed += o.Elapsed
	for _, c := range o.Result.Checks {
		if !c.Passed {
			continue
		}
		t.checksPassed[c.Name]++
		if c.Name == evaluation.CheckRiskAssessment {
			t.accurate++
		}
	}
	if risk.Band(o.FraudScore) == risk.High &&
		(o.Decision == model.DecisionInvestigate || o.Decision == model.DecisionDeny) {
		t.fraudCaught++
	}
	if prev, ok := t.best[o.ClaimID]; !ok || o.Result.Score > prev {
		t.best[o.ClaimID] = o.Result.Score
	}
}

// Snapshot returns the current metrics.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m := Metrics{
		ClaimsReviewed:  t.reviewed,
		AvgResponseTime: "-",
		FraudDetected:   t.fraudCaught,
		Modules:         make(map[string]int, len(evaluation.Checks)),
	}
	for _, c := range evaluation.Checks {
		m.Modules[c.Name] = percent(t.checksPassed[c.Name], t.reviewed)
	}
	if t.reviewed > 0 {
		m.AccuracyRate = percent(t.accurate, t.reviewed)
		m.AvgResponseTime = formatMinutes(t.elapsed / time.Duration(t.reviewed))
	}
	return Snapshot{Metrics: m, BestScores: maps.Clone(t.best)}
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

// formatMinutes renders a duration as "4.2 min".
func formatMinutes(d time.Duration) string {
	mins := math.Round(d.Minutes()*10) / 10
	return strconv.FormatFloat(mins, 'f', 1, 64) + " min"
}
