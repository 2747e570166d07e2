// Package model contains domain models passed between layers.
package model

import (
	"strconv"

	"github.com/okian/claimtrainer/internal/domain/risk"
	"github.com/shopspring/decimal"
)

// Claim is a read-only claim record sourced from the claims backend.
// FraudScore is the ground truth for list colouring and quiz correctness.
type Claim struct {
	ID           int                 `json:"id"`
	ClaimNumber  string              `json:"claim_number"`
	Category     string              `json:"category"`
	ClientName   string              `json:"client_name"`
	PolicyNumber string              `json:"policy_number"`
	Status       string              `json:"status"`
	FraudScore   float64             `json:"fraud_score"`
	Amount       decimal.NullDecimal `json:"amount"`
	DateFiled    string              `json:"date_filed,omitempty"`
	RedFlags     []string            `json:"red_flags,omitempty"`
}

// RiskLevel returns the band for the claim's fraud score.
func (c Claim) RiskLevel() risk.Level {
	return risk.Band(c.FraudScore)
}

// DetailPath is the navigation path of the claim detail view.
func (c Claim) DetailPath() string {
	return "/ClaimDetail/" + strconv.Itoa(c.ID)
}

// AmountOrZero returns the amount, or zero when it is missing.
func (c Claim) AmountOrZero() decimal.Decimal {
	if !c.Amount.Valid {
		return decimal.Zero
	}
	return c.Amount.Decimal
}

// ClaimsListPath is the navigation path of the claims browser.
const ClaimsListPath = "/ClaimsList"

// NewAmount wraps a whole-dollar amount.
func NewAmount(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}
