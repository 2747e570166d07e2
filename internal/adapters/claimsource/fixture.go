package claimsource

import (
	"slices"

	"github.com/okian/claimtrainer/internal/domain/model"
)

// fixture is the built-in sample collection served when the backend is unavailable.
var fixture = []model.Claim{ //nolint:gochecknoglobals // read-only sample data
	{
		ID: 1, ClaimNumber: "CLM-2024-001", Category: "Auto", ClientName: "John Doe",
		PolicyNumber: "POL-AUTO-12345", Status: "Flagged", FraudScore: 85,
		Amount: model.NewAmount(45000), DateFiled: "2024-01-15",
		RedFlags: []string{"Multiple claims in 6 months", "Claim filed immediately after policy start"},
	},
	{
		ID: 2, ClaimNumber: "CLM-2024-002", Category: "Home", ClientName: "Jane Smith",
		PolicyNumber: "POL-HOME-67890", Status: "Approved", FraudScore: 15,
		Amount: model.NewAmount(8500), DateFiled: "2024-01-10",
	},
	{
		ID: 3, ClaimNumber: "CLM-2024-003", Category: "Auto", ClientName: "Bob Johnson",
		PolicyNumber: "POL-AUTO-54321", Status: "Under Investigation", FraudScore: 92,
		Amount: model.NewAmount(68000), DateFiled: "2024-01-18",
		RedFlags: []string{"Accident in remote location", "No police report", "Conflicting witness statements"},
	},
	{
		ID: 4, ClaimNumber: "CLM-2024-004", Category: "Health", ClientName: "Alice Williams",
		PolicyNumber: "POL-HEALTH-98765", Status: "Approved", FraudScore: 8,
		Amount: model.NewAmount(3200), DateFiled: "2024-01-05",
	},
	{
		ID: 5, ClaimNumber: "CLM-2024-005", Category: "Auto", ClientName: "Michael Chen",
		PolicyNumber: "POL-AUTO-11111", Status: "Flagged", FraudScore: 78,
		Amount: model.NewAmount(52000), DateFiled: "2024-01-20",
		RedFlags: []string{"Previous fraudulent claim", "Inconsistent damage description"},
	},
	{
		ID: 6, ClaimNumber: "CLM-2024-006", Category: "Home", ClientName: "Sarah Davis",
		PolicyNumber: "POL-HOME-22222", Status: "Processing", FraudScore: 22,
		Amount: model.NewAmount(12000), DateFiled: "2024-01-12",
	},
	{
		ID: 7, ClaimNumber: "CLM-2024-007", Category: "Life", ClientName: "Robert Wilson",
		PolicyNumber: "POL-LIFE-33333", Status: "Under Investigation", FraudScore: 95,
		Amount: model.NewAmount(500000), DateFiled: "2024-01-22",
		RedFlags: []string{"Policy purchased 2 months ago", "Beneficiary recently changed", "Suspicious circumstances"},
	},
	{
		ID: 8, ClaimNumber: "CLM-2024-008", Category: "Auto", ClientName: "Emma Thompson",
		PolicyNumber: "POL-AUTO-44444", Status: "Approved", FraudScore: 5,
		Amount: model.NewAmount(4500), DateFiled: "2024-01-08",
	},
}

// Fixture returns a copy of the sample collection in its fixed order.
func Fixture() []model.Claim {
	out := make([]model.Claim, len(fixture))
	for i, c := range fixture {
		c.RedFlags = slices.Clone(c.RedFlags)
		out[i] = c
	}
	return out
}
