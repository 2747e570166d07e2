// Package claims implements the claims browser query: filtering by free text
// and select values, and sorting by column.
package claims

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/claimtrainer/internal/domain/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Select values that disable the category and status filters.
const (
	AnyCategory = "Any category"
	AnyStatus   = "Any status"
)

// Sortable columns, in the order of the list's sort index.
const (
	ColumnID = iota
	ColumnClaimNumber
	ColumnCategory
	ColumnClientName
	ColumnAmount
	ColumnFraudScore
	ColumnStatus
	columnCount
)

var columnNames = [columnCount]string{ //nolint:gochecknoglobals // fixed column table
	"id", "claim_number", "category", "client_name", "amount", "fraud_score", "status",
}

// ParseColumn accepts a column index ("5") or name ("fraud_score").
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= columnCount {
			return 0, fmt.Errorf("%w: %d", ErrUnknownColumn, n)
		}
		return n, nil
	}
	for i, name := range columnNames {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// ColumnName returns the json name of a sortable column.
func ColumnName(col int) string {
	if col < 0 || col >= columnCount {
		return ""
	}
	return columnNames[col]
}

// Direction is a sort direction.
type Direction string

// Directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc or desc; empty means asc.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// SortSpec selects a column and direction.
type SortSpec struct {
	Column    int
	Direction Direction
}

// Query is a claims browser request. Empty Category or Status mean "any".
type Query struct {
	Search   string
	Category string
	Status   string
	Sort     *SortSpec
}

// Option configures Apply.
type Option func(*options)

type options struct {
	sortAllRows bool
}

// WithSortAllRows makes an active sort return every row, ignoring the
// filter. This reproduces the legacy browser, which sorted the unfiltered
// collection.
func WithSortAllRows(enabled bool) Option {
	return func(o *options) { o.sortAllRows = enabled }
}

// Apply filters then sorts rows. rows is never modified.
func Apply(rows []model.Claim, q Query, opts ...Option) []model.Claim {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if q.Sort != nil && o.sortAllRows {
		return Sort(rows, q.Sort.Column, q.Sort.Direction)
	}
	out := Filter(rows, q.Search, q.Category, q.Status)
	if q.Sort != nil {
		out = Sort(out, q.Sort.Column, q.Sort.Direction)
	}
	return out
}

// Filter keeps rows where any present field, stringified, contains search
// ignoring case, and the category and status selects match.
func Filter(rows []model.Claim, search, category, status string) []model.Claim {
	needle := strings.ToLower(search)
	out := make([]model.Claim, 0, len(rows))
	for _, r := range rows {
		if !matchesSelect(r.Category, category, AnyCategory) || !matchesSelect(r.Status, status, AnyStatus) {
			continue
		}
		if needle == "" || matchesText(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matchesSelect(value, selected, anyValue string) bool {
	return selected == "" || selected == anyValue || value == selected
}

func matchesText(r model.Claim, needle string) bool {
	for _, v := range fieldStrings(r) {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// fieldStrings stringifies every present field. Red flags join with ","
// the way an array prints.
func fieldStrings(r model.Claim) []string {
	fields := []string{
		strconv.Itoa(r.ID),
		r.ClaimNumber,
		r.Category,
		r.ClientName,
		r.PolicyNumber,
		r.Status,
		strconv.FormatFloat(r.FraudScore, 'f', -1, 64),
	}
	if r.Amount.Valid {
		fields = append(fields, r.Amount.Decimal.String())
	}
	if r.DateFiled != "" {
		fields = append(fields, r.DateFiled)
	}
	if r.RedFlags != nil {
		fields = append(fields, strings.Join(r.RedFlags, ","))
	}
	return fields
}

// Sort returns a stably sorted copy. Numeric columns compare numerically
// with missing values as zero; text columns use English collation.
func Sort(rows []model.Claim, column int, dir Direction) []model.Claim {
	out := slices.Clone(rows)
	if column < 0 || column >= columnCount {
		return out
	}
	col := collate.New(language.English)
	compare := func(a, b model.Claim) int {
		switch column {
		case ColumnID:
			return cmp.Compare(a.ID, b.ID)
		case ColumnAmount:
			return a.AmountOrZero().Cmp(b.AmountOrZero())
		case ColumnFraudScore:
			return cmp.Compare(a.FraudScore, b.FraudScore)
		default:
			return col.CompareString(textValue(a, column), textValue(b, column))
		}
	}
	slices.SortStableFunc(out, func(a, b model.Claim) int {
		if dir == Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func textValue(r model.Claim, column int) string {
	switch column {
	case ColumnClaimNumber:
		return r.ClaimNumber
	case ColumnCategory:
		return r.Category
	case ColumnClientName:
		return r.ClientName
	case ColumnStatus:
		return r.Status
	}
	return ""
}
