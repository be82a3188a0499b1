package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the monthly/annual conversion factor.
var MonthsPerYear = decimal.NewFromInt(12)

// Money represents a monetary amount with full decimal precision.
// No rounding happens in arithmetic; only String rounds.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount. Surrounding whitespace and thousands
// separators ("1,000,000.50") are accepted.
func NewMoneyFromString(value string) (Money, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Money{d}, nil
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(MonthsPerYear)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(MonthsPerYear)}
}

// String returns the amount rounded to two places for display.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
