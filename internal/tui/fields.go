package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

const (
	fieldStartMonth = iota
	fieldEndMonth
	fieldDuration
	fieldStartAmount
	fieldMonthly
	fieldAnnual
	fieldCount // sentinel
)

// field binds one editable calculator property to its label and parser.
type field struct {
	label       string
	placeholder string
	value       func(c *calculation.TimeWindowCalculator) string
	apply       func(c *calculation.TimeWindowCalculator, input string) error
}

var fields = [fieldCount]field{
	fieldStartMonth: {
		label:       "Start month",
		placeholder: "YYYY-MM",
		value: func(c *calculation.TimeWindowCalculator) string {
			return dateutil.MonthOf(c.StartMonth()).String()
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			m, err := dateutil.ParseMonth(input)
			if err != nil {
				return err
			}
			c.SetStartMonth(m.FirstDay())
			return nil
		},
	},
	fieldEndMonth: {
		label:       "End month",
		placeholder: "YYYY-MM",
		value: func(c *calculation.TimeWindowCalculator) string {
			return dateutil.MonthOf(c.EndMonth()).String()
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			m, err := dateutil.ParseMonth(input)
			if err != nil {
				return err
			}
			return c.SetEndMonth(m.FirstDay())
		},
	},
	fieldDuration: {
		label:       "Duration (months)",
		placeholder: "360",
		value: func(c *calculation.TimeWindowCalculator) string {
			return strconv.Itoa(c.DurationInMonths())
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			n, err := strconv.Atoi(input)
			if err != nil {
				return fmt.Errorf("invalid duration %q: must be a whole number of months", input)
			}
			return c.SetDurationInMonths(n)
		},
	},
	fieldStartAmount: {
		label:       "Start amount",
		placeholder: "1000000",
		value: func(c *calculation.TimeWindowCalculator) string {
			return fdec.NewMoneyFromDecimal(c.StartAmount()).String()
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			m, err := fdec.NewMoneyFromString(input)
			if err != nil {
				return err
			}
			c.SetStartAmount(m.Decimal)
			return nil
		},
	},
	fieldMonthly: {
		label:       "Monthly withdrawal",
		placeholder: "3000",
		value: func(c *calculation.TimeWindowCalculator) string {
			return fdec.NewMoneyFromDecimal(c.MonthlyWithdrawalAmount()).String()
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			m, err := fdec.NewMoneyFromString(input)
			if err != nil {
				return err
			}
			return c.SetMonthlyWithdrawalAmount(m.Decimal)
		},
	},
	fieldAnnual: {
		label:       "Annual withdrawal",
		placeholder: "36000",
		value: func(c *calculation.TimeWindowCalculator) string {
			return fdec.NewMoneyFromDecimal(c.AnnualWithdrawalAmount()).String()
		},
		apply: func(c *calculation.TimeWindowCalculator, input string) error {
			m, err := fdec.NewMoneyFromString(input)
			if err != nil {
				return err
			}
			return c.SetAnnualWithdrawalAmount(m.Decimal)
		},
	},
}

// applyField parses input for field i and applies it to c. An empty input
// leaves c unchanged. Rejected values leave c unchanged as well.
func applyField(c *calculation.TimeWindowCalculator, i int, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	return fields[i].apply(c, input)
}
