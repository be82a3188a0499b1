package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Summarize computes the projection of c and the key metrics derived from it.
func Summarize(name string, c *TimeWindowCalculator) domain.ScenarioSummary {
	duration := c.DurationInMonths()
	monthly := c.MonthlyWithdrawalAmount()
	projection := c.ComputeProjection()

	summary := domain.ScenarioSummary{
		Name:               name,
		Window:             c.Window(),
		StartAmount:        c.StartAmount(),
		MonthlyWithdrawal:  monthly,
		AnnualWithdrawal:   c.AnnualWithdrawalAmount(),
		FinalBalance:       c.StartAmount(),
		TotalWithdrawn:     monthly.Mul(decimal.NewFromInt(int64(duration))),
		SustainableMonthly: SustainableMonthlyWithdrawal(c.StartAmount(), duration),
		Projection:         projection,
	}

	if len(projection) == 0 {
		// No capital to draw from.
		summary.Depleted = true
		return summary
	}

	summary.FinalBalance = projection[len(projection)-1].Balance
	summary.MonthsOfRunway = duration
	for i := 1; i < len(projection); i++ {
		p := projection[i]
		if p.Balance.IsPositive() {
			continue
		}
		month := p.Month
		summary.Depleted = true
		summary.DepletionMonth = &month
		// A balance of exactly zero means the month's withdrawal was still covered.
		summary.MonthsOfRunway = i
		if p.Balance.IsNegative() {
			summary.MonthsOfRunway = i - 1
		}
		break
	}
	return summary
}

// SustainableMonthlyWithdrawal returns the monthly withdrawal that draws
// startAmount down to exactly zero over months months. It is zero when
// there is no capital or no window.
func SustainableMonthlyWithdrawal(startAmount decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 || !startAmount.IsPositive() {
		return decimal.Zero
	}
	return startAmount.Div(decimal.NewFromInt(int64(months)))
}
