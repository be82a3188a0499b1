package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is the remaining balance as of a given month.
type ProjectionPoint struct {
	Month   time.Time       `json:"month"`
	Balance decimal.Decimal `json:"balance"`
}

// ScenarioSummary provides a summary of key metrics for a drawdown scenario
type ScenarioSummary struct {
	Name              string            `json:"name"`
	Window            CalculationWindow `json:"window"`
	StartAmount       decimal.Decimal   `json:"start_amount"`
	MonthlyWithdrawal decimal.Decimal   `json:"monthly_withdrawal"`
	AnnualWithdrawal  decimal.Decimal   `json:"annual_withdrawal"`

	FinalBalance   decimal.Decimal `json:"final_balance"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	// DepletionMonth is the date of the first point at or below zero.
	DepletionMonth *time.Time `json:"depletion_month,omitempty"`
	// MonthsOfRunway counts months before depletion; the duration if never depleted.
	MonthsOfRunway int  `json:"months_of_runway"`
	Depleted       bool `json:"depleted"`
	// SustainableMonthly is the withdrawal that ends exactly at zero.
	SustainableMonthly decimal.Decimal `json:"sustainable_monthly_withdrawal"`

	Projection []ProjectionPoint `json:"projection"`
}

// ScenarioComparison holds the results of every scenario in a configuration
type ScenarioComparison struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions,omitempty"`
}
