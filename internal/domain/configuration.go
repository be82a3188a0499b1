package domain

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// Configuration is the contents of a scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario describes one what-if drawdown. Exactly one of EndMonth and
// DurationMonths, and exactly one of MonthlyWithdrawal and AnnualWithdrawal,
// should be set; the parser enforces this.
type Scenario struct {
	Name string `yaml:"name" json:"name"`

	// StartMonth defaults to the current month when omitted.
	StartMonth     dateutil.Month  `yaml:"start_month,omitempty" json:"start_month,omitempty"`
	EndMonth       *dateutil.Month `yaml:"end_month,omitempty" json:"end_month,omitempty"`
	DurationMonths int             `yaml:"duration_months,omitempty" json:"duration_months,omitempty"`

	StartAmount       decimal.Decimal  `yaml:"start_amount" json:"start_amount"`
	MonthlyWithdrawal *decimal.Decimal `yaml:"monthly_withdrawal,omitempty" json:"monthly_withdrawal,omitempty"`
	AnnualWithdrawal  *decimal.Decimal `yaml:"annual_withdrawal,omitempty" json:"annual_withdrawal,omitempty"`
}
