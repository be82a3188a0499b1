package domain

import (
	"github.com/shopspring/decimal"

	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

// WithdrawalPlan is a fixed withdrawal expressed both monthly and annually.
// One amount is stored together with the period it was given in; the other
// period is always derived from it, so the two can never disagree. The zero
// value withdraws nothing.
type WithdrawalPlan struct {
	amount decimal.Decimal
	annual bool
}

// Monthly returns the monthly withdrawal.
func (p WithdrawalPlan) Monthly() decimal.Decimal {
	if p.annual {
		return fdec.NewMoneyFromDecimal(p.amount).Monthly().Decimal
	}
	return p.amount
}

// Annual returns the annual withdrawal.
func (p WithdrawalPlan) Annual() decimal.Decimal {
	if p.annual {
		return p.amount
	}
	return fdec.NewMoneyFromDecimal(p.amount).Annual().Decimal
}

// WithMonthly returns a plan withdrawing amount per month.
func (p WithdrawalPlan) WithMonthly(amount decimal.Decimal) (WithdrawalPlan, error) {
	if amount.IsNegative() {
		return p, outOfRange(FieldMonthlyWithdrawal, NegativeWithdrawal, amount)
	}
	return WithdrawalPlan{amount: amount}, nil
}

// WithAnnual returns a plan withdrawing amount per year.
func (p WithdrawalPlan) WithAnnual(amount decimal.Decimal) (WithdrawalPlan, error) {
	if amount.IsNegative() {
		return p, outOfRange(FieldAnnualWithdrawal, NegativeWithdrawal, amount)
	}
	return WithdrawalPlan{amount: amount, annual: true}, nil
}
