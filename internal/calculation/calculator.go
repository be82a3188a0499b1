package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// TimeWindowCalculator projects the depletion of a starting capital under a
// fixed monthly withdrawal over a window of months.
//
// A calculator is owned by one scenario and is not safe for concurrent
// mutation; run independent scenarios on independent calculators.
//
// Every setter either moves the calculator to a new valid state or returns an
// error and leaves all state exactly as it was.
type TimeWindowCalculator struct {
	window      domain.CalculationWindow
	withdrawal  domain.WithdrawalPlan
	startAmount decimal.Decimal
	logger      Logger
}

// NewTimeWindowCalculator creates a calculator starting in the current month
// with a 30-year window, no starting capital and no withdrawal.
func NewTimeWindowCalculator() *TimeWindowCalculator {
	window, err := domain.NewCalculationWindow(dateutil.CurrentMonth(nowFunc), domain.DefaultDurationInMonths)
	if err != nil {
		// DefaultDurationInMonths is a positive constant.
		panic(err)
	}
	return &TimeWindowCalculator{window: window, logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (c *TimeWindowCalculator) SetLogger(l Logger) {
	c.logger = orNop(l)
}

// Window returns a copy of the current window.
func (c *TimeWindowCalculator) Window() domain.CalculationWindow {
	return c.window
}

// StartMonth returns the first day of the start month.
func (c *TimeWindowCalculator) StartMonth() time.Time {
	return c.window.StartMonth()
}

// SetStartMonth moves the window to start in the month containing t. The
// duration is kept and the end month follows.
func (c *TimeWindowCalculator) SetStartMonth(t time.Time) {
	c.window = c.window.WithStart(dateutil.MonthOf(t))
}

// EndMonth returns the last day of the end month.
func (c *TimeWindowCalculator) EndMonth() time.Time {
	return c.window.EndMonth()
}

// SetEndMonth moves the end of the window to the month containing t and
// recomputes the duration. An end month before the start month is rejected.
func (c *TimeWindowCalculator) SetEndMonth(t time.Time) error {
	w, err := c.window.WithEnd(dateutil.MonthOf(t))
	if err != nil {
		c.logger.Debugf("rejected end month %s: %v", t.Format("2006-01"), err)
		return err
	}
	c.window = w
	return nil
}

// DurationInMonths returns the number of months in the window, both ends included.
func (c *TimeWindowCalculator) DurationInMonths() int {
	return c.window.DurationInMonths()
}

// SetDurationInMonths sets the window length and recomputes the end month.
// n must be positive.
func (c *TimeWindowCalculator) SetDurationInMonths(n int) error {
	w, err := c.window.WithDuration(n)
	if err != nil {
		c.logger.Debugf("rejected duration %d: %v", n, err)
		return err
	}
	c.window = w
	return nil
}

// StartAmount returns the opening balance.
func (c *TimeWindowCalculator) StartAmount() decimal.Decimal {
	return c.startAmount
}

// SetStartAmount sets the opening balance. Any value is accepted; zero or
// negative capital yields an empty projection.
func (c *TimeWindowCalculator) SetStartAmount(amount decimal.Decimal) {
	c.startAmount = amount
}

// MonthlyWithdrawalAmount returns the monthly withdrawal.
func (c *TimeWindowCalculator) MonthlyWithdrawalAmount() decimal.Decimal {
	return c.withdrawal.Monthly()
}

// SetMonthlyWithdrawalAmount sets the monthly withdrawal; the annual amount becomes amount * 12.
func (c *TimeWindowCalculator) SetMonthlyWithdrawalAmount(amount decimal.Decimal) error {
	return c.setWithdrawal(c.withdrawal.WithMonthly(amount))
}

// AnnualWithdrawalAmount returns the annual withdrawal.
func (c *TimeWindowCalculator) AnnualWithdrawalAmount() decimal.Decimal {
	return c.withdrawal.Annual()
}

// SetAnnualWithdrawalAmount sets the annual withdrawal; the monthly amount becomes amount / 12.
func (c *TimeWindowCalculator) SetAnnualWithdrawalAmount(amount decimal.Decimal) error {
	return c.setWithdrawal(c.withdrawal.WithAnnual(amount))
}

func (c *TimeWindowCalculator) setWithdrawal(plan domain.WithdrawalPlan, err error) error {
	if err != nil {
		c.logger.Debugf("rejected withdrawal: %v", err)
		return err
	}
	c.withdrawal = plan
	return nil
}

// ComputeProjection returns the remaining balance at the start of the window
// and at the end of every month in it: DurationInMonths()+1 points in
// chronological order, the last one dated EndMonth(). Each month's balance is
// the previous balance minus the monthly withdrawal, with no floor at zero.
//
// When the start amount is zero or negative there is nothing to project and
// the result is empty.
func (c *TimeWindowCalculator) ComputeProjection() []domain.ProjectionPoint {
	if !c.startAmount.IsPositive() {
		return []domain.ProjectionPoint{}
	}

	duration := c.window.DurationInMonths()
	monthly := c.withdrawal.Monthly()
	points := make([]domain.ProjectionPoint, duration+1)

	balance := c.startAmount
	points[0] = domain.ProjectionPoint{Month: c.window.MonthAt(0), Balance: balance}
	for i := 1; i <= duration; i++ {
		balance = balance.Sub(monthly)
		points[i] = domain.ProjectionPoint{Month: c.window.MonthAt(i), Balance: balance}
	}

	c.logger.Debugf("projected %d months from %s: %s -> %s",
		duration, c.window.Start(), c.startAmount.StringFixed(2), balance.StringFixed(2))
	return points
}
