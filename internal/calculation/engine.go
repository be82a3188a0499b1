package calculation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// DefaultAssumptions lists the modeling assumptions every projection makes.
var DefaultAssumptions = []string{
	"Withdrawals are a fixed amount taken at the end of every month",
	"No investment growth, interest or inflation adjustment",
	"Balances are not floored at zero once capital is exhausted",
	"Amounts are in a single currency and are not rounded during calculation",
}

// CalculationEngine runs the scenarios of a configuration, each on its own calculator.
type CalculationEngine struct {
	// Parallelism caps concurrently running scenarios; <= 0 means GOMAXPROCS.
	Parallelism int
	Logger      Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
}

// BuildCalculator creates a calculator configured from a scenario. The start
// month defaults to the current month; the window is taken from the end month
// if given, otherwise from the duration, otherwise the default 30 years.
func (ce *CalculationEngine) BuildCalculator(scenario *domain.Scenario) (*TimeWindowCalculator, error) {
	calc := NewTimeWindowCalculator()
	calc.SetLogger(ce.Logger)

	if !scenario.StartMonth.IsZero() {
		calc.SetStartMonth(scenario.StartMonth.FirstDay())
	}

	switch {
	case scenario.EndMonth != nil && scenario.DurationMonths != 0:
		return nil, fmt.Errorf("specify either end_month or duration_months, not both")
	case scenario.EndMonth != nil:
		if err := calc.SetEndMonth(scenario.EndMonth.FirstDay()); err != nil {
			return nil, err
		}
	case scenario.DurationMonths != 0:
		if err := calc.SetDurationInMonths(scenario.DurationMonths); err != nil {
			return nil, err
		}
	}

	calc.SetStartAmount(scenario.StartAmount)

	switch {
	case scenario.MonthlyWithdrawal != nil && scenario.AnnualWithdrawal != nil:
		return nil, fmt.Errorf("specify either monthly_withdrawal or annual_withdrawal, not both")
	case scenario.MonthlyWithdrawal != nil:
		if err := calc.SetMonthlyWithdrawalAmount(*scenario.MonthlyWithdrawal); err != nil {
			return nil, err
		}
	case scenario.AnnualWithdrawal != nil:
		if err := calc.SetAnnualWithdrawalAmount(*scenario.AnnualWithdrawal); err != nil {
			return nil, err
		}
	}

	return calc, nil
}

// RunScenario calculates a complete drawdown scenario
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	calc, err := ce.BuildCalculator(scenario)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	summary := Summarize(scenario.Name, calc)
	ce.Logger.Infof("scenario %q: %s, final balance %s", scenario.Name, summary.Window, summary.FinalBalance.StringFixed(2))
	return &summary, nil
}

// RunScenarios runs all scenarios concurrently and returns them in input order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))

	limit := ce.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range config.Scenarios {
		i := i
		scenario := &config.Scenarios[i]
		g.Go(func() error {
			summary, err := ce.RunScenario(gctx, scenario)
			if err != nil {
				return err
			}
			scenarios[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		ce.Logger.Errorf("scenario run failed: %v", err)
		return nil, fmt.Errorf("RunScenarios failed: %w", err)
	}

	return &domain.ScenarioComparison{
		GeneratedAt: nowFunc(),
		Scenarios:   scenarios,
		Assumptions: DefaultAssumptions,
	}, nil
}

// DefaultStartMonth is the month a calculator created now would start in.
func DefaultStartMonth() dateutil.Month {
	return dateutil.CurrentMonth(nowFunc)
}
