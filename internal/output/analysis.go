package output

import (
	"github.com/shopspring/decimal"

	calc "github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

// Recommendation names the scenario whose capital lasts longest.
type Recommendation struct {
	ScenarioName   string
	MonthsOfRunway int
	Depleted       bool
	FinalBalance   decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the longest runway, preferring the
// higher final balance on ties. Scenarios without capital are never picked.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	var best *domain.ScenarioSummary
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		if len(sc.Projection) == 0 {
			continue
		}
		if best == nil || better(sc, best) {
			best = sc
		}
	}
	if best == nil {
		return Recommendation{}
	}
	return Recommendation{
		ScenarioName:   best.Name,
		MonthsOfRunway: best.MonthsOfRunway,
		Depleted:       best.Depleted,
		FinalBalance:   best.FinalBalance,
	}
}

func better(a, b *domain.ScenarioSummary) bool {
	if a.MonthsOfRunway != b.MonthsOfRunway {
		return a.MonthsOfRunway > b.MonthsOfRunway
	}
	return a.FinalBalance.GreaterThan(b.FinalBalance)
}

// Crossover is the balance crossover between the first two scenarios.
type Crossover struct {
	ScenarioA string
	ScenarioB string
	*calc.BalanceCrossover
}

// FirstCrossover compares the first two scenarios. It returns nil when there
// are fewer than two scenarios with a projection or their balances never cross.
func FirstCrossover(results *domain.ScenarioComparison) *Crossover {
	if len(results.Scenarios) < 2 {
		return nil
	}
	a, b := results.Scenarios[0], results.Scenarios[1]
	x, err := calc.CalculateBalanceCrossover(a.Projection, b.Projection)
	if err != nil || x == nil {
		return nil
	}
	return &Crossover{ScenarioA: a.Name, ScenarioB: b.Name, BalanceCrossover: x}
}
