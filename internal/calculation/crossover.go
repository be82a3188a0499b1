package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// BalanceCrossover describes the first date on which the ordering of two
// projections' balances flips (or the balances meet).
type BalanceCrossover struct {
	Month    time.Time       `json:"month"`
	BalanceA decimal.Decimal `json:"balance_a"`
	BalanceB decimal.Decimal `json:"balance_b"`
	// AFallsBehind is true when A started ahead of B.
	AFallsBehind bool `json:"a_falls_behind"`
}

// CalculateBalanceCrossover compares projections A and B on the dates they
// share and returns the first crossover after they first differ. If the
// projections share no dates or never cross, it returns nil, nil.
func CalculateBalanceCrossover(projA, projB []domain.ProjectionPoint) (*BalanceCrossover, error) {
	if len(projA) == 0 || len(projB) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	byDate := make(map[time.Time]decimal.Decimal, len(projB))
	for _, p := range projB {
		byDate[p.Month] = p.Balance
	}

	initial := 0
	for _, a := range projA {
		b, ok := byDate[a.Month]
		if !ok {
			continue
		}
		sign := a.Balance.Cmp(b)
		if initial == 0 {
			initial = sign
			continue
		}
		if sign != initial {
			return &BalanceCrossover{
				Month:        a.Month,
				BalanceA:     a.Balance,
				BalanceB:     b,
				AFallsBehind: initial > 0,
			}, nil
		}
	}
	return nil, nil
}
