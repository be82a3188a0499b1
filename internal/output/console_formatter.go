package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleFormatter prints a per-scenario summary and a balance table.
type ConsoleFormatter struct {
	// Every is the number of months between table rows; <= 0 means 12.
	Every int
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE DRAWDOWN PROJECTION")
	fmt.Fprintln(&buf, "================================")
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", results.GeneratedAt.Format("2006-01-02 15:04"))
	}

	for i := range results.Scenarios {
		fmt.Fprintln(&buf)
		c.writeScenario(&buf, &results.Scenarios[i])
	}

	if len(results.Scenarios) > 1 {
		if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Longest runway: %s (%s, final balance %s)\n",
				rec.ScenarioName, FormatRunway(rec.MonthsOfRunway), FormatAmount(rec.FinalBalance))
		}
		if x := FirstCrossover(results); x != nil {
			fmt.Fprintf(&buf, "Balances of %s and %s cross in %s (%s vs %s)\n",
				x.ScenarioA, x.ScenarioB, FormatMonth(x.Month), FormatAmount(x.BalanceA), FormatAmount(x.BalanceB))
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeScenario(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	fmt.Fprintln(buf, sc.Name)
	fmt.Fprintf(buf, "  %-24s %s\n", "Window:", sc.Window)
	fmt.Fprintf(buf, "  %-24s %s\n", "Start amount:", FormatAmount(sc.StartAmount))
	fmt.Fprintf(buf, "  %-24s %s / month (%s / year)\n", "Withdrawal:", FormatAmount(sc.MonthlyWithdrawal), FormatAmount(sc.AnnualWithdrawal))

	if len(sc.Projection) == 0 {
		fmt.Fprintln(buf, "  No starting capital: nothing to project.")
		return
	}

	fmt.Fprintf(buf, "  %-24s %s\n", "Final balance:", FormatAmount(sc.FinalBalance))
	fmt.Fprintf(buf, "  %-24s %s\n", "Total withdrawn:", FormatAmount(sc.TotalWithdrawn))
	if sc.DepletionMonth != nil {
		fmt.Fprintf(buf, "  %-24s %s (depleted %s)\n", "Runway:", FormatRunway(sc.MonthsOfRunway), FormatMonth(*sc.DepletionMonth))
	} else {
		fmt.Fprintf(buf, "  %-24s %s (not depleted)\n", "Runway:", FormatRunway(sc.MonthsOfRunway))
	}
	fmt.Fprintf(buf, "  %-24s %s / month\n", "Sustainable withdrawal:", FormatAmount(sc.SustainableMonthly))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "  %6s  %-8s  %20s\n", "Month", "Date", "Balance")
	for _, i := range SampleIndices(len(sc.Projection), c.Every) {
		p := sc.Projection[i]
		fmt.Fprintf(buf, "  %6d  %-8s  %20s\n", i, FormatMonth(p.Month), FormatAmount(p.Balance))
	}
}
