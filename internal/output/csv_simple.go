package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartMonth", "EndMonth", "DurationInMonths", "StartAmount", "MonthlyWithdrawal", "AnnualWithdrawal", "FinalBalance", "TotalWithdrawn", "Depleted", "DepletionMonth", "MonthsOfRunway", "SustainableMonthlyWithdrawal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		depletion := ""
		if sc.DepletionMonth != nil {
			depletion = sc.DepletionMonth.Format("2006-01-02")
		}
		row := []string{
			sc.Name,
			sc.Window.Start().String(),
			sc.Window.End().String(),
			intToString(sc.Window.DurationInMonths()),
			sc.StartAmount.StringFixed(2),
			sc.MonthlyWithdrawal.StringFixed(2),
			sc.AnnualWithdrawal.StringFixed(2),
			sc.FinalBalance.StringFixed(2),
			sc.TotalWithdrawn.StringFixed(2),
			boolToString(sc.Depleted),
			depletion,
			intToString(sc.MonthsOfRunway),
			sc.SustainableMonthly.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
