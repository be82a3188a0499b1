package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVDetailedExporter writes every projection point of every scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Date", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for i, p := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(i),
				p.Month.Format("2006-01-02"),
				p.Balance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
