package output

import (
	"bytes"
	_ "embed"
	"html/template"

	calc "github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

// HTMLFormatter produces a static HTML report with one balance table per scenario.
type HTMLFormatter struct {
	// Every is the number of months between table rows; <= 0 means 12.
	Every int
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"month":  FormatMonth,
	"runway": FormatRunway,
	"sample": func(points []domain.ProjectionPoint, every int) []indexedPoint {
		idx := SampleIndices(len(points), every)
		out := make([]indexedPoint, 0, len(idx))
		for _, i := range idx {
			out = append(out, indexedPoint{Index: i, ProjectionPoint: points[i]})
		}
		return out
	},
}).Parse(htmlTemplateSource))

type indexedPoint struct {
	Index int
	domain.ProjectionPoint
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = calc.DefaultAssumptions
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Crossover      *Crossover
		Assumptions    []string
		Every          int
	}{results, AnalyzeScenarios(results), FirstCrossover(results), assumptions, h.Every}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
