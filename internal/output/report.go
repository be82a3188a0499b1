package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ResolveFormatter looks up a formatter by name or alias.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render writes results in the given format to w.
func Render(w io.Writer, results *domain.ScenarioComparison, format string, every int) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := WithInterval(f, every).Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes results to timestamped files in dir and returns their
// names. The format "all" writes one file per registered formatter. every is
// the months between table rows for formatters that print a balance table.
func GenerateReport(results *domain.ScenarioComparison, format, dir string, every int) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = builtInFormatters
	} else {
		f, err := ResolveFormatter(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	files := make([]string, 0, len(formatters))
	for _, f := range formatters {
		name, err := WriteFormatted(WithInterval(f, every), results, dir)
		if err != nil {
			return files, fmt.Errorf("%s formatter: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}
