package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// monthLayout is the canonical text form of a Month.
const monthLayout = "2006-01"

// Month identifies a calendar month independent of the day of month.
// The zero value is not a valid month; use MonthOf or NewMonth.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth builds a Month, normalizing out-of-range month numbers
// (e.g. month 13 of 2024 becomes January 2025).
func NewMonth(year int, month time.Month) Month {
	return MonthOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the calendar month containing t. Day and clock are discarded.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth returns the month containing now.
func CurrentMonth(now func() time.Time) Month {
	return MonthOf(now())
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month
// (first day of the following month minus one day).
func (m Month) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// AddMonths offsets the month by n whole months. n may be negative.
func (m Month) AddMonths(n int) Month {
	// Anchored on day 1 so time.AddDate never spills into the next month.
	return MonthOf(m.FirstDay().AddDate(0, n, 0))
}

// MonthsUntil returns the signed number of whole months from m to other.
func (m Month) MonthsUntil(other Month) int {
	return (other.Year-m.Year)*12 + int(other.Month) - int(m.Month)
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	return m.MonthsUntil(other) > 0
}

// After reports whether m is later than other.
func (m Month) After(other Month) bool {
	return m.MonthsUntil(other) < 0
}

// String returns the month as YYYY-MM.
func (m Month) String() string {
	return m.FirstDay().Format(monthLayout)
}

// ParseMonth accepts YYYY-MM, YYYY-MM-DD or an RFC 3339 timestamp. Any day component is ignored.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{monthLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MonthsToYears splits a month count into whole years and remaining months.
func MonthsToYears(months int) (years, rem int) {
	return months / 12, months % 12
}
