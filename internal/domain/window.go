package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// DefaultDurationInMonths is the window length of a new calculator (30 years).
const DefaultDurationInMonths = 12 * 30

// windowDriver names the field that drives a window update.
type windowDriver int

const (
	driveStart windowDriver = iota
	driveEnd
	driveDuration
)

// CalculationWindow is the start month / end month / duration triple.
//
// The triple always satisfies
//
//	duration == start.MonthsUntil(end) + 1 && duration >= 1
//
// Windows are values: every With* method returns a new window and leaves the
// receiver untouched, so a rejected update cannot leave a partial mutation behind.
// The zero value is not a valid window; use NewCalculationWindow.
type CalculationWindow struct {
	start    dateutil.Month
	end      dateutil.Month
	duration int
}

// NewCalculationWindow creates a window starting at start and spanning duration months.
func NewCalculationWindow(start dateutil.Month, duration int) (CalculationWindow, error) {
	return reconcile(CalculationWindow{start: start}, driveDuration, dateutil.Month{}, duration)
}

// WithStart moves the start month and keeps the duration, shifting the end month with it.
func (w CalculationWindow) WithStart(start dateutil.Month) CalculationWindow {
	// Start-driven updates never fail.
	out, _ := reconcile(w, driveStart, start, 0)
	return out
}

// WithEnd moves the end month and recomputes the duration from the current start month.
func (w CalculationWindow) WithEnd(end dateutil.Month) (CalculationWindow, error) {
	return reconcile(w, driveEnd, end, 0)
}

// WithDuration sets the duration and recomputes the end month.
func (w CalculationWindow) WithDuration(months int) (CalculationWindow, error) {
	return reconcile(w, driveDuration, dateutil.Month{}, months)
}

// reconcile is the single place the triple is recomputed. The driver's value is
// taken as given and the other two fields are derived from it.
func reconcile(w CalculationWindow, driver windowDriver, month dateutil.Month, months int) (CalculationWindow, error) {
	switch driver {
	case driveStart:
		w.start = month
		if w.duration > 0 {
			w.end = w.start.AddMonths(w.duration - 1)
		}
	case driveEnd:
		n := w.start.MonthsUntil(month) + 1
		if n <= 0 {
			return w, outOfRange(FieldEndMonth, EndBeforeStart, month)
		}
		w.end = month
		w.duration = n
	case driveDuration:
		if months <= 0 {
			return w, outOfRange(FieldDurationInMonths, NonPositiveDuration, months)
		}
		w.duration = months
		w.end = w.start.AddMonths(months - 1)
	}
	return w, nil
}

// Start returns the first month of the window.
func (w CalculationWindow) Start() dateutil.Month { return w.start }

// End returns the last month of the window.
func (w CalculationWindow) End() dateutil.Month { return w.end }

// StartMonth returns the first day of the start month.
func (w CalculationWindow) StartMonth() time.Time { return w.start.FirstDay() }

// EndMonth returns the last day of the end month.
func (w CalculationWindow) EndMonth() time.Time { return w.end.LastDay() }

// DurationInMonths returns the number of months spanned, both endpoints included.
func (w CalculationWindow) DurationInMonths() int { return w.duration }

// Valid reports whether the triple satisfies its invariant.
func (w CalculationWindow) Valid() bool {
	return w.duration >= 1 && w.duration == w.start.MonthsUntil(w.end)+1
}

// MonthAt returns the date of projection point i. Point 0 is the first day of
// the start month (the opening balance); point i > 0 is the last day of the
// i-th month of the window, so point DurationInMonths() lands on EndMonth().
// Each date is derived from the start month by offset, never from the previous point.
func (w CalculationWindow) MonthAt(i int) time.Time {
	if i == 0 {
		return w.start.FirstDay()
	}
	return w.start.AddMonths(i - 1).LastDay()
}

func (w CalculationWindow) String() string {
	return fmt.Sprintf("%s..%s (%d months)", w.start, w.end, w.duration)
}

type windowJSON struct {
	StartMonth       dateutil.Month `json:"start_month"`
	EndMonth         dateutil.Month `json:"end_month"`
	DurationInMonths int            `json:"duration_in_months"`
}

// MarshalJSON exposes the triple to report formatters.
func (w CalculationWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(windowJSON{StartMonth: w.start, EndMonth: w.end, DurationInMonths: w.duration})
}
