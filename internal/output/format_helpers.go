package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/pkg/dateutil"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

// FormatAmount formats a decimal with 2 decimals and thousands separators.
// No currency symbol is added; scenarios are currency-agnostic.
func FormatAmount(amount decimal.Decimal) string {
	s := fdec.NewMoneyFromDecimal(amount).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatMonth formats a projection date as "Jan 2006".
func FormatMonth(t time.Time) string { return t.Format("Jan 2006") }

// FormatRunway formats a month count as years and months, e.g. "29y 6m".
func FormatRunway(months int) string {
	years, rem := dateutil.MonthsToYears(months)
	return fmt.Sprintf("%dy %dm", years, rem)
}

// SampleIndices returns the projection indices shown in tables: every
// every-th point starting at 0, plus the last point. every <= 0 means 12.
func SampleIndices(n, every int) []int {
	if n <= 0 {
		return nil
	}
	if every <= 0 {
		every = 12
	}
	idx := make([]int, 0, n/every+2)
	for i := 0; i < n; i += every {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
