package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.RequireFromString("10.125")
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}

	if got := NewMoneyFromDecimal(stddec.NewFromInt(42)).String(); got != "42.00" {
		t.Fatalf("display mismatch: got %s", got)
	}

	m3, err := NewMoneyFromString(" 1,000,123.45 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "1000123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{"2.3", "2.30"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewMoneyFromDecimal(stddec.NewFromInt(100))
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if !m.Annual().Monthly().Decimal.Equal(m.Decimal) {
		t.Fatalf("Monthly after Annual got %s", m.Annual().Monthly().Decimal)
	}

	// Division keeps full precision; rounding is a display concern.
	third := m.Monthly()
	if third.Decimal.Exponent() >= -2 {
		t.Fatalf("expected unrounded monthly value, got %s", third.Decimal)
	}
}
