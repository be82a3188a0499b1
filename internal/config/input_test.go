package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Lean\"\n" +
		"    start_month: 2026-01\n" +
		"    duration_months: 360\n" +
		"    start_amount: 1000000\n" +
		"    monthly_withdrawal: 3000.50\n" +
		"  - name: \"Fat\"\n" +
		"    start_month: \"2026-01-15\"\n" +
		"    end_month: 2060-12\n" +
		"    start_amount: 1500000\n" +
		"    annual_withdrawal: 48000\n"

	tmpfile := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte(testConfig), 0o644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile)

	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	lean := config.Scenarios[0]
	assert.Equal(t, "Lean", lean.Name)
	assert.Equal(t, dateutil.Month{Year: 2026, Month: time.January}, lean.StartMonth)
	assert.Equal(t, 360, lean.DurationMonths)
	assert.Nil(t, lean.EndMonth)
	assert.True(t, lean.StartAmount.Equal(decimal.NewFromInt(1000000)))
	require.NotNil(t, lean.MonthlyWithdrawal)
	assert.True(t, lean.MonthlyWithdrawal.Equal(decimal.RequireFromString("3000.5")))
	assert.Nil(t, lean.AnnualWithdrawal)

	fat := config.Scenarios[1]
	assert.Equal(t, dateutil.Month{Year: 2026, Month: time.January}, fat.StartMonth)
	require.NotNil(t, fat.EndMonth)
	assert.Equal(t, dateutil.Month{Year: 2060, Month: time.December}, *fat.EndMonth)
	assert.True(t, fat.StartAmount.Equal(decimal.NewFromInt(1500000)), "got %s", fat.StartAmount)
	require.NotNil(t, fat.AnnualWithdrawal)
	assert.True(t, fat.AnnualWithdrawal.Equal(decimal.NewFromInt(48000)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte("scenarios:\n  - name: [unclosed\n"), 0o644))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile)

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_Testdata(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "example_config.yaml"))
	require.NoError(t, err)
	assert.Len(t, config.Scenarios, 3)
}

func TestParse_UnknownField(t *testing.T) {
	data := []byte("scenarios:\n  - name: a\n    start_amont: 100\n")

	_, err := NewInputParser().Parse(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_amont")
}

func TestParse_BadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad month", "scenarios:\n  - name: a\n    start_month: 2026-13\n"},
		{"bad amount", "scenarios:\n  - name: a\n    start_amount: lots\n"},
		{"bad duration", "scenarios:\n  - name: a\n    duration_months: forever\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse YAML")
		})
	}
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(createValidTestConfiguration()))
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateConfiguration(&domain.Configuration{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	config := createValidTestConfiguration()
	dup := config.Scenarios[0]
	dup.Name = "BASE"
	config.Scenarios = append(config.Scenarios, dup)

	err := NewInputParser().ValidateConfiguration(config)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `name "BASE" already used by scenario 0`)
}

func TestValidateScenario(t *testing.T) {
	end := func(y int, m time.Month) *dateutil.Month { return &dateutil.Month{Year: y, Month: m} }
	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name        string
		modify      func(s *domain.Scenario)
		expectError string
	}{
		{
			name:   "valid",
			modify: func(s *domain.Scenario) {},
		},
		{
			name:   "start month may be omitted",
			modify: func(s *domain.Scenario) { s.StartMonth = dateutil.Month{} },
		},
		{
			name:   "zero start amount",
			modify: func(s *domain.Scenario) { s.StartAmount = decimal.Zero },
		},
		{
			name:   "end month equal to start",
			modify: func(s *domain.Scenario) { s.DurationMonths = 0; s.EndMonth = end(2026, time.January) },
		},
		{
			name:        "empty name",
			modify:      func(s *domain.Scenario) { s.Name = "  " },
			expectError: "scenario name is required",
		},
		{
			name:        "end month and duration",
			modify:      func(s *domain.Scenario) { s.EndMonth = end(2040, time.June) },
			expectError: "either end_month or duration_months",
		},
		{
			name:        "negative duration",
			modify:      func(s *domain.Scenario) { s.DurationMonths = -1 },
			expectError: "duration_months must be positive",
		},
		{
			name:        "duration too long",
			modify:      func(s *domain.Scenario) { s.DurationMonths = MaxDurationMonths + 1 },
			expectError: "duration_months must not exceed 1200",
		},
		{
			name:        "end before start",
			modify:      func(s *domain.Scenario) { s.DurationMonths = 0; s.EndMonth = end(2025, time.December) },
			expectError: "end_month 2025-12 must not be earlier than start_month 2026-01",
		},
		{
			name:        "window too long",
			modify:      func(s *domain.Scenario) { s.DurationMonths = 0; s.EndMonth = end(2126, time.January) },
			expectError: "exceeds 1200 months",
		},
		{
			name:        "negative start amount",
			modify:      func(s *domain.Scenario) { s.StartAmount = decimal.NewFromInt(-1) },
			expectError: "start_amount cannot be negative",
		},
		{
			name:        "both withdrawals",
			modify:      func(s *domain.Scenario) { s.AnnualWithdrawal = amount("12") },
			expectError: "either monthly_withdrawal or annual_withdrawal",
		},
		{
			name:        "negative monthly",
			modify:      func(s *domain.Scenario) { s.MonthlyWithdrawal = amount("-0.01") },
			expectError: "monthly_withdrawal cannot be negative",
		},
		{
			name: "negative annual",
			modify: func(s *domain.Scenario) {
				s.MonthlyWithdrawal = nil
				s.AnnualWithdrawal = amount("-12")
			},
			expectError: "annual_withdrawal cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.modify(&config.Scenarios[0])

			err := parser.ValidateConfiguration(config)

			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "scenario 0 validation failed")
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateScenario_EndMonthWithoutStart(t *testing.T) {
	t.Cleanup(calculation.SetNowFunc(func() time.Time { return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC) }))

	tests := []struct {
		name        string
		end         dateutil.Month
		expectError string
	}{
		{name: "current month", end: dateutil.Month{Year: 2026, Month: time.October}},
		{name: "later month", end: dateutil.Month{Year: 2060, Month: time.December}},
		{
			name:        "before current month",
			end:         dateutil.Month{Year: 2026, Month: time.September},
			expectError: "end_month 2026-09 must not be earlier than start_month 2026-10",
		},
		{
			name:        "too far ahead",
			end:         dateutil.Month{Year: 2126, Month: time.October},
			expectError: "exceeds 1200 months",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			sc := &config.Scenarios[0]
			sc.StartMonth = dateutil.Month{}
			sc.DurationMonths = 0
			sc.EndMonth = &tt.end

			err := parser.ValidateConfiguration(config)

			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.Len(t, config.Scenarios, 2)
	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, SaveConfiguration(original, path))
	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Scenarios, len(original.Scenarios))
	for i := range original.Scenarios {
		want, got := original.Scenarios[i], loaded.Scenarios[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.StartMonth, got.StartMonth)
		assert.Equal(t, want.EndMonth, got.EndMonth)
		assert.Equal(t, want.DurationMonths, got.DurationMonths)
		assert.True(t, want.StartAmount.Equal(got.StartAmount))
	}
	require.NotNil(t, loaded.Scenarios[0].MonthlyWithdrawal)
	assert.True(t, loaded.Scenarios[0].MonthlyWithdrawal.Equal(*original.Scenarios[0].MonthlyWithdrawal))
	require.NotNil(t, loaded.Scenarios[1].AnnualWithdrawal)
	assert.True(t, loaded.Scenarios[1].AnnualWithdrawal.Equal(*original.Scenarios[1].AnnualWithdrawal))
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	err := SaveConfiguration(createValidTestConfiguration(), filepath.Join(t.TempDir(), "missing", "out.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func createValidTestConfiguration() *domain.Configuration {
	monthly := decimal.NewFromInt(3000)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:              "Base",
				StartMonth:        dateutil.Month{Year: 2026, Month: time.January},
				DurationMonths:    360,
				StartAmount:       decimal.NewFromInt(1000000),
				MonthlyWithdrawal: &monthly,
			},
		},
	}
}
