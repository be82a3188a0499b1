package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// MaxDurationMonths caps scenario windows at 100 years.
const MaxDurationMonths = 1200

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents. Unknown keys are rejected
// so that a misspelt field is not silently ignored.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		key := strings.ToLower(scenario.Name)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("scenario %d validation failed: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[key] = i
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}

	// Window
	if scenario.EndMonth != nil && scenario.DurationMonths != 0 {
		return fmt.Errorf("specify either end_month or duration_months, not both")
	}
	if scenario.DurationMonths < 0 {
		return fmt.Errorf("duration_months must be positive")
	}
	if scenario.DurationMonths > MaxDurationMonths {
		return fmt.Errorf("duration_months must not exceed %d", MaxDurationMonths)
	}
	if scenario.EndMonth != nil {
		// An omitted start month is the current month, as in the engine.
		start := scenario.StartMonth
		if start.IsZero() {
			start = calculation.DefaultStartMonth()
		}
		if scenario.EndMonth.Before(start) {
			return fmt.Errorf("end_month %s must not be earlier than start_month %s", scenario.EndMonth, start)
		}
		if start.MonthsUntil(*scenario.EndMonth)+1 > MaxDurationMonths {
			return fmt.Errorf("window from %s to %s exceeds %d months", start, scenario.EndMonth, MaxDurationMonths)
		}
	}

	// Amounts
	if scenario.StartAmount.IsNegative() {
		return fmt.Errorf("start_amount cannot be negative")
	}
	if scenario.MonthlyWithdrawal != nil && scenario.AnnualWithdrawal != nil {
		return fmt.Errorf("specify either monthly_withdrawal or annual_withdrawal, not both")
	}
	if scenario.MonthlyWithdrawal != nil && scenario.MonthlyWithdrawal.IsNegative() {
		return fmt.Errorf("monthly_withdrawal cannot be negative")
	}
	if scenario.AnnualWithdrawal != nil && scenario.AnnualWithdrawal.IsNegative() {
		return fmt.Errorf("annual_withdrawal cannot be negative")
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	start := dateutil.NewMonth(2026, time.January)
	end := dateutil.NewMonth(2060, time.December)
	monthly := decimal.NewFromInt(3000)
	annual := decimal.NewFromInt(48000)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:              "Lean FIRE 30 years",
				StartMonth:        start,
				DurationMonths:    domain.DefaultDurationInMonths,
				StartAmount:       decimal.NewFromInt(1000000),
				MonthlyWithdrawal: &monthly,
			},
			{
				Name:             "Fat FIRE to 2060",
				StartMonth:       start,
				EndMonth:         &end,
				StartAmount:      decimal.NewFromInt(1500000),
				AnnualWithdrawal: &annual,
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
