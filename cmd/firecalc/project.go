package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	fdec "github.com/rpgo/fire-calculator/pkg/decimal"
)

// addScenarioFlags registers the flags describing a single scenario.
func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("start", "", "Start month (YYYY-MM), defaults to the current month")
	f.String("end", "", "End month (YYYY-MM); mutually exclusive with --duration")
	f.Int("duration", 0, "Duration in months (defaults to the configured duration)")
	f.String("amount", "0", "Starting capital")
	f.String("monthly", "", "Monthly withdrawal; mutually exclusive with --annual")
	f.String("annual", "", "Annual withdrawal; mutually exclusive with --monthly")
	f.Int("every", 0, "Months between table rows (defaults to the configured interval)")
	cmd.MarkFlagsMutuallyExclusive("end", "duration")
	cmd.MarkFlagsMutuallyExclusive("monthly", "annual")
}

// scenarioFromFlags builds a scenario from the flags added by addScenarioFlags.
func scenarioFromFlags(cmd *cobra.Command, name string) (*domain.Scenario, error) {
	f := cmd.Flags()
	scenario := &domain.Scenario{Name: name}

	if s, _ := f.GetString("start"); s != "" {
		m, err := dateutil.ParseMonth(s)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		scenario.StartMonth = m
	}

	if s, _ := f.GetString("end"); s != "" {
		m, err := dateutil.ParseMonth(s)
		if err != nil {
			return nil, fmt.Errorf("--end: %w", err)
		}
		scenario.EndMonth = &m
	} else {
		scenario.DurationMonths = settings.General.DurationMonths
		if f.Changed("duration") {
			scenario.DurationMonths, _ = f.GetInt("duration")
			if scenario.DurationMonths == 0 {
				return nil, fmt.Errorf("--duration: must be positive")
			}
		}
	}

	amount, _ := f.GetString("amount")
	start, err := fdec.NewMoneyFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("--amount: %w", err)
	}
	scenario.StartAmount = start.Decimal

	for _, flag := range []string{"monthly", "annual"} {
		s, _ := f.GetString(flag)
		if s == "" {
			continue
		}
		m, err := fdec.NewMoneyFromString(s)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		d := m.Decimal
		if flag == "monthly" {
			scenario.MonthlyWithdrawal = &d
		} else {
			scenario.AnnualWithdrawal = &d
		}
	}
	return scenario, nil
}

// rowInterval returns --every, or the configured interval when unset.
func rowInterval(cmd *cobra.Command) int {
	if every, _ := cmd.Flags().GetInt("every"); every > 0 {
		return every
	}
	return settings.Output.Every
}

// outputFormat returns --format, or the configured format when unset.
func outputFormat(cmd *cobra.Command) string {
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		return format
	}
	return settings.Output.Format
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single drawdown from flags",
		Example: `  firecalc project --start 2026-01 --duration 360 --amount 1000000 --monthly 3000
  firecalc project --end 2060-12 --amount 1,500,000 --annual 48000 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			scenario, err := scenarioFromFlags(cmd, name)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(loggerFor(cmd))
			results, err := engine.RunScenarios(cmd.Context(), &domain.Configuration{Scenarios: []domain.Scenario{*scenario}})
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), results, outputFormat(cmd), rowInterval(cmd))
		},
	}
	addScenarioFlags(cmd)
	cmd.Flags().String("name", "projection", "Scenario name used in reports")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, detailed-csv, json, html)")
	return cmd
}
