package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a drawdown interactively",
		Long:  "Launches an interactive calculator. Flags set the initial values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := scenarioFromFlags(cmd, "tui")
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngine()
			engine.SetLogger(loggerFor(cmd))
			calc, err := engine.BuildCalculator(scenario)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(calc, rowInterval(cmd)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}
	addScenarioFlags(cmd)
	return cmd
}
