package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Settings file: %s\n", config.SettingsPath())
			if config.SettingsExist() {
				fmt.Fprintln(out, "  Status: loaded")
			} else {
				fmt.Fprintln(out, "  Status: using defaults (no settings file)")
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [general]")
			fmt.Fprintf(out, "    duration_months: %d\n", settings.General.DurationMonths)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [output]")
			fmt.Fprintf(out, "    format: %s\n", settings.Output.Format)
			fmt.Fprintf(out, "    every:  %d\n", settings.Output.Every)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  Run `firecalc config init` to write these settings to disk.")
			return nil
		},
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force, _ := cmd.Flags().GetBool("force"); config.SettingsExist() && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", config.SettingsPath())
			}
			if err := config.SaveSettings(settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", config.SettingsPath())
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing settings file")
	return cmd
}
