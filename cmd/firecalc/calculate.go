package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate every scenario in a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configData, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(loggerFor(cmd))
			engine.Parallelism, _ = cmd.Flags().GetInt("parallel")
			results, err := engine.RunScenarios(cmd.Context(), configData)
			if err != nil {
				return err
			}

			format, every := outputFormat(cmd), rowInterval(cmd)
			outDir, _ := cmd.Flags().GetString("output-dir")
			if outDir == "" {
				return output.Render(cmd.OutOrStdout(), results, format, every)
			}

			files, err := output.GenerateReport(results, format, outDir, every)
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
			}
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, detailed-csv, json, html, or all with --output-dir)")
	cmd.Flags().Int("every", 0, "Months between table rows (defaults to the configured interval)")
	cmd.Flags().String("output-dir", "", "Write timestamped report files to this directory instead of stdout")
	cmd.Flags().Int("parallel", 0, "Maximum scenarios calculated concurrently (0 = number of CPUs)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configData, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(configData.Scenarios))
			for _, sc := range configData.Scenarios {
				names = append(names, sc.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d scenario(s): %s\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}
