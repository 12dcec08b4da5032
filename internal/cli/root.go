package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/config"
	"github.com/rshade/healthcalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the healthcalc CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calculator, batch, interactive and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "healthcalc",
		Short: "Personal health metrics calculator",
		Long: `healthcalc computes BMI and its category, a healthy weight range, and a
daily calorie target with macronutrient split from height, weight, age, sex,
activity level and goal. Metric (kg/cm) and imperial (lbs/inches) units are
supported.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, ver); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections override the global configuration")
	cmd.PersistentFlags().StringP("output", "o", "",
		"output format: table, json, ndjson or yaml (default from configuration)")
	cmd.PersistentFlags().Bool("no-color", false, "disable styled table output")

	cmd.AddCommand(
		NewBMICmd(), NewIdealWeightCmd(), NewCaloriesCmd(), NewReportCmd(),
		NewCategoriesCmd(), NewBatchCmd(), NewInteractiveCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # BMI from metric measurements
  healthcalc bmi --weight 70 --height 170

  # Healthy weight range in imperial units
  healthcalc ideal-weight --height 67 --units imperial

  # Daily calories to lose weight with moderate activity
  healthcalc calories --age 25 --weight 70 --height 170 --sex male --activity moderate --goal lose

  # Full report as JSON
  healthcalc report --age 25 --weight 70 --height 170 --sex female -o json

  # Assess every profile in a file
  healthcalc batch --file profiles.yaml

  # Edit a profile interactively
  healthcalc interactive

  # Initialize configuration
  healthcalc config init`

// loadConfig builds the process-wide configuration from the global config
// file, environment variables and the optional --config overlay, then checks
// the binary version against the "requires" constraint.
func loadConfig(cmd *cobra.Command, ver string) error {
	cfg := config.New()

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config: %w", err)
		}
	}
	config.SetGlobalConfig(cfg)

	// Config commands must keep working so a bad constraint can be fixed.
	if isConfigCommand(cmd) {
		return nil
	}
	return cfg.CheckVersion(ver)
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.Parent() != nil && c.Parent().Parent() == nil {
			return true
		}
	}
	return false
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
