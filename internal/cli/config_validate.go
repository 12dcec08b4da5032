package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.healthcalc/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax
- Output format and logging level/format values
- Default units, sex, activity level and goal
- The "requires" version constraint`,
		Example: `  # Validate current configuration
  healthcalc config validate

  # Validate and show detailed information
  healthcalc config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	// Load reports parse errors that the global config silently replaces
	// with defaults.
	if _, err := config.Load(config.DefaultConfigPath()); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.ResolvedFile())
	}
	cmd.Printf("  Default units: %s\n", cfg.Defaults.Units)
	cmd.Printf("  Default sex: %s\n", cfg.Defaults.Sex)
	cmd.Printf("  Default activity: %s\n", cfg.Defaults.Activity)
	cmd.Printf("  Default goal: %s\n", cfg.Defaults.Goal)
	if cfg.Requires != "" {
		cmd.Printf("  Requires: %s\n", cfg.Requires)
	}
}
