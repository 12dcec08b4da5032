package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $HEALTHCALC_HOME/config.yaml (default ~/.healthcalc/config.yaml)
with the built-in defaults.`,
		Example: `  # Create configuration
  healthcalc config init

  # Create configuration, overwriting existing
  healthcalc config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initGlobalConfig writes the default configuration to the global path.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	cfg := config.Default()
	cfg.SetConfigPath(config.DefaultConfigPath())

	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
