package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/config"
	"github.com/rshade/healthcalc/internal/report"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, environment and --config overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  healthcalc config show
  healthcalc config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := report.OutputYAML
			if output, _ := cmd.Flags().GetString("output"); output != "" {
				parsed, err := report.ParseOutputFormat(output)
				if err != nil {
					return inputError(err)
				}
				// Tables make no sense for nested config; YAML is the file format.
				if parsed != report.OutputTable {
					format = parsed
				}
			}

			cfg := config.GetGlobalConfig()
			if format == report.OutputYAML {
				cmd.Printf("# %s\n", cfg.ConfigPath())
			}
			return report.RenderConfig(cmd.OutOrStdout(), report.Options{Format: format}, cfg)
		},
	}
}
