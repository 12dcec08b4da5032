package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/tui"
)

// Starting measurements for the interactive editor when none are given.
const (
	defaultMetricWeight   = 70.0
	defaultMetricHeight   = 170.0
	defaultImperialWeight = 154.0
	defaultImperialHeight = 67.0
	defaultAge            = 30
)

// errNotTerminal is returned when interactive mode runs without a terminal.
var errNotTerminal = errors.New("interactive mode requires a terminal; use the report command instead")

// NewInteractiveCmd creates the interactive command.
func NewInteractiveCmd() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Edit a profile and watch the report update",
		Long: `Opens a terminal editor for weight, height, age, sex, units, activity level
and goal. The report is recalculated after every change. Press c to show the
BMI category table and q to quit.`,
		Example: `  healthcalc interactive
  healthcalc interactive --weight 82 --height 180 --age 41 --sex female`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runInteractive(cmd, &f))
		},
	}

	f.addCalorieFlags(cmd)

	return cmd
}

func runInteractive(cmd *cobra.Command, f *profileFlags) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if tui.DetectOutputMode(false, noColor, true) != tui.OutputModeInteractive {
		return errNotTerminal
	}

	p, err := f.profile()
	if err != nil {
		return err
	}
	applyInteractiveDefaults(&p)

	model := tui.NewProfileModel(p, nil)
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err = program.Run(); err != nil {
		return err
	}

	logger.Debug().Ctx(cmd.Context()).Msg("interactive session ended")
	return nil
}

// applyInteractiveDefaults fills unset measurements with typical adult
// values in the profile's unit system.
func applyInteractiveDefaults(p *health.Profile) {
	if p.Weight == 0 {
		p.Weight = defaultMetricWeight
		if p.Units == health.Imperial {
			p.Weight = defaultImperialWeight
		}
	}
	if p.Height == 0 {
		p.Height = defaultMetricHeight
		if p.Units == health.Imperial {
			p.Height = defaultImperialHeight
		}
	}
	if p.Age == 0 {
		p.Age = defaultAge
	}
}
