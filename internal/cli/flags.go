package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/config"
	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/report"
	"github.com/rshade/healthcalc/internal/tui"
)

// profileFlags holds the measurement and preference flags shared by the
// calculator commands. Empty enum values fall back to config defaults.
type profileFlags struct {
	name     string
	weight   float64
	height   float64
	age      int
	sex      string
	units    string
	activity string
	goal     string
}

func (f *profileFlags) addWeight(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "body weight in kg (metric) or lbs (imperial)")
}

func (f *profileFlags) addHeight(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.height, "height", 0, "height in cm (metric) or inches (imperial)")
}

func (f *profileFlags) addUnits(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.units, "units", "u", "", "unit system: metric or imperial (default from configuration)")
}

// addCalorieFlags adds every flag needed for a calorie calculation.
func (f *profileFlags) addCalorieFlags(cmd *cobra.Command) {
	f.addWeight(cmd)
	f.addHeight(cmd)
	f.addUnits(cmd)
	cmd.Flags().IntVar(&f.age, "age", 0, "age in years")
	cmd.Flags().StringVar(&f.sex, "sex", "", "biological sex: male or female (default from configuration)")
	cmd.Flags().StringVar(&f.activity, "activity", "",
		"activity level: sedentary, light, moderate, very_active or extreme (default from configuration)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "weight goal: lose, maintain or gain (default from configuration)")
}

// resolveDefaults converts the configured defaults into engine values.
// Activity and goal are lenient; units and sex must parse.
func resolveDefaults() (batch.Defaults, error) {
	d := config.GetGlobalConfig().Defaults

	units, err := health.ParseUnitSystem(d.Units)
	if err != nil {
		return batch.Defaults{}, err
	}
	sex, err := health.ParseSex(d.Sex)
	if err != nil {
		return batch.Defaults{}, err
	}

	return batch.Defaults{
		Units:    units,
		Sex:      sex,
		Activity: health.ActivityLevelOrDefault(d.Activity),
		Goal:     health.GoalOrDefault(d.Goal),
	}, nil
}

// profile builds a health.Profile from the flags and config defaults.
func (f *profileFlags) profile() (health.Profile, error) {
	defaults, err := resolveDefaults()
	if err != nil {
		return health.Profile{}, err
	}
	entry := batch.Entry{
		Name:     f.name,
		Weight:   f.weight,
		Height:   f.height,
		Age:      f.age,
		Sex:      f.sex,
		Units:    f.units,
		Activity: f.activity,
		Goal:     f.goal,
	}
	return entry.Profile(defaults)
}

// renderOptions resolves --output and terminal styling for cmd.
func renderOptions(cmd *cobra.Command) (report.Options, error) {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = config.GetDefaultOutputFormat()
	}
	format, err := report.ParseOutputFormat(output)
	if err != nil {
		return report.Options{}, err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	mode := tui.DetectOutputMode(false, noColor, false)

	return report.Options{
		Format: format,
		Styled: format == report.OutputTable && mode == tui.OutputModeStyled,
	}, nil
}
