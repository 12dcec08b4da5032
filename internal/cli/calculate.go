package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/report"
)

// NewBMICmd creates the bmi command.
func NewBMICmd() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Calculate body mass index and its category",
		Example: `  healthcalc bmi --weight 70 --height 170
  healthcalc bmi --weight 154 --height 67 --units imperial -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runBMI(cmd, &f))
		},
	}

	f.addWeight(cmd)
	f.addHeight(cmd)
	f.addUnits(cmd)
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func runBMI(cmd *cobra.Command, f *profileFlags) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	p, err := f.profile()
	if err != nil {
		return err
	}
	if err = health.ValidateWeight(p.Weight, p.Units); err != nil {
		return err
	}
	if err = health.ValidateHeight(p.Height, p.Units); err != nil {
		return err
	}

	result, err := health.ComputeBMI(p.Weight, p.Height, p.Units)
	if err != nil {
		return err
	}
	logger.Debug().Ctx(cmd.Context()).
		Float64("bmi", result.Value).
		Stringer("category", result.Category).
		Msg("bmi computed")

	return report.RenderBMI(cmd.OutOrStdout(), opts, result)
}

// NewIdealWeightCmd creates the ideal-weight command.
func NewIdealWeightCmd() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "ideal-weight",
		Short: "Calculate the weight range for a normal BMI at a given height",
		Example: `  healthcalc ideal-weight --height 170
  healthcalc ideal-weight --height 67 --units imperial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runIdealWeight(cmd, &f))
		},
	}

	f.addHeight(cmd)
	f.addUnits(cmd)
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func runIdealWeight(cmd *cobra.Command, f *profileFlags) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	p, err := f.profile()
	if err != nil {
		return err
	}
	if err = health.ValidateHeight(p.Height, p.Units); err != nil {
		return err
	}

	result, err := health.ComputeIdealWeight(p.Height, p.Units)
	if err != nil {
		return err
	}
	return report.RenderIdealWeight(cmd.OutOrStdout(), opts, result)
}

// NewCaloriesCmd creates the calories command.
func NewCaloriesCmd() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Calculate daily calorie needs and macronutrient split",
		Long: `Estimates basal metabolic rate with the Mifflin-St Jeor equation, scales it by
the activity multiplier and applies the goal adjustment (-500, 0 or +500
kcal/day). The result is split 30% protein, 50% carbohydrates and 20% fat.

Unknown --activity or --goal values fall back to sedentary and maintain
weight with a logged warning.`,
		Example: `  healthcalc calories --age 25 --weight 70 --height 170 --sex male
  healthcalc calories --age 40 --weight 180 --height 65 --sex female --units imperial --activity light --goal lose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runCalories(cmd, &f))
		},
	}

	f.addCalorieFlags(cmd)
	for _, name := range []string{"weight", "height", "age"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runCalories(cmd *cobra.Command, f *profileFlags) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	p, err := f.profile()
	if err != nil {
		return err
	}
	if err = p.Validate(); err != nil {
		return err
	}

	result, err := health.ComputeCalories(p.BiometricInput, p.Activity, p.Goal)
	if err != nil {
		return err
	}
	logger.Debug().Ctx(cmd.Context()).
		Float64("bmr", result.BMR).
		Int("daily_calories", result.DailyCalories).
		Msg("calories computed")

	return report.RenderCalories(cmd.OutOrStdout(), opts, result)
}

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Produce a full health report with recommendations",
		Example: `  healthcalc report --age 25 --weight 70 --height 170 --sex male
  healthcalc report --name alex --age 25 --weight 70 --height 170 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runReport(cmd, &f))
		},
	}

	f.addCalorieFlags(cmd)
	cmd.Flags().StringVar(&f.name, "name", "", "label shown on the report")
	for _, name := range []string{"weight", "height", "age"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runReport(cmd *cobra.Command, f *profileFlags) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	p, err := f.profile()
	if err != nil {
		return err
	}
	if err = p.Validate(); err != nil {
		return err
	}

	result, err := health.Assess(p)
	if err != nil {
		return err
	}
	return report.RenderReport(cmd.OutOrStdout(), opts, result)
}

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	var bmi float64

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List BMI categories and their ranges",
		Example: `  healthcalc categories
  healthcalc categories --bmi 27.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := renderOptions(cmd)
			if err != nil {
				return inputError(err)
			}

			var current *health.BMICategory
			if cmd.Flags().Changed("bmi") {
				c, catErr := health.Categorize(bmi)
				if catErr != nil {
					return inputError(catErr)
				}
				current = &c
			}
			return report.RenderCategories(cmd.OutOrStdout(), opts, current)
		},
	}

	cmd.Flags().Float64Var(&bmi, "bmi", 0, "highlight the category of this BMI value")

	return cmd
}
