package health

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// BasalMetabolicRate estimates resting energy expenditure in kcal/day with
// the Mifflin-St Jeor equation. weightKg and heightCm must already be metric.
//
//	Male:   10·weight + 6.25·height − 5·age + 5
//	Female: 10·weight + 6.25·height − 5·age − 161
func BasalMetabolicRate(age int, weightKg, heightCm float64, sex Sex) float64 {
	bmr := BMRWeightCoefficient*weightKg +
		BMRHeightCoefficient*heightCm -
		BMRAgeCoefficient*float64(age)

	if sex == Male {
		return bmr + BMRMaleOffset
	}
	return bmr + BMRFemaleOffset
}

// DailyCalories returns the calorie target for bmr at the given activity
// level and goal: trunc(bmr × multiplier + offset). The result is truncated
// toward zero, not rounded, and never negative.
func DailyCalories(bmr float64, activity ActivityLevel, goal Goal) int {
	return dailyCalories(bmr, activity.Multiplier(), goal)
}

func dailyCalories(bmr, multiplier float64, goal Goal) int {
	adjusted := bmr*multiplier + float64(goal.Offset())
	if adjusted < 0 || math.IsNaN(adjusted) {
		log.Debug().
			Str("component", "health").
			Float64("adjusted_calories", adjusted).
			Msg("calorie target below zero, clamping")
		return 0
	}
	return int(adjusted)
}

// MacronutrientSplit divides dailyCalories into 30% protein, 50% carbohydrate
// and 20% fat, converted to grams and truncated independently. The grams
// re-multiplied by their energy densities may fall a few kcal short of
// dailyCalories. Non-positive calories give a zero split.
func MacronutrientSplit(dailyCalories int) Macros {
	if dailyCalories <= 0 {
		return Macros{}
	}
	kcal := float64(dailyCalories)
	return Macros{
		ProteinGrams: int(kcal * ProteinRatio / KcalPerGramProtein),
		CarbGrams:    int(kcal * CarbRatio / KcalPerGramCarb),
		FatGrams:     int(kcal * FatRatio / KcalPerGramFat),
	}
}

// ComputeCalories normalizes in to metric and returns its daily calorie
// target and macronutrient split for activity and goal.
//
// Returns ErrInvalidInput if weight or height is not a positive finite number
// or age is negative, and ErrUnknownValue if units or sex is outside its
// enumeration.
func ComputeCalories(in BiometricInput, activity ActivityLevel, goal Goal) (CalorieResult, error) {
	if in.Units != Metric && in.Units != Imperial {
		return CalorieResult{}, fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(in.Units))
	}
	if in.Sex != Male && in.Sex != Female {
		return CalorieResult{}, fmt.Errorf("%w: sex %d", ErrUnknownValue, int(in.Sex))
	}
	if err := requirePositive("weight", in.Weight); err != nil {
		return CalorieResult{}, err
	}
	if err := requirePositive("height", in.Height); err != nil {
		return CalorieResult{}, err
	}
	if in.Age < 0 {
		return CalorieResult{}, fmt.Errorf("%w: age must not be negative, got %d", ErrInvalidInput, in.Age)
	}

	metric := ToMetric(in)
	bmr := BasalMetabolicRate(metric.Age, metric.Weight, metric.Height, metric.Sex)
	multiplier := activity.Multiplier()
	maintenance := bmr * multiplier
	daily := dailyCalories(bmr, multiplier, goal)

	return CalorieResult{
		DailyCalories:       daily,
		Macros:              MacronutrientSplit(daily),
		BMR:                 bmr,
		MaintenanceCalories: int(math.Max(maintenance, 0)),
		Activity:            activity,
		Goal:                goal,
	}, nil
}
