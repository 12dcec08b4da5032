// Package health is the health metrics engine.
//
// It turns a handful of biometric inputs (weight, height, age, sex, activity
// level, goal, unit system) into a Body Mass Index with its category, an
// ideal-weight range and a daily calorie target with macronutrient split.
//
// Every function is pure and synchronous. Nothing in this package performs
// I/O or holds state, so all of it is safe for concurrent use.
package health

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

// UnitSystem selects the physical units of weight and height.
type UnitSystem int

const (
	// Metric uses kilograms and centimeters.
	Metric UnitSystem = iota
	// Imperial uses pounds and inches.
	Imperial
)

// String returns the human-readable label of the unit system.
func (u UnitSystem) String() string {
	switch u {
	case Metric:
		return "Metric (kg, cm)"
	case Imperial:
		return "Imperial (lbs, inches)"
	default:
		return fmt.Sprintf("UnitSystem(%d)", u)
	}
}

// WeightUnit returns the abbreviation of the weight unit.
func (u UnitSystem) WeightUnit() string {
	if u == Imperial {
		return "lbs"
	}
	return "kg"
}

// HeightUnit returns the abbreviation of the height unit.
func (u UnitSystem) HeightUnit() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}

// MarshalText encodes the unit system as "metric" or "imperial".
func (u UnitSystem) MarshalText() ([]byte, error) {
	switch u {
	case Metric:
		return []byte("metric"), nil
	case Imperial:
		return []byte("imperial"), nil
	default:
		return nil, fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(u))
	}
}

// UnmarshalText decodes a unit system string using ParseUnitSystem.
func (u *UnitSystem) UnmarshalText(text []byte) error {
	parsed, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnitSystem parses a unit system name. It accepts "metric", "imperial",
// "si", "us" and the long labels returned by String, case-insensitively.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch normalizeKey(s) {
	case "metric", "si", "metric_kg_cm":
		return Metric, nil
	case "imperial", "us", "imperial_lbs_inches":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("%w: unit system %q", ErrUnknownValue, s)
	}
}

// Sex selects the Mifflin-St Jeor constant.
type Sex int

const (
	// Male uses the +5 kcal offset.
	Male Sex = iota
	// Female uses the −161 kcal offset.
	Female
)

// String returns "Male" or "Female".
func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return fmt.Sprintf("Sex(%d)", s)
	}
}

// MarshalText encodes the sex as "male" or "female".
func (s Sex) MarshalText() ([]byte, error) {
	switch s {
	case Male, Female:
		return []byte(strings.ToLower(s.String())), nil
	default:
		return nil, fmt.Errorf("%w: sex %d", ErrUnknownValue, int(s))
	}
}

// UnmarshalText decodes a sex string using ParseSex.
func (s *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSex parses "male"/"m" or "female"/"f", case-insensitively.
func ParseSex(s string) (Sex, error) {
	switch normalizeKey(s) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Male, fmt.Errorf("%w: sex %q", ErrUnknownValue, s)
	}
}

// ActivityLevel describes habitual physical activity.
type ActivityLevel int

const (
	// Sedentary is little or no exercise.
	Sedentary ActivityLevel = iota
	// LightlyActive is light exercise 1-3 days a week.
	LightlyActive
	// ModeratelyActive is moderate exercise 3-5 days a week.
	ModeratelyActive
	// VeryActive is hard exercise 6-7 days a week.
	VeryActive
	// ExtremelyActive is very hard exercise or a physical job.
	ExtremelyActive
)

// AllActivityLevels returns the activity levels in ascending order.
func AllActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}
}

// String returns the display label of the activity level.
func (a ActivityLevel) String() string {
	switch a {
	case Sedentary:
		return "Sedentary"
	case LightlyActive:
		return "Lightly active"
	case ModeratelyActive:
		return "Moderately active"
	case VeryActive:
		return "Very active"
	case ExtremelyActive:
		return "Extremely active"
	default:
		return fmt.Sprintf("ActivityLevel(%d)", a)
	}
}

// Multiplier returns the BMR multiplier for the activity level.
// Values outside the enumeration fall back to the sedentary multiplier.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case Sedentary:
		return SedentaryMultiplier
	case LightlyActive:
		return LightlyActiveMultiplier
	case ModeratelyActive:
		return ModeratelyActiveMultiplier
	case VeryActive:
		return VeryActiveMultiplier
	case ExtremelyActive:
		return ExtremelyActiveMultiplier
	default:
		log.Warn().
			Str("component", "health").
			Int("activity_level", int(a)).
			Float64("multiplier", SedentaryMultiplier).
			Msg("unknown activity level, using sedentary multiplier")
		return SedentaryMultiplier
	}
}

// MarshalText encodes the activity level as a snake_case slug.
func (a ActivityLevel) MarshalText() ([]byte, error) {
	if a < Sedentary || a > ExtremelyActive {
		return nil, fmt.Errorf("%w: activity level %d", ErrUnknownValue, int(a))
	}
	return []byte(normalizeKey(a.String())), nil
}

// UnmarshalText decodes an activity level leniently: unrecognized strings
// become Sedentary and a warning is logged.
func (a *ActivityLevel) UnmarshalText(text []byte) error {
	*a = ActivityLevelOrDefault(string(text))
	return nil
}

// ParseActivityLevel parses an activity level strictly. It accepts the
// display labels ("Lightly active"), their slugs ("lightly_active",
// "lightly-active") and the short forms "light", "moderate" and "extreme".
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch normalizeKey(s) {
	case "sedentary":
		return Sedentary, nil
	case "lightly_active", "light":
		return LightlyActive, nil
	case "moderately_active", "moderate":
		return ModeratelyActive, nil
	case "very_active":
		return VeryActive, nil
	case "extremely_active", "extreme":
		return ExtremelyActive, nil
	default:
		return Sedentary, fmt.Errorf("%w: activity level %q", ErrUnknownValue, s)
	}
}

// ActivityLevelOrDefault parses an activity level, falling back to Sedentary
// when the string is not recognized. The fallback is logged at warn level.
func ActivityLevelOrDefault(s string) ActivityLevel {
	level, err := ParseActivityLevel(s)
	if err != nil {
		log.Warn().
			Str("component", "health").
			Str("activity_level", s).
			Msg("unrecognized activity level, defaulting to sedentary")
	}
	return level
}

// Goal is the user's weight goal.
type Goal int

const (
	// MaintainWeight keeps calories at maintenance. It is the zero value.
	MaintainWeight Goal = iota
	// LoseWeight subtracts 500 kcal/day.
	LoseWeight
	// GainWeight adds 500 kcal/day.
	GainWeight
)

// AllGoals returns the goals in display order.
func AllGoals() []Goal {
	return []Goal{LoseWeight, MaintainWeight, GainWeight}
}

// String returns the display label of the goal.
func (g Goal) String() string {
	switch g {
	case LoseWeight:
		return "Lose weight"
	case MaintainWeight:
		return "Maintain weight"
	case GainWeight:
		return "Gain weight"
	default:
		return fmt.Sprintf("Goal(%d)", g)
	}
}

// Offset returns the daily calorie adjustment for the goal.
// Values outside the enumeration fall back to no adjustment.
func (g Goal) Offset() int {
	switch g {
	case LoseWeight:
		return LoseWeightOffset
	case MaintainWeight:
		return MaintainWeightOffset
	case GainWeight:
		return GainWeightOffset
	default:
		log.Warn().
			Str("component", "health").
			Int("goal", int(g)).
			Msg("unknown goal, using maintenance offset")
		return MaintainWeightOffset
	}
}

// MarshalText encodes the goal as a snake_case slug.
func (g Goal) MarshalText() ([]byte, error) {
	if g < MaintainWeight || g > GainWeight {
		return nil, fmt.Errorf("%w: goal %d", ErrUnknownValue, int(g))
	}
	return []byte(normalizeKey(g.String())), nil
}

// UnmarshalText decodes a goal leniently: unrecognized strings become
// MaintainWeight and a warning is logged.
func (g *Goal) UnmarshalText(text []byte) error {
	*g = GoalOrDefault(string(text))
	return nil
}

// ParseGoal parses a goal strictly. It accepts the display labels, their
// slugs and the short forms "lose", "maintain" and "gain".
func ParseGoal(s string) (Goal, error) {
	switch normalizeKey(s) {
	case "lose_weight", "lose":
		return LoseWeight, nil
	case "maintain_weight", "maintain":
		return MaintainWeight, nil
	case "gain_weight", "gain":
		return GainWeight, nil
	default:
		return MaintainWeight, fmt.Errorf("%w: goal %q", ErrUnknownValue, s)
	}
}

// GoalOrDefault parses a goal, falling back to MaintainWeight when the string
// is not recognized. The fallback is logged at warn level.
func GoalOrDefault(s string) Goal {
	goal, err := ParseGoal(s)
	if err != nil {
		log.Warn().
			Str("component", "health").
			Str("goal", s).
			Msg("unrecognized goal, defaulting to maintain weight")
	}
	return goal
}

// BMICategory is the classification of a BMI value.
type BMICategory int

const (
	Underweight BMICategory = iota
	NormalWeight
	Overweight
	ObesityClassI
	ObesityClassII
	ObesityClassIII
)

// AllCategories returns the categories in ascending BMI order.
func AllCategories() []BMICategory {
	return []BMICategory{Underweight, NormalWeight, Overweight, ObesityClassI, ObesityClassII, ObesityClassIII}
}

// String returns the display label of the category.
func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal weight"
	case Overweight:
		return "Overweight"
	case ObesityClassI:
		return "Obesity Class I"
	case ObesityClassII:
		return "Obesity Class II"
	case ObesityClassIII:
		return "Obesity Class III"
	default:
		return fmt.Sprintf("BMICategory(%d)", c)
	}
}

// MarshalText encodes the category as a snake_case slug.
func (c BMICategory) MarshalText() ([]byte, error) {
	if c < Underweight || c > ObesityClassIII {
		return nil, fmt.Errorf("%w: bmi category %d", ErrUnknownValue, int(c))
	}
	return []byte(normalizeKey(c.String())), nil
}

// ParseBMICategory parses a category by its display label or slug, e.g.
// "Obesity Class I" or "obesity_class_i". "normal" is accepted for NormalWeight.
func ParseBMICategory(s string) (BMICategory, error) {
	key := normalizeKey(s)
	if key == "normal" {
		return NormalWeight, nil
	}
	for _, c := range AllCategories() {
		if key == normalizeKey(c.String()) {
			return c, nil
		}
	}
	return Underweight, fmt.Errorf("%w: bmi category %q", ErrUnknownValue, s)
}

// Bounds returns the half-open interval [lower, upper) used to categorize.
// The upper bound of ObesityClassIII is +Inf.
func (c BMICategory) Bounds() (float64, float64) {
	switch c {
	case Underweight:
		return 0, NormalWeightMinBMI
	case NormalWeight:
		return NormalWeightMinBMI, OverweightMinBMI
	case Overweight:
		return OverweightMinBMI, ObesityIMinBMI
	case ObesityClassI:
		return ObesityIMinBMI, ObesityIIMinBMI
	case ObesityClassII:
		return ObesityIIMinBMI, ObesityIIIMinBMI
	default:
		return ObesityIIIMinBMI, math.Inf(1)
	}
}

// DisplayRange returns the published one-decimal range for the category,
// e.g. (18.5, 24.9) for NormalWeight. The maximum of ObesityClassIII is +Inf.
func (c BMICategory) DisplayRange() (float64, float64) {
	const step = 0.1
	lower, upper := c.Bounds()
	if math.IsInf(upper, 1) {
		return lower, upper
	}
	return lower, math.Round((upper-step)*10) / 10
}

// Band groups categories into the four severity bands used for display.
type Band string

const (
	BandUnderweight Band = "underweight"
	BandHealthy     Band = "healthy"
	BandOverweight  Band = "overweight"
	BandObese       Band = "obese"
)

// ParseBand parses a severity band name.
func ParseBand(s string) (Band, error) {
	switch b := Band(normalizeKey(s)); b {
	case BandUnderweight, BandHealthy, BandOverweight, BandObese:
		return b, nil
	default:
		return "", fmt.Errorf("%w: band %q", ErrUnknownValue, s)
	}
}

// Band returns the severity band of the category.
func (c BMICategory) Band() Band {
	switch c {
	case NormalWeight:
		return BandHealthy
	case Overweight, ObesityClassI:
		return BandOverweight
	case ObesityClassII, ObesityClassIII:
		return BandObese
	default:
		return BandUnderweight
	}
}

// BiometricInput holds the measurements of one person in one unit system.
type BiometricInput struct {
	Weight float64    `json:"weight" yaml:"weight"`
	Height float64    `json:"height" yaml:"height"`
	Age    int        `json:"age" yaml:"age"`
	Sex    Sex        `json:"sex" yaml:"sex"`
	Units  UnitSystem `json:"units" yaml:"units"`
}

// BMIResult is a rounded BMI value and its category.
type BMIResult struct {
	Value    float64     `json:"value" yaml:"value"`
	Category BMICategory `json:"category" yaml:"category"`
}

// IdealWeightRange is the weight range that gives a Normal-weight BMI at a
// given height, expressed in the unit system of the request.
type IdealWeightRange struct {
	Min   float64    `json:"min" yaml:"min"`
	Max   float64    `json:"max" yaml:"max"`
	Units UnitSystem `json:"units" yaml:"units"`
}

// Macros is a macronutrient split in whole grams.
type Macros struct {
	ProteinGrams int `json:"protein_grams" yaml:"protein_grams"`
	CarbGrams    int `json:"carb_grams" yaml:"carb_grams"`
	FatGrams     int `json:"fat_grams" yaml:"fat_grams"`
}

// CalorieResult is a daily calorie target with its macronutrient split.
type CalorieResult struct {
	DailyCalories int    `json:"daily_calories" yaml:"daily_calories"`
	Macros        Macros `json:"macros" yaml:"macros"`

	// BMR is the unrounded Mifflin-St Jeor basal metabolic rate.
	BMR float64 `json:"bmr" yaml:"bmr"`

	// MaintenanceCalories is BMR × activity multiplier, truncated.
	MaintenanceCalories int `json:"maintenance_calories" yaml:"maintenance_calories"`

	Activity ActivityLevel `json:"activity" yaml:"activity"`
	Goal     Goal          `json:"goal" yaml:"goal"`
}

// normalizeKey lowercases s and joins its alphanumeric runs with underscores,
// so "Lightly active", "lightly-active" and "LIGHTLY_ACTIVE" compare equal.
func normalizeKey(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(fields, "_")
}
