package health

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasalMetabolicRate(t *testing.T) {
	assert.InDelta(t, 1642.5, BasalMetabolicRate(25, 70, 170, Male), 1e-9)
	assert.InDelta(t, 1476.5, BasalMetabolicRate(25, 70, 170, Female), 1e-9)
	assert.InDelta(t, 1305.0, BasalMetabolicRate(60, 60, 160, Male), 1e-9)
	assert.InDelta(t, -161.0, BasalMetabolicRate(0, 0, 0, Female), 1e-9)
}

func TestDailyCalories(t *testing.T) {
	tests := []struct {
		name     string
		bmr      float64
		activity ActivityLevel
		goal     Goal
		want     int
	}{
		{name: "sedentary maintain", bmr: 1642.5, activity: Sedentary, goal: MaintainWeight, want: 1971},
		{name: "sedentary lose", bmr: 1642.5, activity: Sedentary, goal: LoseWeight, want: 1471},
		{name: "lightly active maintain", bmr: 1600, activity: LightlyActive, goal: MaintainWeight, want: 2200},
		{name: "moderately active gain", bmr: 1500, activity: ModeratelyActive, goal: GainWeight, want: 2825},
		{name: "very active gain truncates", bmr: 1642.5, activity: VeryActive, goal: GainWeight, want: 3333},
		{name: "extremely active maintain", bmr: 1476.5, activity: ExtremelyActive, goal: MaintainWeight, want: 2805},
		{name: "unknown activity uses sedentary", bmr: 1642.5, activity: ActivityLevel(42), goal: MaintainWeight, want: 1971},
		{name: "unknown goal uses maintenance", bmr: 1642.5, activity: Sedentary, goal: Goal(-3), want: 1971},
		{name: "negative target clamps to zero", bmr: 100, activity: Sedentary, goal: LoseWeight, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyCalories(tt.bmr, tt.activity, tt.goal))
		})
	}
}

func TestMacronutrientSplit(t *testing.T) {
	tests := []struct {
		calories int
		want     Macros
	}{
		{calories: 2000, want: Macros{ProteinGrams: 150, CarbGrams: 250, FatGrams: 44}},
		{calories: 1971, want: Macros{ProteinGrams: 147, CarbGrams: 246, FatGrams: 43}},
		{calories: 1, want: Macros{}},
		{calories: 0, want: Macros{}},
		{calories: -250, want: Macros{}},
	}

	for _, tt := range tests {
		got := MacronutrientSplit(tt.calories)
		assert.Equal(t, tt.want, got, "calories=%d", tt.calories)
	}
}

func TestMacronutrientSplit_NonNegativeAndBounded(t *testing.T) {
	for kcal := 0; kcal <= 6000; kcal += 37 {
		m := MacronutrientSplit(kcal)
		assert.GreaterOrEqual(t, m.ProteinGrams, 0)
		assert.GreaterOrEqual(t, m.CarbGrams, 0)
		assert.GreaterOrEqual(t, m.FatGrams, 0)

		// Truncation drift is expected but never overshoots.
		total := m.ProteinGrams*4 + m.CarbGrams*4 + m.FatGrams*9
		assert.LessOrEqual(t, total, kcal)
	}
}

func TestComputeCalories(t *testing.T) {
	t.Run("metric reference scenario", func(t *testing.T) {
		in := BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Male, Units: Metric}
		got, err := ComputeCalories(in, Sedentary, MaintainWeight)
		require.NoError(t, err)

		assert.InDelta(t, 1642.5, got.BMR, 1e-9)
		assert.Equal(t, 1971, got.MaintenanceCalories)
		assert.Equal(t, 1971, got.DailyCalories)
		assert.Equal(t, Macros{ProteinGrams: 147, CarbGrams: 246, FatGrams: 43}, got.Macros)
		assert.Equal(t, Sedentary, got.Activity)
		assert.Equal(t, MaintainWeight, got.Goal)
	})

	t.Run("imperial input is normalized", func(t *testing.T) {
		in := BiometricInput{Weight: 154, Height: 67, Age: 25, Sex: Male, Units: Imperial}
		got, err := ComputeCalories(in, Sedentary, MaintainWeight)
		require.NoError(t, err)

		wantBMR := 10*154*PoundsToKg + 6.25*67*InchesToCm - 5*25 + 5
		assert.InDelta(t, wantBMR, got.BMR, 1e-9)
		assert.Equal(t, int(wantBMR*SedentaryMultiplier), got.DailyCalories)
	})

	t.Run("female lose weight", func(t *testing.T) {
		in := BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Female, Units: Metric}
		got, err := ComputeCalories(in, Sedentary, LoseWeight)
		require.NoError(t, err)
		assert.Equal(t, 1271, got.DailyCalories)
		assert.Equal(t, 1771, got.MaintenanceCalories)
	})

	t.Run("unknown activity falls back without error", func(t *testing.T) {
		in := BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Male, Units: Metric}
		level := ActivityLevelOrDefault("couch potato")
		got, err := ComputeCalories(in, level, MaintainWeight)
		require.NoError(t, err)
		assert.Equal(t, Sedentary, level)
		assert.Equal(t, 1971, got.DailyCalories)
	})

	invalid := []struct {
		name string
		in   BiometricInput
	}{
		{name: "zero weight", in: BiometricInput{Weight: 0, Height: 170, Age: 25}},
		{name: "zero height", in: BiometricInput{Weight: 70, Height: 0, Age: 25}},
		{name: "negative age", in: BiometricInput{Weight: 70, Height: 170, Age: -1}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCalories(tt.in, Sedentary, MaintainWeight)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	unknown := []struct {
		name string
		in   BiometricInput
	}{
		{name: "unknown unit system", in: BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Male, Units: UnitSystem(9)}},
		{name: "unknown sex", in: BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Sex(7), Units: Metric}},
	}
	for _, tt := range unknown {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCalories(tt.in, Sedentary, MaintainWeight)
			require.ErrorIs(t, err, ErrUnknownValue)
			assert.Equal(t, CalorieResult{}, got)
		})
	}
}

func TestComputeCalories_UnknownActivityWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = saved })

	in := BiometricInput{Weight: 70, Height: 170, Age: 25, Sex: Male, Units: Metric}
	got, err := ComputeCalories(in, ActivityLevel(42), MaintainWeight)
	require.NoError(t, err)
	assert.Equal(t, 1971, got.DailyCalories)
	assert.Equal(t, 1971, got.MaintenanceCalories)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "fallback warning logged once: %s", buf.String())
}
