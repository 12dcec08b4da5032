package health

import (
	"fmt"
	"math"
)

// PoundsToKilograms converts a weight in pounds to kilograms.
func PoundsToKilograms(lbs float64) float64 {
	return lbs * PoundsToKg
}

// KilogramsToPounds converts a weight in kilograms to pounds.
func KilogramsToPounds(kg float64) float64 {
	return kg / PoundsToKg
}

// InchesToCentimeters converts a height in inches to centimeters.
func InchesToCentimeters(in float64) float64 {
	return in * InchesToCm
}

// CentimetersToInches converts a height in centimeters to inches.
func CentimetersToInches(cm float64) float64 {
	return cm / InchesToCm
}

// ToMetric returns a copy of in expressed in kilograms and centimeters.
// Inputs already in metric are returned unchanged.
func ToMetric(in BiometricInput) BiometricInput {
	if in.Units != Imperial {
		return in
	}
	out := in
	out.Weight = PoundsToKilograms(in.Weight)
	out.Height = InchesToCentimeters(in.Height)
	out.Units = Metric
	return out
}

// ToImperial returns a copy of in expressed in pounds and inches.
// Inputs already in imperial are returned unchanged.
func ToImperial(in BiometricInput) BiometricInput {
	if in.Units == Imperial {
		return in
	}
	out := in
	out.Weight = KilogramsToPounds(in.Weight)
	out.Height = CentimetersToInches(in.Height)
	out.Units = Imperial
	return out
}

// Validate checks in against plausible human bounds for its unit system:
// weight in (0, 300] kg or (0, 600] lbs, height in [50, 250] cm or
// [20, 100] in, and age in [1, 120].
//
// It returns ErrInvalidInput for non-finite values and ErrOutOfRange for
// values outside the bounds. The calculators do not call Validate; it is
// meant for callers collecting raw user input.
func (in BiometricInput) Validate() error {
	if err := ValidateWeight(in.Weight, in.Units); err != nil {
		return err
	}
	if err := ValidateHeight(in.Height, in.Units); err != nil {
		return err
	}
	if err := ValidateAge(in.Age); err != nil {
		return err
	}
	if in.Sex != Male && in.Sex != Female {
		return fmt.Errorf("%w: sex %d", ErrUnknownValue, int(in.Sex))
	}
	return nil
}

// ValidateWeight checks weight against the plausible bound for units.
func ValidateWeight(weight float64, units UnitSystem) error {
	maxWeight := MaxWeightKg
	switch units {
	case Metric:
	case Imperial:
		maxWeight = MaxWeightLbs
	default:
		return fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(units))
	}

	if !isFinite(weight) {
		return fmt.Errorf("%w: weight must be a finite number", ErrInvalidInput)
	}
	if weight <= 0 || weight > maxWeight {
		return fmt.Errorf("%w: weight %g %s not in (0, %g]",
			ErrOutOfRange, weight, units.WeightUnit(), maxWeight)
	}
	return nil
}

// ValidateHeight checks height against the plausible bounds for units.
func ValidateHeight(height float64, units UnitSystem) error {
	minHeight, maxHeight := MinHeightCm, MaxHeightCm
	switch units {
	case Metric:
	case Imperial:
		minHeight, maxHeight = MinHeightIn, MaxHeightIn
	default:
		return fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(units))
	}

	if !isFinite(height) {
		return fmt.Errorf("%w: height must be a finite number", ErrInvalidInput)
	}
	if height < minHeight || height > maxHeight {
		return fmt.Errorf("%w: height %g %s not in [%g, %g]",
			ErrOutOfRange, height, units.HeightUnit(), minHeight, maxHeight)
	}
	return nil
}

// ValidateAge checks age against [MinAge, MaxAge].
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: age %d not in [%d, %d]", ErrOutOfRange, age, MinAge, MaxAge)
	}
	return nil
}

// roundToTenth rounds v to one decimal place, half away from zero.
func roundToTenth(v float64) float64 {
	const tenths = 10
	return math.Round(v*tenths) / tenths
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// requirePositive returns ErrInvalidInput unless v is finite and > 0.
func requirePositive(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidInput, name, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero, got %g", ErrInvalidInput, name, v)
	}
	return nil
}
