package health

import "fmt"

// IdealWeight returns the weight range giving a Normal-weight BMI
// (18.5 to 24.9) at the given height, in the weight unit of units.
// Both bounds are rounded to one decimal place.
//
// The range depends only on height; it ignores the person's actual weight.
// Returns ErrInvalidInput if height is not a positive finite number.
func IdealWeight(height float64, units UnitSystem) (IdealWeightRange, error) {
	if err := requirePositive("height", height); err != nil {
		return IdealWeightRange{}, err
	}

	var lower, upper float64
	switch units {
	case Metric:
		heightM := height / CentimetersPerMeter
		squared := heightM * heightM
		lower = IdealMinBMI * squared
		upper = IdealMaxBMI * squared
	case Imperial:
		squared := height * height
		lower = IdealMinBMI * squared / ImperialBMIFactor
		upper = IdealMaxBMI * squared / ImperialBMIFactor
	default:
		return IdealWeightRange{}, fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(units))
	}

	if !isFinite(upper) {
		return IdealWeightRange{}, fmt.Errorf("%w: ideal weight is not finite for height %g", ErrInvalidInput, height)
	}

	return IdealWeightRange{
		Min:   roundToTenth(lower),
		Max:   roundToTenth(upper),
		Units: units,
	}, nil
}

// ComputeIdealWeight is IdealWeight under the engine's operation naming.
func ComputeIdealWeight(height float64, units UnitSystem) (IdealWeightRange, error) {
	return IdealWeight(height, units)
}
