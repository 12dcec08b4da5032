package health

import (
	"fmt"
	"math"
)

// CalculateBMI returns the body mass index for weight and height in the given
// unit system, rounded to one decimal place (half away from zero). A raw BMI
// below 0.05 rounds to 0.0 even though the inputs are positive; Categorize
// places it in Underweight.
//
//	Metric:   weight_kg / (height_cm / 100)²
//	Imperial: weight_lb / height_in² × 703
//
// Returns ErrInvalidInput if weight or height is not a positive finite number.
func CalculateBMI(weight, height float64, units UnitSystem) (float64, error) {
	if err := requirePositive("height", height); err != nil {
		return 0, err
	}
	if err := requirePositive("weight", weight); err != nil {
		return 0, err
	}

	var bmi float64
	switch units {
	case Metric:
		heightM := height / CentimetersPerMeter
		bmi = weight / (heightM * heightM)
	case Imperial:
		bmi = weight / (height * height) * ImperialBMIFactor
	default:
		return 0, fmt.Errorf("%w: unit system %d", ErrUnknownValue, int(units))
	}

	// A tiny height can still overflow the division.
	if !isFinite(bmi) {
		return 0, fmt.Errorf("%w: bmi is not finite for weight %g and height %g", ErrInvalidInput, weight, height)
	}

	return roundToTenth(bmi), nil
}

// Categorize classifies a BMI value. Categories are half-open intervals
// [lower, next lower), so every value >= 0 falls in exactly one category:
//
//	Underweight        [0, 18.5)
//	Normal weight      [18.5, 25)
//	Overweight         [25, 30)
//	Obesity Class I    [30, 35)
//	Obesity Class II   [35, 40)
//	Obesity Class III  [40, +Inf)
//
// Returns ErrInvalidInput for negative or NaN values.
func Categorize(bmi float64) (BMICategory, error) {
	if math.IsNaN(bmi) || bmi < 0 {
		return Underweight, fmt.Errorf("%w: bmi must be >= 0, got %v", ErrInvalidInput, bmi)
	}

	switch {
	case bmi < NormalWeightMinBMI:
		return Underweight, nil
	case bmi < OverweightMinBMI:
		return NormalWeight, nil
	case bmi < ObesityIMinBMI:
		return Overweight, nil
	case bmi < ObesityIIMinBMI:
		return ObesityClassI, nil
	case bmi < ObesityIIIMinBMI:
		return ObesityClassII, nil
	default:
		return ObesityClassIII, nil
	}
}

// ComputeBMI calculates and categorizes the BMI for weight and height.
func ComputeBMI(weight, height float64, units UnitSystem) (BMIResult, error) {
	bmi, err := CalculateBMI(weight, height, units)
	if err != nil {
		return BMIResult{}, err
	}

	category, err := Categorize(bmi)
	if err != nil {
		return BMIResult{}, err
	}

	return BMIResult{Value: bmi, Category: category}, nil
}
