package health

// Profile is a complete set of inputs for a health assessment.
type Profile struct {
	// Name is an optional label carried through to the report.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	BiometricInput `yaml:",inline"`

	Activity ActivityLevel `json:"activity" yaml:"activity"`
	Goal     Goal          `json:"goal" yaml:"goal"`
}

// Report combines every engine result for one profile.
type Report struct {
	Name            string           `json:"name,omitempty" yaml:"name,omitempty"`
	Input           BiometricInput   `json:"input" yaml:"input"`
	BMI             BMIResult        `json:"bmi" yaml:"bmi"`
	IdealWeight     IdealWeightRange `json:"ideal_weight" yaml:"ideal_weight"`
	Calories        CalorieResult    `json:"calories" yaml:"calories"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
	Disclaimer      string           `json:"disclaimer" yaml:"disclaimer"`
}

// Assess runs the BMI, ideal-weight and calorie calculations for p and
// attaches the recommendations for the resulting BMI category.
//
// Assess does not range-check p; call p.Validate first for raw user input.
func Assess(p Profile) (Report, error) {
	bmi, err := ComputeBMI(p.Weight, p.Height, p.Units)
	if err != nil {
		return Report{}, err
	}

	ideal, err := ComputeIdealWeight(p.Height, p.Units)
	if err != nil {
		return Report{}, err
	}

	calories, err := ComputeCalories(p.BiometricInput, p.Activity, p.Goal)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Name:            p.Name,
		Input:           p.BiometricInput,
		BMI:             bmi,
		IdealWeight:     ideal,
		Calories:        calories,
		Recommendations: Recommendations(bmi.Category),
		Disclaimer:      Disclaimer,
	}, nil
}

// Recommendations returns general lifestyle guidance for a BMI category.
// The returned slice is freshly allocated.
func Recommendations(c BMICategory) []string {
	switch c.Band() {
	case BandUnderweight:
		return []string{
			"Increase calorie intake with nutrient-dense foods",
			"Include strength training exercises",
			"Eat more frequent, smaller meals",
			"Consult a healthcare provider",
		}
	case BandHealthy:
		return []string{
			"Maintain your current balance of diet and activity",
			"Keep up regular physical activity",
		}
	case BandObese:
		return []string{
			"Create a calorie deficit",
			"Increase physical activity",
			"Focus on whole foods",
			"Stay hydrated",
			"Get adequate sleep",
			"Consult a healthcare provider",
		}
	default:
		return []string{
			"Create a calorie deficit",
			"Increase physical activity",
			"Focus on whole foods",
			"Stay hydrated",
			"Get adequate sleep",
		}
	}
}
