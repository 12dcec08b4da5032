package health

// BMI formula constants.
const (
	// ImperialBMIFactor converts lb/in² to kg/m².
	// BMI (imperial) = weight_lb / height_in² × ImperialBMIFactor.
	ImperialBMIFactor = 703.0

	// CentimetersPerMeter converts centimeters to meters.
	CentimetersPerMeter = 100.0
)

// Unit conversion constants used when normalizing to metric.
const (
	// PoundsToKg converts pounds to kilograms.
	PoundsToKg = 0.453592

	// InchesToCm converts inches to centimeters.
	InchesToCm = 2.54
)

// BMI category lower bounds. Each category covers [bound, next bound).
const (
	NormalWeightMinBMI = 18.5
	OverweightMinBMI   = 25.0
	ObesityIMinBMI     = 30.0
	ObesityIIMinBMI    = 35.0
	ObesityIIIMinBMI   = 40.0
)

// Ideal weight is the Normal-weight band applied to a height.
const (
	// IdealMinBMI is the lower BMI bound of the ideal weight range.
	IdealMinBMI = 18.5

	// IdealMaxBMI is the upper BMI bound of the ideal weight range.
	// This is the published upper bound of "Normal weight", not the
	// half-open categorization boundary.
	IdealMaxBMI = 24.9
)

// Mifflin-St Jeor equation coefficients.
//
//	bmr = 10·weight_kg + 6.25·height_cm − 5·age + sexOffset
const (
	BMRWeightCoefficient = 10.0
	BMRHeightCoefficient = 6.25
	BMRAgeCoefficient    = 5.0
	BMRMaleOffset        = 5.0
	BMRFemaleOffset      = -161.0
)

// Activity multipliers applied to BMR for maintenance calories.
const (
	SedentaryMultiplier        = 1.2
	LightlyActiveMultiplier    = 1.375
	ModeratelyActiveMultiplier = 1.55
	VeryActiveMultiplier       = 1.725
	ExtremelyActiveMultiplier  = 1.9
)

// Goal offsets in kcal/day.
const (
	LoseWeightOffset     = -500
	MaintainWeightOffset = 0
	GainWeightOffset     = 500
)

// Macronutrient split. Ratios sum to 1.0.
const (
	ProteinRatio = 0.30
	CarbRatio    = 0.50
	FatRatio     = 0.20

	// KcalPerGramProtein is the energy density of protein.
	KcalPerGramProtein = 4.0
	// KcalPerGramCarb is the energy density of carbohydrate.
	KcalPerGramCarb = 4.0
	// KcalPerGramFat is the energy density of fat.
	KcalPerGramFat = 9.0
)

// Plausible human bounds enforced by BiometricInput.Validate.
const (
	MaxWeightKg  = 300.0
	MaxWeightLbs = 600.0
	MinHeightCm  = 50.0
	MaxHeightCm  = 250.0
	MinHeightIn  = 20.0
	MaxHeightIn  = 100.0
	MinAge       = 1
	MaxAge       = 120
)

// Disclaimer accompanies every rendered report.
const Disclaimer = "This tool provides general health estimates and is not a substitute " +
	"for professional medical advice."
