package health

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the engine. Compare with errors.Is.
var (
	// ErrInvalidInput indicates a value the formulas cannot accept:
	// non-positive height or weight, negative age, NaN or infinity.
	ErrInvalidInput = constError("invalid input")

	// ErrOutOfRange indicates a value outside plausible human bounds.
	// Only BiometricInput.Validate returns it; the calculators accept any
	// positive finite value.
	ErrOutOfRange = constError("value out of plausible range")

	// ErrUnknownValue indicates an unrecognized enumeration string passed
	// to a strict parser.
	ErrUnknownValue = constError("unknown value")
)
