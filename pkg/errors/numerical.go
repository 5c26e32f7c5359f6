package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckScalar returns a NumericalInstabilityError when value is NaN or Inf.
func CheckScalar(operation string, value float64, iteration int) error {
	if !IsFinite(value) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckNumericalStability checks a batch of values and reports all of them
// if any is non-finite.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if !IsFinite(v) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// RequirePositive validates a strictly positive, finite parameter such as a
// tolerance.
func RequirePositive(param string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValidationError(param, "must be finite", value)
	}
	if value <= 0 {
		return NewValidationError(param, "must be positive", value)
	}
	return nil
}

// RequireFinite validates a finite parameter such as an interval bound.
func RequireFinite(param string, value float64) error {
	if !IsFinite(value) {
		return NewValidationError(param, "must be finite", value)
	}
	return nil
}
