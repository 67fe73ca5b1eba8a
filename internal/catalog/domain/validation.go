package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// MinYearLaunched is the earliest accepted non-negative launch year.
	MinYearLaunched = 1700
)

// validateName checks the non-empty contract shared by named entities.
// Only the zero-length string is rejected; whitespace is a valid name.
func validateName(field, name string) error {
	if len(name) == 0 {
		return NewValidationError(field, "is marked non-blank but is blank")
	}
	return nil
}

// validateYearLaunched checks year against the [MinYearLaunched, currentYear] window.
// Negative years fall outside the lower-bound check and are accepted.
func validateYearLaunched(year, currentYear int) error {
	if year >= 0 && year < MinYearLaunched {
		return NewValidationError("yearLaunched", "must be greater than 1700")
	}
	if year > currentYear {
		return NewValidationError("yearLaunched", "is greater than current year")
	}
	return nil
}

// roundDuration rounds d to two decimal places, half to even, working on
// the shortest decimal form of d: 0.125 becomes 0.12 and 2.675 becomes 2.68.
func roundDuration(d float64) (float64, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, NewValidationError("duration", "must be a finite number")
	}
	rounded, _ := decimal.NewFromFloat(d).RoundBank(2).Float64()
	return rounded, nil
}
