package finance

import "math"

// RoundTo2 rounds a float64 to 2 decimals.
func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyPayment computes the fixed monthly payment for an annuity loan.
// Degenerate inputs (non-positive principal or term) yield 0; a zero rate or
// a numerically collapsed denominator falls back to straight-line division.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12 / 100
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}

	denominator := 1 - math.Pow(1+monthlyRate, -float64(termMonths))
	if denominator == 0 {
		return principal / float64(termMonths)
	}

	return principal * monthlyRate / denominator
}

// TotalCost is the lifetime cost of an annuity loan at the given payment.
func TotalCost(monthlyPayment float64, termMonths int) float64 {
	return RoundTo2(monthlyPayment * float64(termMonths))
}
