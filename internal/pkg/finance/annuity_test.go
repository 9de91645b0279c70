package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyPayment(0, 10, 12))
	assert.Equal(t, 0.0, MonthlyPayment(-500, 10, 12))
	assert.Equal(t, 0.0, MonthlyPayment(1000, 10, 0))
	assert.Equal(t, 0.0, MonthlyPayment(1000, 10, -6))
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	assert.InDelta(t, 100.0, MonthlyPayment(1200, 0, 12), 0.0001)
}

func TestMonthlyPayment_AnnuityFormula(t *testing.T) {
	// 100000 at 12% over 12 months: the classic annuity table value.
	payment := MonthlyPayment(100000, 12, 12)
	assert.InDelta(t, 8884.88, payment, 0.01)
}

func TestMonthlyPayment_MonotonicInRate(t *testing.T) {
	previous := 0.0
	for _, rate := range []float64{0, 1, 5, 9.2, 15, 30} {
		payment := MonthlyPayment(900000, rate, 96)
		assert.GreaterOrEqual(t, payment, previous, "payment must not decrease as rate grows (rate=%v)", rate)
		previous = payment
	}
}

func TestTotalCost_MatchesPaymentTimesTerm(t *testing.T) {
	payment := MonthlyPayment(900000, 9.5, 84)
	total := TotalCost(payment, 84)
	assert.InDelta(t, payment*84, total, 0.01)
}
