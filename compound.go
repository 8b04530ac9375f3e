package advisor

import (
	"fmt"
	"math"
)

// This file is the numeric formula library shared by the growth projector,
// the retirement solver and the investment comparator. All functions are
// pure and reentrant.

// monthlyRate converts an annual percentage rate to a monthly decimal rate.
func monthlyRate(annual Percent) float64 { return annual.Rate() / 12 }

// checkRate rejects rates at or below -100%: beyond that point the growth
// factor turns negative and powers of it are meaningless.
func checkRate(annual Percent) error {
	if annual <= -100 {
		return fmt.Errorf("%w: annual rate %s must be greater than -100%%", ErrInvalidInput, annual)
	}
	return nil
}

// futureValueLump returns the value of a single principal compounded at
// rate per period over n periods: principal * (1+rate)^n.
func futureValueLump(principal, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("%w: negative number of periods %d", ErrInvalidInput, periods)
	}
	return principal * math.Pow(1+rate, float64(periods)), nil
}

// futureValueAnnuity returns the future value of an ordinary annuity of
// equal payments at rate per period over n periods.
//
// A zero rate is a legal input and must not reach the division: the
// annuity then degenerates to payment * periods.
func futureValueAnnuity(payment, rate float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, fmt.Errorf("%w: negative number of periods %d", ErrInvalidInput, periods)
	}
	if payment == 0 {
		return 0, nil
	}
	if rate == 0 {
		return payment * float64(periods), nil
	}
	return payment * (math.Pow(1+rate, float64(periods)) - 1) / rate, nil
}

// requiredPayment solves the annuity future-value equation for the
// payment: the equal periodic amount that grows to target at rate per
// period over n periods. The zero-rate branch mirrors futureValueAnnuity.
func requiredPayment(target, rate float64, periods int) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("%w: number of periods %d must be positive", ErrInvalidInput, periods)
	}
	if rate == 0 {
		return target / float64(periods), nil
	}
	return target * rate / (math.Pow(1+rate, float64(periods)) - 1), nil
}
