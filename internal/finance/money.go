package finance

import "math"

// Money is an amount in the smallest currency unit (whole rupees for this
// shop). All derived amounts are rounded to Money at each computation step so
// displayed intermediate figures always sum exactly to displayed totals.
type Money int64

// Round converts a fractional amount to Money using half-up rounding.
func Round(v float64) Money {
	return Money(math.Floor(v + 0.5))
}

// RoundUp converts a fractional amount to Money rounding away any remainder
// upward. Used for zero-interest installments to avoid under-collection.
func RoundUp(v float64) Money {
	return Money(math.Ceil(v))
}

// Percent computes amount * pct / 100 rounded to Money.
func Percent(amount Money, pct float64) Money {
	return Round(float64(amount) * pct / 100)
}

func minMoney(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}
