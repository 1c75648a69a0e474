// Package sign provides a two-valued arithmetic sign that travels separately
// from a magnitude once an angle has been decomposed.
package sign

import (
	"errors"
	"math"
)

// ErrNaN is returned when a sign is requested for a value that is not a number.
var ErrNaN = errors.New("sign: not a number")

// Sign is the direction bit of a real number.
type Sign int8

const (
	// Negative marks values with the sign bit set, including negative zero.
	Negative Sign = -1
	// Positive marks values with the sign bit clear, including positive zero.
	Positive Sign = 1
)

// FromFloat returns the sign of v taken from its sign bit, so +0.0 is
// Positive and -0.0 is Negative.
func FromFloat(v float64) (Sign, error) {
	if math.IsNaN(v) {
		return Positive, ErrNaN
	}
	if math.Signbit(v) {
		return Negative, nil
	}
	return Positive, nil
}

// Mul multiplies two signs.
func (s Sign) Mul(o Sign) Sign {
	if s.normalized() == o.normalized() {
		return Positive
	}
	return Negative
}

// Neg flips the sign.
func (s Sign) Neg() Sign {
	return s.Mul(Negative)
}

// Float64 returns -1 or 1.
func (s Sign) Float64() float64 {
	if s.normalized() == Negative {
		return -1
	}
	return 1
}

// IsNegative reports whether s is Negative.
func (s Sign) IsNegative() bool {
	return s.normalized() == Negative
}

// Pick returns negative or positive depending on s.
func (s Sign) Pick(negative, positive string) string {
	if s.normalized() == Negative {
		return negative
	}
	return positive
}

// String returns "-" or "+".
func (s Sign) String() string {
	return s.Pick("-", "+")
}

// the zero value counts as Positive
func (s Sign) normalized() Sign {
	if s < 0 {
		return Negative
	}
	return Positive
}
