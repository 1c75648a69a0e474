package angle

import (
	"math"

	"github.com/golang/geo/s1"
)

const (
	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2
)

// Normalize0To2Pi reduces a into [0, 2π).
//
// The reduction is a single floating point modulo, so inputs spanning a very
// large number of turns lose precision proportionally to their magnitude.
func Normalize0To2Pi(a s1.Angle) s1.Angle {
	r := math.Mod(a.Radians(), twoPi)
	if r < 0 {
		r += twoPi
	}
	// tiny negative remainders round up to 2π; -0 becomes +0
	if r >= twoPi || r == 0 {
		r = 0
	}
	return s1.Angle(r) * s1.Radian
}

// NormalizeNegPiToPi reduces a into [-π, π). Longitudes wrap around: +π maps
// to -π.
func NormalizeNegPiToPi(a s1.Angle) s1.Angle {
	r := Normalize0To2Pi(a).Radians()
	if r >= math.Pi {
		r -= twoPi
	}
	return s1.Angle(r) * s1.Radian
}

// NormalizeNegHalfPiToHalfPi reduces a into [-π/2, π/2]. Values past a pole
// are reflected back from it instead of wrapping.
func NormalizeNegHalfPiToHalfPi(a s1.Angle) s1.Angle {
	r := NormalizeNegPiToPi(a).Radians()
	switch {
	case r > halfPi:
		r = halfPi - (r - halfPi)
	case r < -halfPi:
		r = -halfPi - (r + halfPi)
	}
	return s1.Angle(r) * s1.Radian
}
