// Package angle converts planar angles to and from Degrees-Minutes-Seconds
// notation.
//
// Three decomposition domains are supported: [0°, 360°) for bearings,
// [-180°, 180°) for longitudes (wraps around) and [-90°, 90°] for latitudes
// (reflects at the poles). Text is parsed and rendered through a Notation,
// either the ISO 80000-1 glyph set or the Japanese one.
package angle

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/woozymasta/lonlat/internal/sign"
)

const (
	// MinimumSeconds is the resolution of the [-180°, 180°) decomposition.
	// 1.0 arcsec is about 30 m on the ground, 1.0e-4 arcsec about 3 mm.
	//
	// Half a turn is 180*60*60/1.0e-4 ≈ 2.3e13 units: about 13.4 decimal
	// digits (float64 holds 15.9) and about 44.4 bits, so the totals fit an
	// int64 exactly.
	MinimumSeconds = 1.0e-4

	magnification = 10000 // 1 / MinimumSeconds

	secondsPerMinute = 60
	secondsPerDegree = 60 * 60
)

// DMS is an angle decomposed into sign, degrees, minutes and seconds.
// Minutes and Seconds are always in [0, 60).
type DMS struct {
	Sign    sign.Sign
	Degrees uint16
	Minutes uint8
	Seconds float64
}

// Angle recomposes d.
func (d DMS) Angle() s1.Angle {
	total := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/secondsPerDegree
	return FromDegrees(d.Sign.Float64() * total)
}

// FromDegrees builds an angle from decimal degrees.
func FromDegrees(degrees float64) s1.Angle {
	return s1.Angle(degrees) * s1.Degree
}

// FromMinutes builds an angle from arcminutes.
func FromMinutes(minutes float64) s1.Angle {
	return FromDegrees(minutes / 60)
}

// FromSeconds builds an angle from arcseconds.
func FromSeconds(seconds float64) s1.Angle {
	return FromDegrees(seconds / secondsPerDegree)
}

// Minutes returns a in arcminutes.
func Minutes(a s1.Angle) float64 {
	return a.Degrees() * 60
}

// Seconds returns a in arcseconds.
func Seconds(a s1.Angle) float64 {
	return Minutes(a) * 60
}

// FromDMS combines degrees, minutes and seconds into an angle. Each component
// may carry its own sign; the result takes the product of the three signs and
// the sum of the magnitudes, so -1, 2, 3 is -(1° 2′ 3″).
func FromDMS(degrees, minutes, seconds float64) (s1.Angle, error) {
	sd, err := sign.FromFloat(degrees)
	if err != nil {
		return 0, signError(err)
	}
	sm, err := sign.FromFloat(minutes)
	if err != nil {
		return 0, signError(err)
	}
	ss, err := sign.FromFloat(seconds)
	if err != nil {
		return 0, signError(err)
	}

	composite := sd.Mul(sm).Mul(ss)
	magnitude := math.Abs(degrees) + math.Abs(minutes)/60 + math.Abs(seconds)/secondsPerDegree

	return FromDegrees(composite.Float64() * magnitude), nil
}

// ToDMS360 decomposes a into [0°, 360°). The sign is always Positive.
func ToDMS360(a s1.Angle) (DMS, error) {
	if err := CheckFinite("dms 360", a); err != nil {
		return DMS{}, err
	}

	degrees := Normalize0To2Pi(a).Degrees()
	fraction := math.Mod(degrees, 1)

	return DMS{
		Sign:    sign.Positive,
		Degrees: uint16(math.Floor(degrees)),
		Minutes: uint8(math.Floor(fraction * 60)),
		Seconds: math.Mod(fraction*60, 1) * 60,
	}, nil
}

// ToDMS180 decomposes a into [-180°, 180°). +180°, and anything that rounds
// to it, is reported as (Negative, 180, 0, 0), the same as -180°.
//
// The total is rounded to MinimumSeconds and split with integer arithmetic so
// that minutes and seconds never drift over 60.
func ToDMS180(a s1.Angle) (DMS, error) {
	if err := CheckFinite("dms 180", a); err != nil {
		return DMS{}, err
	}

	totalSeconds := Seconds(NormalizeNegPiToPi(a))
	magnified := int64(math.Round(totalSeconds / MinimumSeconds))
	whole := magnified / magnification

	degrees := whole / secondsPerDegree
	minutes := (whole - degrees*secondsPerDegree) / secondsPerMinute
	rest := magnified - (degrees*secondsPerDegree+minutes*secondsPerMinute)*magnification

	// the sign follows the rounded total: values rounding up to +180° join
	// -180°, values rounding to zero are Positive
	s := sign.Positive
	if magnified < 0 || abs64(degrees) == 180 {
		s = sign.Negative
	}

	return DMS{
		Sign:    s,
		Degrees: uint16(abs64(degrees)),
		Minutes: uint8(abs64(minutes)),
		Seconds: float64(abs64(rest)) * MinimumSeconds,
	}, nil
}

// ToDMS90 decomposes a into [-90°, 90°].
func ToDMS90(a s1.Angle) (DMS, error) {
	if err := CheckFinite("dms 90", a); err != nil {
		return DMS{}, err
	}

	degrees := NormalizeNegHalfPiToHalfPi(a).Degrees()
	s, err := sign.FromFloat(degrees)
	if err != nil {
		return DMS{}, signError(err)
	}

	magnitude := math.Abs(degrees)
	fraction := math.Mod(magnitude, 1)

	return DMS{
		Sign:    s,
		Degrees: uint16(math.Floor(magnitude)),
		Minutes: uint8(math.Floor(fraction * 60)),
		Seconds: math.Mod(fraction*60, 1) * 60,
	}, nil
}

func signError(err error) error {
	return &Error{Op: "sign", Err: fmt.Errorf("%w: %w", ErrSignArithmetic, err)}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
