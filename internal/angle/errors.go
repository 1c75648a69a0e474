package angle

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Sentinel errors for the angle layer. Every failure returned by this package
// is an *Error wrapping one of them.
var (
	ErrInfinite            = errors.New("the value is infinite")
	ErrNaN                 = errors.New("not a number")
	ErrNoMatch             = errors.New("could not parse as ISO 80000-1 DMS")
	ErrNoAnglePattern      = errors.New("could not detect an angle pattern")
	ErrSignGroup           = errors.New("parse error around a sign (+/-)")
	ErrHemisphereGroup     = errors.New("parse error around a hemisphere letter (N/W/S/E)")
	ErrHemisphereWordGroup = errors.New("parse error around a hemisphere word (北緯/西経/南緯/東経)")
	ErrNumber              = errors.New("invalid number")
	ErrSignArithmetic      = errors.New("arithmetic sign error")
	ErrUnknownNotation     = errors.New("unknown notation")
)

// Error carries the failed operation and, for parsing, the source text.
type Error struct {
	Op     string
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "angle: " + e.Op
	if e.Source != "" {
		base += fmt.Sprintf(" (source=%q)", e.Source)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CheckFinite returns ErrInfinite or ErrNaN (wrapped with op) when a cannot be
// decomposed.
func CheckFinite(op string, a s1.Angle) error {
	deg := a.Degrees()
	switch {
	case math.IsInf(deg, 0):
		return &Error{Op: op, Err: ErrInfinite}
	case math.IsNaN(deg):
		return &Error{Op: op, Err: ErrNaN}
	}
	return nil
}
