package angle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s1"
	"github.com/woozymasta/lonlat/internal/sign"
)

// FormatRadians renders a as "<radians> [rad]".
func FormatRadians(a s1.Angle) string {
	return formatFloat(a.Radians()) + " [rad]"
}

// FormatDegrees renders a in decimal degrees with the degree glyph.
func (n *Notation) FormatDegrees(a s1.Angle) string {
	return formatFloat(a.Degrees()) + n.Degree
}

// FormatMinutes renders a in decimal arcminutes with the minute glyph.
func (n *Notation) FormatMinutes(a s1.Angle) string {
	return formatFloat(Minutes(a)) + n.Minute
}

// FormatSeconds renders a in decimal arcseconds with the second glyph.
func (n *Notation) FormatSeconds(a s1.Angle) string {
	return formatFloat(Seconds(a)) + n.Second
}

// FormatDMS360 renders a in [0°, 360°), always with a leading "+".
func (n *Notation) FormatDMS360(a s1.Angle) (string, error) {
	d, err := ToDMS360(a)
	if err != nil {
		return "", err
	}
	d = displayed(d, 360)
	return n.dms(d.Sign.String(), d, ""), nil
}

// FormatDMS180 renders a in [-180°, 180°) with a leading sign.
func (n *Notation) FormatDMS180(a s1.Angle) (string, error) {
	d, err := ToDMS180(a)
	if err != nil {
		return "", err
	}
	d = displayed180(d)
	return n.dms(d.Sign.String(), d, ""), nil
}

// FormatDMS90 renders a in [-90°, 90°] with a leading sign.
func (n *Notation) FormatDMS90(a s1.Angle) (string, error) {
	d, err := ToDMS90(a)
	if err != nil {
		return "", err
	}
	d = displayed(d, 0)
	return n.dms(d.Sign.String(), d, ""), nil
}

// FormatNS renders a as a latitude with a north/south marker instead of a
// sign.
func (n *Notation) FormatNS(a s1.Angle) (string, error) {
	d, err := ToDMS90(a)
	if err != nil {
		return "", err
	}
	d = displayed(d, 0)
	return n.withHemisphere(d, d.Sign.Pick(n.South, n.North)), nil
}

// FormatEW renders a as a longitude with an east/west marker instead of a
// sign.
func (n *Notation) FormatEW(a s1.Angle) (string, error) {
	d, err := ToDMS180(a)
	if err != nil {
		return "", err
	}
	d = displayed180(d)
	return n.withHemisphere(d, d.Sign.Pick(n.West, n.East)), nil
}

func (n *Notation) withHemisphere(d DMS, marker string) string {
	if n.hemispherePrefix {
		return n.dms(marker, d, "")
	}
	return n.dms("", d, marker)
}

// displayed rounds d to the tenth of a second that dms prints and carries a
// resulting 60.0″ into minutes and degrees, so the seconds field never reads
// 60.0. Degrees reaching wrap start over at zero; a zero result is Positive.
func displayed(d DMS, wrap uint16) DMS {
	d.Seconds = math.Round(d.Seconds*10) / 10
	if d.Seconds >= 60 {
		d.Seconds = 0
		d.Minutes++
	}
	if d.Minutes >= 60 {
		d.Minutes = 0
		d.Degrees++
	}
	if wrap > 0 && d.Degrees >= wrap {
		d.Degrees -= wrap
	}
	if d.Degrees == 0 && d.Minutes == 0 && d.Seconds == 0 {
		d.Sign = sign.Positive
	}
	return d
}

// displayed180 also folds a carried +180° onto -180°.
func displayed180(d DMS) DMS {
	d = displayed(d, 0)
	if d.Degrees == 180 {
		d.Sign = sign.Negative
	}
	return d
}

// seconds always carry exactly one decimal digit
func (n *Notation) dms(prefix string, d DMS, suffix string) string {
	return fmt.Sprintf("%s%d%s%d%s%.1f%s%s",
		prefix, d.Degrees, n.Degree, d.Minutes, n.Minute, d.Seconds, n.Second, suffix)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
