package angle

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/golang/geo/s1"
	"github.com/woozymasta/lonlat/internal/sign"
)

// Parse reads a single angle in ISO notation, ignoring any hemisphere role.
func Parse(source string) (s1.Angle, error) {
	return ISO.Parse(source)
}

// ParseWithDirection reads a single angle in ISO notation together with the
// role implied by its hemisphere letter.
func ParseWithDirection(source string) (s1.Angle, Direction, error) {
	return ISO.ParseWithDirection(source)
}

// Parse reads a single angle, ignoring any hemisphere role.
func (n *Notation) Parse(source string) (s1.Angle, error) {
	a, _, err := n.ParseWithDirection(source)
	return a, err
}

// ParseWithDirection reads a single angle from free-form text.
//
// Accepted shapes are decimal degrees ("-42.5", "42.5N") and full or partial
// DMS ("141°21′15.8″E", "-1° 30″"). Text around the number is ignored. An
// explicit +/- sign yields DirectionNone; otherwise a hemisphere marker sets
// both the sign and the direction.
func (n *Notation) ParseWithDirection(source string) (s1.Angle, Direction, error) {
	idx := n.pattern.FindStringSubmatchIndex(source)
	if idx == nil {
		return 0, DirectionNone, &Error{Op: "parse", Source: source, Err: ErrNoMatch}
	}
	c := captures{re: n.pattern, source: source, idx: idx}

	s, direction, err := n.hemisphere(c)
	if err != nil {
		return 0, DirectionNone, err
	}

	degText, hasDeg := c.get(groupDegrees)
	minText, hasMin := c.get(groupMinutes)
	secText, hasSec := c.get(groupSeconds)

	if !hasDeg && !hasMin && !hasSec {
		text, ok := c.get(groupDegreesOnly)
		if !ok {
			return 0, DirectionNone, &Error{Op: "parse", Source: source, Err: ErrNoAnglePattern}
		}

		v, err := parseNumber(source, text)
		if err != nil {
			return 0, DirectionNone, err
		}
		return FromDegrees(s.Float64() * v), direction, nil
	}

	var d, m, sc float64
	if hasDeg {
		if d, err = parseNumber(source, degText); err != nil {
			return 0, DirectionNone, err
		}
	}
	if hasMin {
		if m, err = parseNumber(source, minText); err != nil {
			return 0, DirectionNone, err
		}
	}
	if hasSec {
		if sc, err = parseNumber(source, secText); err != nil {
			return 0, DirectionNone, err
		}
	}

	// the sign rides on degrees, even when they are an implicit zero
	a, err := FromDMS(s.Float64()*d, m, sc)
	if err != nil {
		return 0, DirectionNone, err
	}
	return a, direction, nil
}

// hemisphere resolves the sign and direction from the sign character, the
// hemisphere letter and, for notations that have them, the hemisphere word.
func (n *Notation) hemisphere(c captures) (sign.Sign, Direction, error) {
	text, ok := c.get(groupSign)
	if !ok {
		return sign.Positive, DirectionNone, c.fail(ErrSignGroup)
	}
	switch text {
	case "-":
		return sign.Negative, DirectionNone, nil
	case "+":
		return sign.Positive, DirectionNone, nil
	case "":
	default:
		return sign.Positive, DirectionNone, c.fail(ErrSignGroup)
	}

	letter, ok := c.get(groupHemisphere)
	if !ok {
		return sign.Positive, DirectionNone, c.fail(ErrHemisphereGroup)
	}
	if letter != "" {
		h, ok := hemisphereLetters[letter]
		if !ok {
			return sign.Positive, DirectionNone, c.fail(ErrHemisphereGroup)
		}
		return h.sign, h.direction, nil
	}

	if n.words == nil {
		return sign.Positive, DirectionNone, nil
	}

	word, ok := c.get(groupHemisphereWord)
	if !ok {
		return sign.Positive, DirectionNone, c.fail(ErrHemisphereWordGroup)
	}
	if word == "" {
		return sign.Positive, DirectionNone, nil
	}
	h, ok := n.words[word]
	if !ok {
		return sign.Positive, DirectionNone, c.fail(ErrHemisphereWordGroup)
	}
	return h.sign, h.direction, nil
}

// captures exposes named groups of one match, telling apart groups that did
// not participate from groups that matched empty text.
type captures struct {
	re     *regexp.Regexp
	source string
	idx    []int
}

func (c captures) get(name string) (string, bool) {
	i := c.re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(c.idx) || c.idx[2*i] < 0 {
		return "", false
	}
	return c.source[c.idx[2*i]:c.idx[2*i+1]], true
}

func (c captures) fail(err error) error {
	return &Error{Op: "parse", Source: c.source, Err: err}
}

func parseNumber(source, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &Error{Op: "parse", Source: source, Err: fmt.Errorf("%w: %w", ErrNumber, err)}
	}
	return v, nil
}
