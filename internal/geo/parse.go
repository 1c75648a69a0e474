package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/woozymasta/lonlat/internal/angle"
)

const geoURIScheme = "geo:"

// ParseLonLat reads a coordinate pair in ISO notation.
//
// Supported notations:
//   - DMS: 43°3′43.5″N,141°21′15.8″E or 43°3′43.5″N 141°21′15.8″E
//   - decimal: 43.062083,141.354389 or 43.062083 141.354389
//   - GeoURI: geo:43.062083,141.354389
func ParseLonLat(source string) (LonLat, error) {
	return ParseLonLatWith(angle.ISO, source)
}

// ParseLonLatWith reads a coordinate pair using the grammar of n.
//
// The text is split on the first comma, or on the first space when there is
// no comma. A part with a hemisphere marker goes to the matching field
// wherever it appears; unmarked parts are read positionally, latitude first.
func ParseLonLatWith(n *angle.Notation, source string) (LonLat, error) {
	parts := splitParts(trimScheme(source), 2)

	type parsed struct {
		value     s1.Angle
		direction angle.Direction
	}
	values := make([]parsed, 0, len(parts))
	for _, part := range parts {
		a, dir, err := n.ParseWithDirection(part)
		if err != nil {
			return LonLat{}, err
		}
		values = append(values, parsed{value: a, direction: dir})
	}

	var ll LonLat
	var hasLon, hasLat bool
	assign := func(dir angle.Direction, a s1.Angle) bool {
		switch {
		case dir == angle.DirectionLatitude && !hasLat:
			ll.Lat, hasLat = a, true
		case dir == angle.DirectionLongitude && !hasLon:
			ll.Lon, hasLon = a, true
		default:
			return false
		}
		return true
	}

	// explicit hemisphere markers first, then positions
	for _, v := range values {
		if v.direction != angle.DirectionNone && !assign(v.direction, v.value) {
			return LonLat{}, unknownPattern(source)
		}
	}
	for i, v := range values {
		if v.direction == angle.DirectionNone && !assign(positional(i), v.value) {
			return LonLat{}, unknownPattern(source)
		}
	}

	if !hasLat || !hasLon {
		return LonLat{}, unknownPattern(source)
	}
	return ll, nil
}

// ParseLonLatAlt reads a coordinate pair followed by an altitude in meters,
// in ISO notation: geo:43.062083,141.354389,123.45 or any ParseLonLat input
// followed by ",123.45" or " 123.45".
func ParseLonLatAlt(source string) (LonLatAlt, error) {
	return ParseLonLatAltWith(angle.ISO, source)
}

// ParseLonLatAltWith reads a coordinate pair and altitude using the grammar
// of n.
func ParseLonLatAltWith(n *angle.Notation, source string) (LonLatAlt, error) {
	parts := splitParts(trimScheme(source), 3)
	if len(parts) < 3 {
		return LonLatAlt{}, unknownPattern(source)
	}

	text := strings.TrimSpace(parts[2])
	alt, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return LonLatAlt{}, &angle.Error{
			Op:     "parse altitude",
			Source: source,
			Err:    fmt.Errorf("%w: %w", angle.ErrNumber, err),
		}
	}

	ll, err := ParseLonLatWith(n, parts[0]+","+parts[1])
	if err != nil {
		return LonLatAlt{}, err
	}
	return ll.WithAltitude(Length(alt)), nil
}

func positional(index int) angle.Direction {
	if index == 0 {
		return angle.DirectionLatitude
	}
	return angle.DirectionLongitude
}

func trimScheme(source string) string {
	s := strings.TrimSpace(source)
	return strings.TrimPrefix(s, geoURIScheme)
}

// splitParts splits on commas, falling back to spaces when that gives fewer
// than n parts.
func splitParts(s string, n int) []string {
	parts := strings.SplitN(s, ",", n)
	if len(parts) < n {
		parts = strings.SplitN(s, " ", n)
	}
	return parts
}
