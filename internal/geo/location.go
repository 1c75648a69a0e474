package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
)

// ErrUnresolvedKeyword is returned when a keyword location has no known
// coordinate.
var ErrUnresolvedKeyword = errors.New("unresolved location keyword")

// Location is either a free-form keyword (a place name) or a coordinate.
// The zero value is an empty keyword.
type Location struct {
	keyword  string
	lonlat   LonLat
	isLonLat bool
}

// KeywordLocation wraps a place name.
func KeywordLocation(keyword string) Location {
	return Location{keyword: keyword}
}

// LonLatLocation wraps a coordinate.
func LonLatLocation(ll LonLat) Location {
	return Location{lonlat: ll, isLonLat: true}
}

// ParseLocation reads source as a coordinate using the grammar of n and
// falls back to a trimmed keyword when it is not one.
func ParseLocation(n *angle.Notation, source string) Location {
	if ll, err := ParseLonLatWith(n, source); err == nil {
		return LonLatLocation(ll)
	}
	return KeywordLocation(strings.TrimSpace(source))
}

// Keyword returns the place name and whether l holds one.
func (l Location) Keyword() (string, bool) {
	return l.keyword, !l.isLonLat
}

// LonLat returns the coordinate and whether l holds one.
func (l Location) LonLat() (LonLat, bool) {
	return l.lonlat, l.isLonLat
}

// Resolve returns the coordinate of l, looking keywords up with lookup.
func (l Location) Resolve(lookup func(keyword string) (LonLat, bool)) (LonLat, error) {
	if l.isLonLat {
		return l.lonlat, nil
	}
	if lookup != nil {
		if ll, ok := lookup(l.keyword); ok {
			return ll, nil
		}
	}
	return LonLat{}, fmt.Errorf("%w: %q", ErrUnresolvedKeyword, l.keyword)
}

func (l Location) String() string {
	if l.isLonLat {
		if s, err := FormatGeoURI(l.lonlat); err == nil {
			return s
		}
		return fmt.Sprintf("%v,%v", l.lonlat.Lat, l.lonlat.Lon)
	}
	return l.keyword
}
