package geo

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s1"
)

var (
	// ErrUnknownPattern is returned when latitude and longitude cannot be told
	// apart in the source text.
	ErrUnknownPattern = errors.New("lonlat: unknown source pattern")
	// ErrGeoURI is returned for structurally malformed GeoURIs.
	ErrGeoURI = errors.New("could not parse GeoURI")
)

// LatitudeDomainError reports a latitude that has no representative in
// [-90°, 90°].
type LatitudeDomainError struct {
	Angle s1.Angle
}

func (e *LatitudeDomainError) Error() string {
	return fmt.Sprintf("latitude %s is outside [-90°, 90°]", e.Angle)
}

func unknownPattern(source string) error {
	return fmt.Errorf("%w (source=%q)", ErrUnknownPattern, source)
}
