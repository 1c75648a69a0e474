// Package geo handles geographic coordinate structures and their textual
// notations.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/woozymasta/lonlat/internal/angle"
)

// Length is a distance in meters.
type Length float64

// Meter is the unit of Length.
const Meter Length = 1

// Meters returns l as a plain number of meters.
func (l Length) Meters() float64 {
	return float64(l)
}

// LonLatGetter is implemented by every type that carries a horizontal
// position. Formatting and URI conversion are written against it.
type LonLatGetter interface {
	Longitude() s1.Angle
	Latitude() s1.Angle
}

// LonLatSetter replaces the horizontal position fields.
type LonLatSetter interface {
	SetLongitude(lon s1.Angle)
	SetLatitude(lat s1.Angle)
}

// AltitudeGetter is implemented by positions that carry an altitude.
type AltitudeGetter interface {
	Altitude() Length
}

// LonLat is a longitude/latitude pair. The zero value is 0°, 0°.
// Equality is exact; compare with a tolerance where needed.
type LonLat struct {
	Lon s1.Angle
	Lat s1.Angle
}

// NewLonLat builds a LonLat from angles.
func NewLonLat(lon, lat s1.Angle) LonLat {
	return LonLat{Lon: lon, Lat: lat}
}

// FromDegrees builds a LonLat from decimal degrees. Note the lon, lat order.
func FromDegrees(lon, lat float64) LonLat {
	return LonLat{Lon: angle.FromDegrees(lon), Lat: angle.FromDegrees(lat)}
}

// AsLonLat copies the horizontal position of any LonLatGetter.
func AsLonLat(g LonLatGetter) LonLat {
	return LonLat{Lon: g.Longitude(), Lat: g.Latitude()}
}

func (ll LonLat) Longitude() s1.Angle { return ll.Lon }
func (ll LonLat) Latitude() s1.Angle { return ll.Lat }

func (ll *LonLat) SetLongitude(lon s1.Angle) { ll.Lon = lon }
func (ll *LonLat) SetLatitude(lat s1.Angle) { ll.Lat = lat }

// WithAltitude attaches an altitude.
func (ll LonLat) WithAltitude(alt Length) LonLatAlt {
	return LonLatAlt{Lon: ll.Lon, Lat: ll.Lat, Alt: alt}
}

// Validate checks that both angles are finite and that the latitude lies in
// [-90°, 90°]. Longitudes of any magnitude are accepted since they wrap.
func (ll LonLat) Validate() error {
	if err := angle.CheckFinite("validate longitude", ll.Lon); err != nil {
		return err
	}
	if err := angle.CheckFinite("validate latitude", ll.Lat); err != nil {
		return err
	}
	if math.Abs(ll.Lat.Degrees()) > 90 {
		return &LatitudeDomainError{Angle: ll.Lat}
	}
	return nil
}

// LonLatAlt is a LonLat with an altitude.
type LonLatAlt struct {
	Lon s1.Angle
	Lat s1.Angle
	Alt Length
}

// NewLonLatAlt builds a LonLatAlt from angles and an altitude.
func NewLonLatAlt(lon, lat s1.Angle, alt Length) LonLatAlt {
	return LonLatAlt{Lon: lon, Lat: lat, Alt: alt}
}

func (lla LonLatAlt) Longitude() s1.Angle { return lla.Lon }
func (lla LonLatAlt) Latitude() s1.Angle { return lla.Lat }
func (lla LonLatAlt) Altitude() Length { return lla.Alt }

func (lla *LonLatAlt) SetLongitude(lon s1.Angle) { lla.Lon = lon }
func (lla *LonLatAlt) SetLatitude(lat s1.Angle) { lla.Lat = lat }
func (lla *LonLatAlt) SetAltitude(alt Length) { lla.Alt = alt }

// LonLat drops the altitude.
func (lla LonLatAlt) LonLat() LonLat {
	return LonLat{Lon: lla.Lon, Lat: lla.Lat}
}

// Validate applies LonLat.Validate and requires a finite altitude.
func (lla LonLatAlt) Validate() error {
	if err := lla.LonLat().Validate(); err != nil {
		return err
	}
	switch alt := lla.Alt.Meters(); {
	case math.IsInf(alt, 0):
		return &angle.Error{Op: "validate altitude", Err: angle.ErrInfinite}
	case math.IsNaN(alt):
		return &angle.Error{Op: "validate altitude", Err: angle.ErrNaN}
	}
	return nil
}
