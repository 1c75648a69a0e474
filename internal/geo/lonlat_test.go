package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lonlat/internal/angle"
)

var sapporo = FromDegrees(140.811389, 42.826667)

func TestLonLatAccessors(t *testing.T) {
	assert.Equal(t, angle.FromDegrees(140.811389), sapporo.Longitude())
	assert.Equal(t, angle.FromDegrees(42.826667), sapporo.Latitude())

	var zero LonLat
	assert.Equal(t, FromDegrees(0, 0), zero)
}

func TestLonLatSetters(t *testing.T) {
	var ll LonLat
	var s LonLatSetter = &ll
	s.SetLongitude(sapporo.Lon)
	s.SetLatitude(sapporo.Lat)
	assert.Equal(t, sapporo, ll)

	lla := sapporo.WithAltitude(10)
	lla.SetAltitude(123.4)
	lla.SetLatitude(angle.FromDegrees(-1))
	assert.Equal(t, Length(123.4), lla.Altitude())
	assert.Equal(t, angle.FromDegrees(-1), lla.Lat)
	assert.Equal(t, sapporo.Lon, lla.Lon)
}

func TestLonLatAltConversions(t *testing.T) {
	lla := sapporo.WithAltitude(123.4 * Meter)
	assert.Equal(t, NewLonLatAlt(sapporo.Lon, sapporo.Lat, 123.4), lla)
	assert.Equal(t, sapporo, lla.LonLat())
	assert.Equal(t, sapporo, AsLonLat(lla))
	assert.Equal(t, 123.4, lla.Alt.Meters())
}

func TestValidate(t *testing.T) {
	require.NoError(t, sapporo.Validate())
	require.NoError(t, FromDegrees(540, -90).Validate())

	err := FromDegrees(0, 90.5).Validate()
	var domainErr *LatitudeDomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, angle.FromDegrees(90.5), domainErr.Angle)

	err = FromDegrees(math.Inf(-1), 0).Validate()
	assert.ErrorIs(t, err, angle.ErrInfinite)

	err = FromDegrees(0, math.NaN()).Validate()
	assert.ErrorIs(t, err, angle.ErrNaN)

	err = sapporo.WithAltitude(Length(math.NaN())).Validate()
	assert.ErrorIs(t, err, angle.ErrNaN)
}
