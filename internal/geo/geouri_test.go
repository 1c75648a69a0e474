package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeoURI(t *testing.T) {
	cases := []struct {
		uri  string
		want LonLatAlt
	}{
		{"geo:42.826667,140.811389,123.4;u=35", sapporo.WithAltitude(123.4)},
		{"geo:42.826667,140.811389", sapporo.WithAltitude(0)},
		{"geo:42.826667,140.811389;crs=wgs84", sapporo.WithAltitude(0)},
		{"GEO:42.826667,140.811389;CRS=WGS84;u=0", sapporo.WithAltitude(0)},
		{"geo:42.826667,140.811389;foo=bar", sapporo.WithAltitude(0)},
		{"geo:-90,-180", FromDegrees(-180, -90).WithAltitude(0)},
	}
	for _, tc := range cases {
		lla, err := ParseGeoURI(tc.uri)
		require.NoError(t, err, tc.uri)
		assert.Equal(t, tc.want, lla, tc.uri)
	}
}

func TestParseGeoURIErrors(t *testing.T) {
	for _, uri := range []string{
		"",
		"42.826667,140.811389",
		"geo:",
		"geo:42.826667",
		"geo:1,2,3,4",
		"geo:42°49’36”N,140.811389",
		"geo: 42.826667,140.811389",
		"geo:1,2;crs=nad27",
		"geo:1,2;u=35;crs=wgs84",
		"geo:1,2;u=-1",
		"geo:1,2;u=far",
		"geo:1,2;;u=1",
		"geo:0,180.5",
		"geo:inf,0",
	} {
		_, err := ParseGeoURI(uri)
		assert.ErrorIs(t, err, ErrGeoURI, uri)
	}
}

func TestParseGeoURILatitudeDomain(t *testing.T) {
	_, err := ParseGeoURI("geo:90.5,0")
	var domainErr *LatitudeDomainError
	require.True(t, errors.As(err, &domainErr))
	assert.InDelta(t, 90.5, domainErr.Angle.Degrees(), 1e-12)
}

func TestParseGeoURIFormatRoundTrip(t *testing.T) {
	lla := sapporo.WithAltitude(123.4)
	s, err := FormatGeoURI(lla)
	require.NoError(t, err)

	got, err := ParseGeoURI(s)
	require.NoError(t, err)
	assert.Equal(t, lla, got)
}
