package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lonlat/internal/angle"
)

// 1e-6 degree
const degreeDelta = 1e-6

func assertNear(t *testing.T, want, got LonLat, msg string) {
	t.Helper()
	assert.InDelta(t, want.Lon.Degrees(), got.Lon.Degrees(), degreeDelta, msg)
	assert.InDelta(t, want.Lat.Degrees(), got.Lat.Degrees(), degreeDelta, msg)
}

func TestParseLonLatDecimal(t *testing.T) {
	for _, source := range []string{
		"geo:42.826667,140.811389",
		"42.826667,140.811389",
		"42.826667, 140.811389",
		"42.826667 140.811389",
		"  geo:42.826667,140.811389  ",
	} {
		ll, err := ParseLonLat(source)
		require.NoError(t, err, source)
		assert.Equal(t, sapporo, ll, source)
	}
}

func TestParseLonLatDMS(t *testing.T) {
	for _, source := range []string{
		"42°49’36”N 140°48’41”E",
		"42°49′36″N,140°48′41″E",
		"42°49'36\"N 140°48'41\"E",
		"42°49’36.0”N, 140°48’41.0”E",
		"42° 49′ 36″ N, 140° 48′ 41″ E",
	} {
		ll, err := ParseLonLat(source)
		require.NoError(t, err, source)
		assertNear(t, sapporo, ll, source)
	}
}

func TestParseLonLatRoles(t *testing.T) {
	cases := []struct {
		source string
		want   LonLat
	}{
		// hemisphere markers win over position
		{"140°48′41″E 42°49′36″N", sapporo},
		{"140.811389E,42.826667N", sapporo},
		{"42.5S,12W", FromDegrees(-12, -42.5)},
		// unmarked parts fill the remaining slot
		{"42.826667N,140.811389", sapporo},
		{"42.826667,140.811389E", sapporo},
		{"-42.5,-12", FromDegrees(-12, -42.5)},
	}
	for _, tc := range cases {
		ll, err := ParseLonLat(tc.source)
		require.NoError(t, err, tc.source)
		assertNear(t, tc.want, ll, tc.source)
	}
}

func TestParseLonLatUnknownPattern(t *testing.T) {
	for _, source := range []string{
		"43N,44N",
		"43E,44W",
		"140E,42.8",
		"42.826667",
		"42.8N",
	} {
		_, err := ParseLonLat(source)
		assert.ErrorIs(t, err, ErrUnknownPattern, source)
	}
}

func TestParseLonLatAngleErrors(t *testing.T) {
	_, err := ParseLonLat("abc,def")
	assert.ErrorIs(t, err, angle.ErrNoAnglePattern)

	_, err = ParseLonLat("")
	assert.ErrorIs(t, err, angle.ErrNoAnglePattern)

	_, err = ParseLonLat("1e999,0")
	assert.ErrorIs(t, err, angle.ErrNumber)

	_, err = ParseLonLat("北緯42度49分36秒 東経140度48分41秒")
	assert.ErrorIs(t, err, angle.ErrNoMatch)
}

func TestParseLonLatJaJP(t *testing.T) {
	for _, source := range []string{
		"北緯42度49分36秒 東経140度48分41秒",
		"東経140度48分41秒,北緯42度49分36秒",
		"42°49’36”N 140°48’41”E",
	} {
		ll, err := ParseLonLatWith(angle.JaJP, source)
		require.NoError(t, err, source)
		assertNear(t, sapporo, ll, source)
	}

	ll, err := ParseLonLatWith(angle.JaJP, "南緯33度52分 西経151度12分")
	require.NoError(t, err)
	assertNear(t, FromDegrees(-151.2, -(33+52.0/60)), ll, "southern")
}

func TestParseLonLatAlt(t *testing.T) {
	want := sapporo.WithAltitude(123.4)
	for _, source := range []string{
		"geo:42.826667,140.811389,123.4",
		"42.826667,140.811389,123.4",
		"42.826667 140.811389 123.4",
	} {
		lla, err := ParseLonLatAlt(source)
		require.NoError(t, err, source)
		assert.Equal(t, want, lla, source)
	}

	lla, err := ParseLonLatAlt("42°49’36”N 140°48’41”E -12.5")
	require.NoError(t, err)
	assertNear(t, sapporo, lla.LonLat(), "dms with altitude")
	assert.Equal(t, Length(-12.5), lla.Alt)
}

func TestParseLonLatAltErrors(t *testing.T) {
	_, err := ParseLonLatAlt("42.826667,140.811389")
	assert.ErrorIs(t, err, ErrUnknownPattern)

	_, err = ParseLonLatAlt("42.826667,140.811389,high")
	assert.ErrorIs(t, err, angle.ErrNumber)

	_, err = ParseLonLatAlt("43N,44N,10")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}
