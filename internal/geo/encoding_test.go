package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLonLatJSON(t *testing.T) {
	data, err := json.Marshal(sapporo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lon":140.811389,"lat":42.826667}`, string(data))

	var got LonLat
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sapporo, got)
}

func TestLonLatAltJSON(t *testing.T) {
	lla := sapporo.WithAltitude(123.4)
	data, err := json.Marshal(lla)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lon":140.811389,"lat":42.826667,"alt":123.4}`, string(data))

	var got LonLatAlt
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, lla, got)
}

func TestLonLatYAML(t *testing.T) {
	data, err := yaml.Marshal(sapporo)
	require.NoError(t, err)
	assert.Equal(t, "lon: 140.811389\nlat: 42.826667\n", string(data))

	var got LonLat
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sapporo, got)

	var lla LonLatAlt
	require.NoError(t, yaml.Unmarshal([]byte("lon: 140.811389\nlat: 42.826667\nalt: 123.4\n"), &lla))
	assert.Equal(t, sapporo.WithAltitude(123.4), lla)
}

func TestLocationJSON(t *testing.T) {
	cases := []struct {
		loc  Location
		want string
	}{
		{KeywordLocation("Sapporo"), `{"keyword":"Sapporo"}`},
		{LonLatLocation(sapporo), `{"lonlat":{"lon":140.811389,"lat":42.826667}}`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.loc)
		require.NoError(t, err)
		assert.JSONEq(t, tc.want, string(data))

		var got Location
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, tc.loc, got)
	}

	var loc Location
	assert.Error(t, json.Unmarshal([]byte(`{}`), &loc))
}

func TestLocationYAML(t *testing.T) {
	for _, loc := range []Location{KeywordLocation("Sapporo"), LonLatLocation(sapporo)} {
		data, err := yaml.Marshal(loc)
		require.NoError(t, err)

		var got Location
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, loc, got)
	}

	var loc Location
	require.NoError(t, yaml.Unmarshal([]byte("keyword: Hakodate\n"), &loc))
	assert.Equal(t, KeywordLocation("Hakodate"), loc)

	assert.Error(t, yaml.Unmarshal([]byte("other: 1\n"), &loc))
}
