package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/geo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const placesYAML = `
notation: ja-JP
separator: comma
format: dms-nwse
places:
  - name: Sapporo
    aliases: [札幌, sap]
    coordinate: 北緯43度3分43.5秒 東経141度21分15.8秒
  - name: Hakodate
    index: 1
    coordinate: 41.768793,140.728810,12.5
  - name: Kushiro
    coordinate: 42.984854, 144.381356
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, placesYAML))
	require.NoError(t, err)

	assert.Equal(t, angle.JaJP, cfg.NotationTable())
	assert.Equal(t, ",", cfg.SeparatorValue())
	assert.Equal(t, "dms-nwse", cfg.Format)

	// indexed places first, then by name
	require.Len(t, cfg.Places, 3)
	assert.Equal(t, "Hakodate", cfg.Places[0].Name)
	assert.Equal(t, "Kushiro", cfg.Places[1].Name)
	assert.Equal(t, "Sapporo", cfg.Places[2].Name)

	hakodate := cfg.Places[0]
	assert.True(t, hakodate.HasAltitude)
	assert.Equal(t, geo.FromDegrees(140.728810, 41.768793).WithAltitude(12.5), hakodate.Position)
	assert.IsType(t, geo.LonLatAlt{}, hakodate.Point())

	kushiro := cfg.Places[1]
	assert.False(t, kushiro.HasAltitude)
	assert.Equal(t, geo.FromDegrees(144.381356, 42.984854), kushiro.Point())
}

func TestLookup(t *testing.T) {
	cfg, err := Load(writeConfig(t, placesYAML))
	require.NoError(t, err)

	for _, keyword := range []string{"Sapporo", "sapporo", " SAP ", "札幌"} {
		ll, ok := cfg.Lookup(keyword)
		require.True(t, ok, keyword)
		assert.InDelta(t, 43.062083, ll.Lat.Degrees(), 1e-6, keyword)
		assert.InDelta(t, 141.354389, ll.Lon.Degrees(), 1e-6, keyword)
	}

	_, ok := cfg.Lookup("Tokyo")
	assert.False(t, ok)

	ll, err := cfg.Resolve(geo.KeywordLocation("hakodate"))
	require.NoError(t, err)
	assert.Equal(t, geo.FromDegrees(140.728810, 41.768793), ll)

	_, err = cfg.Resolve(geo.KeywordLocation("Tokyo"))
	assert.ErrorIs(t, err, geo.ErrUnresolvedKeyword)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "places: []\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultNotation, cfg.Notation)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, " ", cfg.SeparatorValue())
	assert.Equal(t, angle.ISO, cfg.NotationTable())

	def := Default()
	assert.Equal(t, cfg.Notation, def.Notation)
	assert.Equal(t, angle.ISO, def.NotationTable())
	_, ok := def.Lookup("anything")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "places: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "notation: klingon\n"))
	assert.ErrorIs(t, err, angle.ErrUnknownNotation)

	_, err = Load(writeConfig(t, "places:\n  - name: Nowhere\n    coordinate: somewhere\n"))
	assert.ErrorIs(t, err, angle.ErrNoAnglePattern)
	assert.Contains(t, err.Error(), `place "Nowhere"`)

	_, err = Load(writeConfig(t, "places:\n  - name: Pole\n    coordinate: 95,0\n"))
	var domainErr *geo.LatitudeDomainError
	assert.ErrorAs(t, err, &domainErr)

	_, err = Load(writeConfig(t, `
places:
  - name: A
    coordinate: 1,2
  - name: B
    aliases: [a]
    coordinate: 3,4
`))
	assert.ErrorIs(t, err, ErrDuplicatePlace)
}

func TestSeparatorValue(t *testing.T) {
	assert.Equal(t, " ", SeparatorValue(""))
	assert.Equal(t, " ", SeparatorValue("space"))
	assert.Equal(t, ",", SeparatorValue("Comma"))
	assert.Equal(t, " / ", SeparatorValue(" / "))
}
