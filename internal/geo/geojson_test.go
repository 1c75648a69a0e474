package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointFeature(t *testing.T) {
	f := NewPointFeature(sapporo, map[string]any{"name": "Sapporo"})
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	assert.Equal(t, []float64{140.811389, 42.826667}, f.Geometry.Coordinates)

	f = NewPointFeature(sapporo.WithAltitude(123.4), nil)
	assert.Equal(t, []float64{140.811389, 42.826667, 123.4}, f.Geometry.Coordinates)
	assert.NotNil(t, f.Properties)
}

func TestFeatureCollectionJSON(t *testing.T) {
	fc := NewFeatureCollection(NewPointFeature(sapporo, map[string]any{"name": "Sapporo"}))
	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"name": "Sapporo"},
			"geometry": {"type": "Point", "coordinates": [140.811389, 42.826667]}
		}]
	}`, string(data))

	data, err = json.Marshal(NewFeatureCollection())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
