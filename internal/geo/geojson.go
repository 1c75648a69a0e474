package geo

// GeoJSON type names used by this package.
const (
	geoJSONFeatureCollection = "FeatureCollection"
	geoJSONFeature           = "Feature"
	geoJSONPoint             = "Point"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single point feature with properties.
type Feature struct {
	Properties map[string]any `json:"properties" yaml:"properties"`
	Type       string         `json:"type" yaml:"type"`
	Geometry   Geometry       `json:"geometry" yaml:"geometry"`
}

// Geometry represents the geometry of a feature.
type Geometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat(, Alt)]
}

// NewFeatureCollection wraps features in a collection.
func NewFeatureCollection(features ...Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: geoJSONFeatureCollection, Features: features}
}

// NewPointFeature builds a Point feature from g. Altitude is included as the
// third coordinate when g implements AltitudeGetter.
func NewPointFeature(g LonLatGetter, properties map[string]any) Feature {
	coords := []float64{g.Longitude().Degrees(), g.Latitude().Degrees()}
	if ag, ok := g.(AltitudeGetter); ok {
		coords = append(coords, ag.Altitude().Meters())
	}
	if properties == nil {
		properties = map[string]any{}
	}

	return Feature{
		Type:       geoJSONFeature,
		Properties: properties,
		Geometry: Geometry{
			Type:        geoJSONPoint,
			Coordinates: coords,
		},
	}
}
