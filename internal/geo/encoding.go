package geo

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

var errEmptyLocation = errors.New("location: expected keyword or lonlat")

// Serialized forms keep angles in decimal degrees and altitude in meters.

type lonLatDoc struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

type lonLatAltDoc struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
	Alt float64 `json:"alt" yaml:"alt"`
}

type locationDoc struct {
	Keyword *string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	LonLat  *LonLat `json:"lonlat,omitempty" yaml:"lonlat,omitempty"`
}

func (ll LonLat) doc() lonLatDoc {
	return lonLatDoc{Lon: ll.Lon.Degrees(), Lat: ll.Lat.Degrees()}
}

func (d lonLatDoc) value() LonLat {
	return FromDegrees(d.Lon, d.Lat)
}

func (lla LonLatAlt) doc() lonLatAltDoc {
	return lonLatAltDoc{Lon: lla.Lon.Degrees(), Lat: lla.Lat.Degrees(), Alt: lla.Alt.Meters()}
}

func (d lonLatAltDoc) value() LonLatAlt {
	return FromDegrees(d.Lon, d.Lat).WithAltitude(Length(d.Alt))
}

func (ll LonLat) MarshalJSON() ([]byte, error) {
	return json.Marshal(ll.doc())
}

func (ll *LonLat) UnmarshalJSON(data []byte) error {
	var d lonLatDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*ll = d.value()
	return nil
}

func (ll LonLat) MarshalYAML() (any, error) {
	return ll.doc(), nil
}

func (ll *LonLat) UnmarshalYAML(node *yaml.Node) error {
	var d lonLatDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	*ll = d.value()
	return nil
}

func (lla LonLatAlt) MarshalJSON() ([]byte, error) {
	return json.Marshal(lla.doc())
}

func (lla *LonLatAlt) UnmarshalJSON(data []byte) error {
	var d lonLatAltDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*lla = d.value()
	return nil
}

func (lla LonLatAlt) MarshalYAML() (any, error) {
	return lla.doc(), nil
}

func (lla *LonLatAlt) UnmarshalYAML(node *yaml.Node) error {
	var d lonLatAltDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	*lla = d.value()
	return nil
}

func (l Location) doc() locationDoc {
	if l.isLonLat {
		ll := l.lonlat
		return locationDoc{LonLat: &ll}
	}
	kw := l.keyword
	return locationDoc{Keyword: &kw}
}

func (d locationDoc) value() (Location, error) {
	switch {
	case d.LonLat != nil:
		return LonLatLocation(*d.LonLat), nil
	case d.Keyword != nil:
		return KeywordLocation(*d.Keyword), nil
	}
	return Location{}, errEmptyLocation
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.doc())
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var d locationDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	v, err := d.value()
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Location) MarshalYAML() (any, error) {
	return l.doc(), nil
}

func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	var d locationDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	v, err := d.value()
	if err != nil {
		return err
	}
	*l = v
	return nil
}
