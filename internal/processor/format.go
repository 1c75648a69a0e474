package processor

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects how records are rendered.
type Format string

// Output formats.
const (
	FormatGeoURI  Format = "geo-uri"
	FormatDMS     Format = "dms"
	FormatDMSNWSE Format = "dms-nwse"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported output format.
var Formats = []Format{FormatGeoURI, FormatDMS, FormatDMSNWSE, FormatJSON, FormatYAML, FormatGeoJSON}

// ParseFormat reads a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Structured reports whether f renders all records as one document.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatGeoJSON
}

// ContentType is the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatGeoJSON:
		return "application/geo+json"
	}
	return "text/plain; charset=utf-8"
}
