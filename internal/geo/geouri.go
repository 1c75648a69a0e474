package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
)

const crsWGS84 = "wgs84"

// FormatGeoURI writes g as geo:{lat},{lon} in decimal degrees, appending
// ,{alt} in meters when g also implements AltitudeGetter.
func FormatGeoURI(g LonLatGetter) (string, error) {
	lat, lon := g.Latitude(), g.Longitude()
	if err := angle.CheckFinite("format geo uri", lat); err != nil {
		return "", err
	}
	if err := angle.CheckFinite("format geo uri", lon); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(geoURIScheme)
	b.WriteString(formatFloat(lat.Degrees()))
	b.WriteByte(',')
	b.WriteString(formatFloat(lon.Degrees()))

	if ag, ok := g.(AltitudeGetter); ok {
		alt := ag.Altitude().Meters()
		if math.IsInf(alt, 0) || math.IsNaN(alt) {
			return "", &angle.Error{Op: "format geo uri", Err: angle.ErrInfinite}
		}
		b.WriteByte(',')
		b.WriteString(formatFloat(alt))
	}
	return b.String(), nil
}

// ParseGeoURI reads a geo URI as defined by RFC 5870:
//
//	geo:<lat>,<lon>[,<alt>][;crs=wgs84][;u=<uncertainty>][;<param>=<value>]
//
// Unlike ParseLonLat it accepts only plain decimal numbers, requires the
// scheme and checks ranges. The uncertainty and unknown parameters are
// validated but not returned. A missing altitude yields Alt 0.
func ParseGeoURI(uri string) (LonLatAlt, error) {
	if len(uri) < len(geoURIScheme) || !strings.EqualFold(uri[:len(geoURIScheme)], geoURIScheme) {
		return LonLatAlt{}, geoURIError(uri, "missing geo: scheme", nil)
	}

	coords, params, _ := strings.Cut(uri[len(geoURIScheme):], ";")
	if params != "" {
		if err := checkGeoURIParams(uri, strings.Split(params, ";")); err != nil {
			return LonLatAlt{}, err
		}
	}

	fields := strings.Split(coords, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return LonLatAlt{}, geoURIError(uri, "expected 2 or 3 coordinates", nil)
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return LonLatAlt{}, geoURIError(uri, "coordinate "+strconv.Itoa(i+1), err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return LonLatAlt{}, geoURIError(uri, "coordinate "+strconv.Itoa(i+1)+" is not finite", nil)
		}
		values[i] = v
	}

	lla := LonLatAlt{
		Lat: angle.FromDegrees(values[0]),
		Lon: angle.FromDegrees(values[1]),
	}
	if len(values) == 3 {
		lla.Alt = Length(values[2])
	}

	if err := lla.LonLat().Validate(); err != nil {
		return LonLatAlt{}, err
	}
	if math.Abs(values[1]) > 180 {
		return LonLatAlt{}, geoURIError(uri, "longitude outside [-180, 180]", nil)
	}
	return lla, nil
}

func checkGeoURIParams(uri string, params []string) error {
	for i, param := range params {
		key, value, ok := strings.Cut(param, "=")
		if key == "" {
			return geoURIError(uri, "empty parameter", nil)
		}

		switch strings.ToLower(key) {
		case "crs":
			// RFC 5870 3.3: crs must come first
			if i != 0 || !ok {
				return geoURIError(uri, "misplaced crs parameter", nil)
			}
			if !strings.EqualFold(value, crsWGS84) {
				return geoURIError(uri, "unsupported crs "+value, nil)
			}

		case "u":
			u, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return geoURIError(uri, "uncertainty", err)
			}
			if u < 0 || math.IsNaN(u) {
				return geoURIError(uri, "negative uncertainty", nil)
			}
		}
	}
	return nil
}

func geoURIError(uri, reason string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s (source=%q): %w", ErrGeoURI, reason, uri, err)
	}
	return fmt.Errorf("%w: %s (source=%q)", ErrGeoURI, reason, uri)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
