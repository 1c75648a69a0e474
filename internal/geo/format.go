package geo

import (
	"github.com/woozymasta/lonlat/internal/angle"
)

// Separators for DMS pair output.
const (
	SeparatorComma = ","
	SeparatorSpace = " "
)

// FormatDMS writes the latitude and longitude as signed DMS values joined by
// sep, latitude first: +42°49’36.0”,+140°48’41.0”.
func FormatDMS(n *angle.Notation, g LonLatGetter, sep string) (string, error) {
	lat, err := n.FormatDMS90(g.Latitude())
	if err != nil {
		return "", err
	}
	lon, err := n.FormatDMS180(g.Longitude())
	if err != nil {
		return "", err
	}
	return lat + sep + lon, nil
}

// FormatDMSNWSE writes the latitude and longitude with hemisphere markers
// joined by sep, latitude first: 42°49’36.0”N 140°48’41.0”E.
func FormatDMSNWSE(n *angle.Notation, g LonLatGetter, sep string) (string, error) {
	lat, err := n.FormatNS(g.Latitude())
	if err != nil {
		return "", err
	}
	lon, err := n.FormatEW(g.Longitude())
	if err != nil {
		return "", err
	}
	return lat + sep + lon, nil
}
