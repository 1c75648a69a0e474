package processor

import (
	"github.com/woozymasta/lonlat/internal/angle"
)

// AngleReport lists one angle in every notation the angle package can
// produce.
type AngleReport struct {
	Source    string `json:"source" yaml:"source"`
	Direction string `json:"direction" yaml:"direction"`
	Radians   string `json:"radians" yaml:"radians"`
	Degrees   string `json:"degrees" yaml:"degrees"`
	Minutes   string `json:"minutes" yaml:"minutes"`
	Seconds   string `json:"seconds" yaml:"seconds"`
	DMS360    string `json:"dms360" yaml:"dms360"`
	DMS180    string `json:"dms180" yaml:"dms180"`
	DMS90     string `json:"dms90" yaml:"dms90"`
	NS        string `json:"ns" yaml:"ns"`
	EW        string `json:"ew" yaml:"ew"`
}

// DescribeAngle parses a single angle with n and renders it in every form.
func DescribeAngle(n *angle.Notation, source string) (AngleReport, error) {
	if n == nil {
		n = angle.ISO
	}

	a, dir, err := n.ParseWithDirection(source)
	if err != nil {
		return AngleReport{}, err
	}

	report := AngleReport{
		Source:    source,
		Direction: dir.String(),
		Radians:   angle.FormatRadians(a),
		Degrees:   n.FormatDegrees(a),
		Minutes:   n.FormatMinutes(a),
		Seconds:   n.FormatSeconds(a),
	}

	if report.DMS360, err = n.FormatDMS360(a); err != nil {
		return AngleReport{}, err
	}
	if report.DMS180, err = n.FormatDMS180(a); err != nil {
		return AngleReport{}, err
	}
	if report.DMS90, err = n.FormatDMS90(a); err != nil {
		return AngleReport{}, err
	}
	if report.NS, err = n.FormatNS(a); err != nil {
		return AngleReport{}, err
	}
	if report.EW, err = n.FormatEW(a); err != nil {
		return AngleReport{}, err
	}

	return report, nil
}
