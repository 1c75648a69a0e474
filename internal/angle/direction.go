package angle

// Direction is the role of a parsed angle implied by its hemisphere marker.
type Direction int

const (
	// DirectionNone means the text carried no hemisphere marker, or carried an
	// explicit +/- sign instead.
	DirectionNone Direction = iota
	// DirectionLongitude comes from E/W or 東経/西経.
	DirectionLongitude
	// DirectionLatitude comes from N/S or 北緯/南緯.
	DirectionLatitude
)

func (d Direction) String() string {
	switch d {
	case DirectionLongitude:
		return "longitude"
	case DirectionLatitude:
		return "latitude"
	default:
		return "none"
	}
}
