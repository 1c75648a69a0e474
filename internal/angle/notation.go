package angle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/woozymasta/lonlat/internal/sign"
)

// Capture group names shared by both grammars.
const (
	groupSign           = "sign"
	groupDegrees        = "deg"
	groupDegreesOnly    = "deg_only"
	groupMinutes        = "min"
	groupSeconds        = "sec"
	groupHemisphere     = "nwse"
	groupHemisphereWord = "nwse_ja_jp"
)

// decimal with optional fraction and exponent, unsigned
const number = `\d*\.?\d+(?:[eE][-+]?\d+)?`

var isoPattern = regexp.MustCompile(
	`^(?P<head>[^\d+-]*?)` + // leading text, discarded
		`(?P<sign>[+-]?)` +
		`(?:` +
		`(?:(?P<deg>` + number + `)°)?` +
		`(?:[ ]*(?P<min>` + number + `)[′’'])?` +
		`(?:[ ]*(?P<sec>` + number + `)[″”"])?` +
		`|(?P<deg_only>` + number + `)` + // decimal degrees
		`)` +
		`(?:[ ]*(?P<nwse>[NWSE]?))` +
		`(?P<tail>[^\d]*?)$`, // trailing text, discarded
)

var jaJPPattern = regexp.MustCompile(
	`^(?P<head>[^\d+-]*?)` +
		`(?:[ ]*(?P<nwse_ja_jp>(?:北緯|西経|南緯|東経)?))` + // hemisphere prefix word
		`(?P<sign>[+-]?)` +
		`(?:` +
		`(?:(?P<deg>` + number + `)[°度])?` +
		`(?:[ ]*(?P<min>` + number + `)[′’'分])?` +
		`(?:[ ]*(?P<sec>` + number + `)[″”"秒])?` +
		`|(?P<deg_only>` + number + `)` +
		`)` +
		`(?:[ ]*(?P<nwse>[NWSE]?))` +
		`(?P<tail>[^\d]*)$`,
)

type hemisphere struct {
	sign      sign.Sign
	direction Direction
}

var hemisphereLetters = map[string]hemisphere{
	"N": {sign.Positive, DirectionLatitude},
	"W": {sign.Negative, DirectionLongitude},
	"S": {sign.Negative, DirectionLatitude},
	"E": {sign.Positive, DirectionLongitude},
}

// Notation is a fixed glyph table plus the grammar that reads it back.
// Both notations are built once at package init and never mutated.
type Notation struct {
	Name string

	// unit glyphs used when rendering
	Degree string
	Minute string
	Second string

	North string
	South string
	East  string
	West  string

	// hemisphere rendered as a leading word instead of a trailing letter
	hemispherePrefix bool
	// hemisphere words recognized by the grammar, nil when unsupported
	words   map[string]hemisphere
	pattern *regexp.Regexp
}

// ISO is the ISO 80000-1 notation: 141°21’15.8”E.
var ISO = &Notation{
	Name:    "iso",
	Degree:  "°",
	Minute:  "’",
	Second:  "”",
	North:   "N",
	South:   "S",
	East:    "E",
	West:    "W",
	pattern: isoPattern,
}

// JaJP is the Japanese notation: 東経141度21分15.8秒. Its grammar also accepts
// everything ISO accepts.
var JaJP = &Notation{
	Name:             "ja-JP",
	Degree:           "度",
	Minute:           "分",
	Second:           "秒",
	North:            "北緯",
	South:            "南緯",
	East:             "東経",
	West:             "西経",
	hemispherePrefix: true,
	words: map[string]hemisphere{
		"北緯": {sign.Positive, DirectionLatitude},
		"西経": {sign.Negative, DirectionLongitude},
		"南緯": {sign.Negative, DirectionLatitude},
		"東経": {sign.Positive, DirectionLongitude},
	},
	pattern: jaJPPattern,
}

// NotationByName returns ISO for "iso" (or "") and JaJP for "ja-JP",
// case-insensitively.
func NotationByName(name string) (*Notation, error) {
	switch {
	case name == "" || strings.EqualFold(name, ISO.Name):
		return ISO, nil
	case strings.EqualFold(name, JaJP.Name), strings.EqualFold(name, "ja_JP"):
		return JaJP, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNotation, name)
}

func (n *Notation) String() string {
	return n.Name
}
