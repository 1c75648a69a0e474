// Package processor converts lines of coordinate text into records and
// renders them in one of the output formats.
package processor

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Options control reading and rendering.
type Options struct {
	// Lookup resolves place names; lines that are not coordinates fail
	// without it.
	Lookup func(keyword string) (geo.LonLat, bool)

	// Notation is used for both parsing and DMS output. Defaults to ISO.
	Notation *angle.Notation

	Separator string
	Format    Format

	// Altitude expects a third, altitude field on every line.
	Altitude bool

	// SkipInvalid logs and drops bad lines instead of failing.
	SkipInvalid bool
}

func (o Options) notation() *angle.Notation {
	if o.Notation == nil {
		return angle.ISO
	}
	return o.Notation
}

func (o Options) separator() string {
	if o.Separator == "" {
		return geo.SeparatorSpace
	}
	return o.Separator
}

// Record is one converted input line.
type Record struct {
	Point    geo.LonLatGetter
	Location geo.Location
	Source   string
	Line     int
}

// Process reads coordinates from r and writes them to w.
func Process(r io.Reader, w io.Writer, opts Options) error {
	records, err := Read(r, opts)
	if err != nil {
		return err
	}

	log.Debug().
		Int("records", len(records)).
		Str("format", string(opts.Format)).
		Str("notation", opts.notation().Name).
		Msg("Rendering records")

	return Render(w, records, opts)
}

// Read parses every non-empty line of r that does not start with '#'.
func Read(r io.Reader, opts Options) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		rec, err := ParseLine(text, opts)
		if err != nil {
			if opts.SkipInvalid {
				log.Warn().
					Err(err).
					Int("line", line).
					Str("source", text).
					Msg("Skipping invalid line")
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec.Line = line
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseLine converts a single coordinate or place name.
func ParseLine(text string, opts Options) (Record, error) {
	n := opts.notation()
	rec := Record{Source: text}

	if opts.Altitude {
		lla, err := geo.ParseLonLatAltWith(n, text)
		if err != nil {
			return Record{}, err
		}
		rec.Point = lla
		rec.Location = geo.LonLatLocation(lla.LonLat())
		return rec, nil
	}

	ll, err := geo.ParseLonLatWith(n, text)
	if err == nil {
		rec.Point = ll
		rec.Location = geo.LonLatLocation(ll)
		return rec, nil
	}

	// not a coordinate, try it as a place name
	loc := geo.KeywordLocation(text)
	resolved, resolveErr := loc.Resolve(opts.Lookup)
	if resolveErr != nil {
		return Record{}, errors.Join(err, resolveErr)
	}

	log.Trace().Str("place", text).Msg("Resolved place name")

	rec.Point = resolved
	rec.Location = loc
	return rec, nil
}

// Render writes records to w in opts.Format.
func Render(w io.Writer, records []Record, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		docs, err := recordDocs(records, opts)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)

	case FormatYAML:
		docs, err := recordDocs(records, opts)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()

	case FormatGeoJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(featureCollection(records))

	case FormatGeoURI, FormatDMS, FormatDMSNWSE, "":
		bw := bufio.NewWriter(w)
		for _, rec := range records {
			s, err := formatLine(rec.Point, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
			if _, err := bw.WriteString(s + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

func formatLine(p geo.LonLatGetter, opts Options) (string, error) {
	switch opts.Format {
	case FormatDMS:
		return geo.FormatDMS(opts.notation(), p, opts.separator())
	case FormatDMSNWSE:
		return geo.FormatDMSNWSE(opts.notation(), p, opts.separator())
	}
	return geo.FormatGeoURI(p)
}

type recordDoc struct {
	Location geo.Location `json:"location" yaml:"location"`
	Position any          `json:"position" yaml:"position"`
	Source   string       `json:"source" yaml:"source"`
	GeoURI   string       `json:"geo_uri" yaml:"geo_uri"`
	DMS      string       `json:"dms" yaml:"dms"`
	Line     int          `json:"line" yaml:"line"`
}

func recordDocs(records []Record, opts Options) ([]recordDoc, error) {
	docs := make([]recordDoc, 0, len(records))
	for _, rec := range records {
		uri, err := geo.FormatGeoURI(rec.Point)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		dms, err := geo.FormatDMSNWSE(opts.notation(), rec.Point, opts.separator())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.Line, err)
		}

		docs = append(docs, recordDoc{
			Line:     rec.Line,
			Source:   rec.Source,
			Location: rec.Location,
			Position: rec.Point,
			GeoURI:   uri,
			DMS:      dms,
		})
	}
	return docs, nil
}

func featureCollection(records []Record) geo.FeatureCollection {
	features := make([]geo.Feature, 0, len(records))
	for _, rec := range records {
		props := map[string]any{
			"line":   rec.Line,
			"source": rec.Source,
		}
		if kw, ok := rec.Location.Keyword(); ok {
			props["name"] = kw
		}
		features = append(features, geo.NewPointFeature(rec.Point, props))
	}
	return geo.NewFeatureCollection(features...)
}
