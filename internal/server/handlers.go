// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/config"
	"github.com/woozymasta/lonlat/internal/geo"
	"github.com/woozymasta/lonlat/internal/processor"

	"github.com/rs/zerolog/log"
)

// maxBodySize caps POST bodies for /api/convert.
const maxBodySize = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// notation picks the notation query parameter or the configured default.
func (s *ServerContext) notation(r *http.Request) (*angle.Notation, error) {
	if name := r.URL.Query().Get("notation"); name != "" {
		return angle.NotationByName(name)
	}
	return s.Config.NotationTable(), nil
}

// HandleConvert converts coordinates given as ?q= (GET) or as request body
// lines (POST). Query parameters: notation, format, sep, alt, skip.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input string
	switch r.Method {
	case http.MethodGet:
		input = r.URL.Query().Get("q")
	case http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		input = string(body)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	opts, err := s.convertOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := processor.Process(strings.NewReader(input), &buf, opts); err != nil {
		log.Debug().Err(err).Msg("Conversion failed")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", opts.Format.ContentType())
	_, _ = w.Write(buf.Bytes())
}

func (s *ServerContext) convertOptions(r *http.Request) (processor.Options, error) {
	q := r.URL.Query()

	n, err := s.notation(r)
	if err != nil {
		return processor.Options{}, err
	}

	format := processor.FormatJSON
	if name := q.Get("format"); name != "" {
		if format, err = processor.ParseFormat(name); err != nil {
			return processor.Options{}, err
		}
	}

	sep := s.Config.SeparatorValue()
	if q.Has("sep") {
		sep = config.SeparatorValue(q.Get("sep"))
	}

	opts := processor.Options{
		Lookup:    s.Config.Lookup,
		Notation:  n,
		Separator: sep,
		Format:    format,
	}
	if opts.Altitude, err = queryBool(q.Get("alt")); err != nil {
		return processor.Options{}, fmt.Errorf("alt: %w", err)
	}
	if opts.SkipInvalid, err = queryBool(q.Get("skip")); err != nil {
		return processor.Options{}, fmt.Errorf("skip: %w", err)
	}
	return opts, nil
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// HandleAngle describes the single angle given as ?q=.
func (s *ServerContext) HandleAngle(w http.ResponseWriter, r *http.Request) {
	n, err := s.notation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := processor.DescribeAngle(n, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandlePlaces serves the configured places as JSON, or as GeoJSON with
// ?format=geojson.
func (s *ServerContext) HandlePlaces(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") != string(processor.FormatGeoJSON) {
		writeJSON(w, http.StatusOK, s.Config.Places)
		return
	}

	features := make([]geo.Feature, 0, len(s.Config.Places))
	for _, place := range s.Config.Places {
		props := map[string]any{"name": place.Name}
		if len(place.Aliases) > 0 {
			props["aliases"] = place.Aliases
		}
		if place.Description != "" {
			props["description"] = place.Description
		}
		features = append(features, geo.NewPointFeature(place.Point(), props))
	}

	w.Header().Set("Content-Type", processor.FormatGeoJSON.ContentType())
	_ = json.NewEncoder(w).Encode(geo.NewFeatureCollection(features...))
}

// HandlePlace resolves one place: /api/places/{name}.
func (s *ServerContext) HandlePlace(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/places/")
	place, ok := s.Config.Place(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", geo.ErrUnresolvedKeyword, name))
		return
	}
	writeJSON(w, http.StatusOK, place)
}

// HandleFavicon serves the site icon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// NewMux registers every route.
func (s *ServerContext) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", s.HandleConvert)
	mux.HandleFunc("/api/angle", s.HandleAngle)
	mux.HandleFunc("/api/places", s.HandlePlaces)
	mux.HandleFunc("/api/places/", s.HandlePlace)
	mux.HandleFunc("/favicon.svg", s.HandleFavicon)
	mux.HandleFunc("/", s.HandleIndex)
	return mux
}
