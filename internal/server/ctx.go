package server

import (
	"fmt"

	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/config"
	"github.com/woozymasta/lonlat/internal/processor"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers. Handlers only read
// it, so it is shared across requests without locking.
type ServerContext struct {
	Config    *config.Config
	IndexHTML []byte
	Favicon   []byte
}

// NewServerContext renders the static assets for cfg.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	log.Info().Int("config_places_count", len(cfg.Places)).Msg("Initializing server context")

	formats := make([]string, 0, len(processor.Formats))
	for _, f := range processor.Formats {
		formats = append(formats, string(f))
	}

	index, err := BuildIndex(PageData{
		Notation:  cfg.NotationTable().Name,
		Format:    cfg.Format,
		Notations: []string{angle.ISO.Name, angle.JaJP.Name},
		Formats:   formats,
	})
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	favicon, err := BuildFavicon()
	if err != nil {
		return nil, fmt.Errorf("build favicon: %w", err)
	}

	for _, place := range cfg.Places {
		log.Trace().
			Str("place", place.Name).
			Strs("aliases", place.Aliases).
			Float64("lat", place.Position.Lat.Degrees()).
			Float64("lon", place.Position.Lon.Degrees()).
			Msg("Place registered")
	}

	log.Info().
		Int("index_bytes", len(index)).
		Str("notation", cfg.NotationTable().Name).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:    cfg,
		IndexHTML: index,
		Favicon:   favicon,
	}, nil
}
