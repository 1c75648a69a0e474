// Package config handles configuration loading and named places.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/geo"

	"github.com/golang/geo/s1"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Defaults applied to empty configuration fields.
const (
	DefaultNotation  = "iso"
	DefaultSeparator = "space"
	DefaultFormat    = "geo-uri"
)

// ErrDuplicatePlace is returned when two places share a name or alias.
var ErrDuplicatePlace = errors.New("duplicate place name or alias")

// Config represents the root configuration file structure.
type Config struct {
	Notation  string  `yaml:"notation,omitempty" json:"notation,omitempty"`
	Separator string  `yaml:"separator,omitempty" json:"separator,omitempty"`
	Format    string  `yaml:"format,omitempty" json:"format,omitempty"`
	Places    []Place `yaml:"places" json:"places"`

	notation *angle.Notation
	resolver map[string]int
}

// Place is a named coordinate. Coordinate accepts anything geo.ParseLonLat
// does, in the configured notation, optionally followed by an altitude.
type Place struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Coordinate  string        `yaml:"coordinate" json:"-"`
	Aliases     []string      `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Position    geo.LonLatAlt `yaml:"-" json:"position"`
	HasAltitude bool          `yaml:"-" json:"has_altitude,omitempty"`
}

// Longitude and Latitude make a Place usable wherever a geo.LonLatGetter is.
func (p Place) Longitude() s1.Angle { return p.Position.Lon }
func (p Place) Latitude() s1.Angle { return p.Position.Lat }

// Point returns the position, with altitude only when the coordinate had one.
func (p Place) Point() geo.LonLatGetter {
	if p.HasAltitude {
		return p.Position
	}
	return p.Position.LonLat()
}

// Default returns a ready configuration without places.
func Default() *Config {
	return &Config{
		Notation:  DefaultNotation,
		Separator: DefaultSeparator,
		Format:    DefaultFormat,
		Places:    []Place{},
		notation:  angle.ISO,
		resolver:  map[string]int{},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Prepare(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("notation", cfg.Notation).
		Int("places", len(cfg.Places)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Prepare fills defaults, resolves the notation, parses place coordinates
// and builds the name resolver. Load calls it; call it yourself for a
// Config built in code.
func (c *Config) Prepare() error {
	if c.Notation == "" {
		c.Notation = DefaultNotation
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}

	n, err := angle.NotationByName(c.Notation)
	if err != nil {
		return err
	}
	c.notation = n

	for i := range c.Places {
		place := &c.Places[i]
		if err := place.parse(n); err != nil {
			return fmt.Errorf("place %q: %w", place.Name, err)
		}
	}

	sort.SliceStable(c.Places, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if c.Places[i].Index != nil {
			idxI = *c.Places[i].Index
		}
		if c.Places[j].Index != nil {
			idxJ = *c.Places[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return c.Places[i].Name < c.Places[j].Name
	})

	c.resolver = make(map[string]int, len(c.Places))
	for i, place := range c.Places {
		for _, key := range append([]string{place.Name}, place.Aliases...) {
			key = resolverKey(key)
			if key == "" {
				continue
			}
			if j, ok := c.resolver[key]; ok && j != i {
				return fmt.Errorf("%w: %q (%s, %s)", ErrDuplicatePlace, key, c.Places[j].Name, place.Name)
			}
			c.resolver[key] = i
		}
	}

	return nil
}

// NotationTable returns the notation selected by Notation.
func (c *Config) NotationTable() *angle.Notation {
	if c.notation == nil {
		return angle.ISO
	}
	return c.notation
}

// SeparatorValue maps the Separator names "comma" and "space" to their
// characters; anything else is used verbatim.
func (c *Config) SeparatorValue() string {
	return SeparatorValue(c.Separator)
}

// SeparatorValue maps a separator name to its characters.
func SeparatorValue(name string) string {
	switch strings.ToLower(name) {
	case "", "space":
		return geo.SeparatorSpace
	case "comma":
		return geo.SeparatorComma
	}
	return name
}

// Place finds a place by name or alias, ignoring case.
func (c *Config) Place(keyword string) (Place, bool) {
	i, ok := c.resolver[resolverKey(keyword)]
	if !ok {
		return Place{}, false
	}
	return c.Places[i], true
}

// Lookup implements the keyword lookup used by geo.Location.Resolve.
func (c *Config) Lookup(keyword string) (geo.LonLat, bool) {
	place, ok := c.Place(keyword)
	if !ok {
		return geo.LonLat{}, false
	}
	return place.Position.LonLat(), true
}

// Resolve returns the coordinate of loc, looking keywords up in the places.
func (c *Config) Resolve(loc geo.Location) (geo.LonLat, error) {
	return loc.Resolve(c.Lookup)
}

func (p *Place) parse(n *angle.Notation) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("place name is empty")
	}

	if lla, err := geo.ParseLonLatAltWith(n, p.Coordinate); err == nil {
		p.Position, p.HasAltitude = lla, true
	} else {
		ll, err := geo.ParseLonLatWith(n, p.Coordinate)
		if err != nil {
			return err
		}
		p.Position, p.HasAltitude = ll.WithAltitude(0), false
	}

	return p.Position.LonLat().Validate()
}

func resolverKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
