// Package site holds the page configuration shared by the host server and
// the browser program: navigation, tracked sections and contact details.
package site

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kritikpaudel/portfolio/sectiontrack"
)

//go:embed site.yaml
var defaultYAML []byte

type Link struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Href is the in-page anchor for the link's section.
func (l Link) Href() string { return "#" + l.ID }

type Social struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Brand struct {
	Words []string `yaml:"words"`
	MinCh int      `yaml:"min_ch"`
}

type Tracking struct {
	RootMargin string    `yaml:"root_margin"`
	Thresholds []float64 `yaml:"thresholds"`
}

type Site struct {
	Owner    string   `yaml:"owner"`
	Email    string   `yaml:"email"`
	Brand    Brand    `yaml:"brand"`
	Nav      []Link   `yaml:"nav"`
	Tracking Tracking `yaml:"tracking"`
	Socials  []Social `yaml:"socials"`

	band sectiontrack.Band
}

// Default returns the configuration compiled into the binary.
func Default() (*Site, error) {
	return Load(defaultYAML)
}

// Load parses and validates a site configuration.
func Load(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing site config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if len(s.Nav) == 0 {
		return fmt.Errorf("site config: nav needs at least one link")
	}
	seen := make(map[string]bool, len(s.Nav))
	for i, l := range s.Nav {
		id := strings.TrimSpace(l.ID)
		if id == "" {
			return fmt.Errorf("site config: nav[%d] has no id", i)
		}
		if seen[id] {
			return fmt.Errorf("site config: duplicate nav id %q", id)
		}
		seen[id] = true
		s.Nav[i].ID = id
	}

	if s.Tracking.RootMargin == "" {
		s.band = sectiontrack.DefaultBand()
	} else {
		band, err := sectiontrack.ParseRootMargin(s.Tracking.RootMargin)
		if err != nil {
			return fmt.Errorf("site config: tracking: %w", err)
		}
		s.band = band
	}
	for _, th := range s.Tracking.Thresholds {
		if th < 0 || th > 1 {
			return fmt.Errorf("site config: threshold %v outside [0, 1]", th)
		}
	}
	return nil
}

// SectionIDs lists the tracked section ids in navigation order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, len(s.Nav))
	for i, l := range s.Nav {
		ids[i] = l.ID
	}
	return ids
}

// Band is the parsed detection band.
func (s *Site) Band() sectiontrack.Band { return s.band }

// TrackerConfig builds the section tracker configuration for this site.
func (s *Site) TrackerConfig(viewport sectiontrack.Viewport) sectiontrack.Config {
	band := s.band
	return sectiontrack.Config{
		IDs:        s.SectionIDs(),
		Band:       &band,
		Thresholds: s.Tracking.Thresholds,
		Viewport:   viewport,
	}
}
