package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritikpaudel/portfolio/sectiontrack"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "about", "work", "contact"}, s.SectionIDs())
	assert.Equal(t, "#about", s.Nav[1].Href())
	assert.NotEmpty(t, s.Email)
	assert.Len(t, s.Brand.Words, 3)

	band := s.Band()
	assert.InDelta(t, 0.40, band.Top, 1e-9)
	assert.InDelta(t, 0.55, band.Bottom, 1e-9)

	cfg := s.TrackerConfig(sectiontrack.FixedViewport(900))
	assert.Equal(t, s.SectionIDs(), cfg.IDs)
	assert.Equal(t, []float64{0, 0.2, 0.5, 0.8, 1}, cfg.Thresholds)
	assert.Equal(t, 900.0, cfg.Viewport.Height())
	require.NotNil(t, cfg.Band)
	assert.Equal(t, s.Band(), *cfg.Band)
}

func TestTrackerConfigZeroMargin(t *testing.T) {
	s, err := Load([]byte("nav:\n  - id: home\ntracking:\n  root_margin: 0px\n"))
	require.NoError(t, err)

	cfg := s.TrackerConfig(nil)
	require.NotNil(t, cfg.Band)
	assert.Equal(t, sectiontrack.Band{}, *cfg.Band)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "minimal", yaml: "nav:\n  - id: home\n"},
		{name: "no nav", yaml: "owner: x\n", wantErr: "at least one link"},
		{name: "blank id", yaml: "nav:\n  - id: ' '\n", wantErr: "has no id"},
		{name: "duplicate id", yaml: "nav:\n  - id: a\n  - id: a\n", wantErr: "duplicate nav id"},
		{name: "bad margin", yaml: "nav:\n  - id: a\ntracking:\n  root_margin: 40px\n", wantErr: "tracking"},
		{name: "bad threshold", yaml: "nav:\n  - id: a\ntracking:\n  thresholds: [1.5]\n", wantErr: "outside [0, 1]"},
		{name: "not yaml", yaml: "nav: [", wantErr: "parsing site config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sectiontrack.DefaultBand(), s.Band())
		})
	}
}
