// Package sectiontrack decides which named page section is the active one,
// so the navigation bar can highlight the matching link.
//
// The tracker never touches the browser directly. Regions, the viewport and
// the intersection signal are all supplied through small interfaces, with
// ScrollObserver as a pure-Go observer for hosts without a native one.
package sectiontrack

import (
	"log/slog"
	"sync"

	"github.com/kritikpaudel/portfolio/reactive"
)

// Region is a named box on the page whose bounds move as the page scrolls.
type Region interface {
	ID() string
	Bounds() Rect
}

// Resolver looks up a region by identifier in the current page layout.
type Resolver interface {
	Resolve(id string) (Region, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(id string) (Region, bool)

func (f ResolverFunc) Resolve(id string) (Region, bool) { return f(id) }

// Viewport reports the current viewport height in CSS pixels.
type Viewport interface {
	Height() float64
}

// FixedViewport is a Viewport whose height never changes.
type FixedViewport float64

func (v FixedViewport) Height() float64 { return float64(v) }

// Entry is one region's intersection state in a notification batch.
type Entry struct {
	Region       Region
	Intersecting bool
	Ratio        float64
}

// Observer delivers batches of intersection changes for a set of regions.
// After unsubscribe returns, notify must not be called again.
type Observer interface {
	Subscribe(regions []Region, band Band, thresholds []float64, notify func([]Entry)) (unsubscribe func())
}

// Config configures a Tracker. A nil Band means DefaultBand, while a zero
// Band watches the whole viewport.
type Config struct {
	IDs        []string
	Band       *Band
	Thresholds []float64
	Viewport   Viewport
	Logger     *slog.Logger
}

// Tracker tracks the active region. Create one with New and release it
// with Close.
type Tracker struct {
	mu       sync.Mutex
	regions  []Region
	index    map[string]int
	viewport Viewport
	logger   *slog.Logger
	stop     func()
	closed   bool

	active *reactive.Value[string]
}

// New resolves cfg.IDs once and starts observing the regions found.
// Ids that do not resolve are skipped. When nothing resolves the tracker
// stays inactive for its whole life.
func New(cfg Config, resolver Resolver, observer Observer) *Tracker {
	band := DefaultBand()
	if cfg.Band != nil {
		band = *cfg.Band
	}
	if len(cfg.Thresholds) == 0 {
		cfg.Thresholds = DefaultThresholds
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	t := &Tracker{
		index:    make(map[string]int),
		viewport: cfg.Viewport,
		logger:   cfg.Logger,
		active:   reactive.NewValue[string](),
	}

	for _, id := range cfg.IDs {
		r, ok := resolver.Resolve(id)
		if !ok || r == nil {
			t.logger.Debug("section not found", "id", id)
			continue
		}
		if _, dup := t.index[id]; dup {
			continue
		}
		t.index[id] = len(t.regions)
		t.regions = append(t.regions, r)
	}
	if len(t.regions) == 0 {
		t.logger.Debug("no sections resolved, tracker inactive", "ids", len(cfg.IDs))
		return t
	}

	t.stop = observer.Subscribe(t.regions, band, cfg.Thresholds, t.handle)
	return t
}

// Active returns the active region id, or false before any selection.
func (t *Tracker) Active() (string, bool) {
	return t.active.Get()
}

// Subscribe calls fn with the new id every time the active region changes.
// fn runs on the observer's goroutine and may call Close.
func (t *Tracker) Subscribe(fn func(id string)) (unsubscribe func()) {
	return t.active.Subscribe(fn)
}

// Close stops observing and releases the regions. It is safe to call more
// than once, and no subscriber is notified after it returns.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	stop := t.stop
	t.stop = nil
	t.regions = nil
	t.index = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	t.active.Reset()
}

func (t *Tracker) handle(entries []Entry) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	id, ok := t.selectIntersecting(entries)
	if !ok {
		id, ok = t.selectPassed()
	}
	t.mu.Unlock()
	if !ok {
		return
	}

	// Unlocked, so subscribers may call Close.
	if t.active.Set(id) {
		t.logger.Debug("active section changed", "id", id)
	}
}

// selectIntersecting picks the intersecting entry with the highest ratio.
// Ties go to the region listed first.
func (t *Tracker) selectIntersecting(entries []Entry) (string, bool) {
	best, bestIdx := -1.0, -1
	var bestID string
	for _, e := range entries {
		if !e.Intersecting || e.Region == nil {
			continue
		}
		idx, known := t.index[e.Region.ID()]
		if !known {
			continue
		}
		if e.Ratio > best || (e.Ratio == best && idx < bestIdx) {
			best, bestIdx, bestID = e.Ratio, idx, e.Region.ID()
		}
	}
	return bestID, bestIdx >= 0
}

// selectPassed is the fallback for batches with nothing intersecting:
// the region whose top edge sits closest above the viewport midpoint,
// i.e. the section most recently scrolled past.
func (t *Tracker) selectPassed() (string, bool) {
	if t.viewport == nil {
		return "", false
	}
	mid := t.viewport.Height() * 0.5
	found := false
	var bestTop float64
	var bestID string
	for _, r := range t.regions {
		top := r.Bounds().Top
		if top > mid {
			continue
		}
		if !found || top > bestTop {
			found, bestTop, bestID = true, top, r.ID()
		}
	}
	return bestID, found
}
