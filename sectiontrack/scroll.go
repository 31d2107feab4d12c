package sectiontrack

import (
	"sort"
	"sync"
)

// ScrollObserver is an Observer computed from region bounds on demand.
// The host calls Refresh after every scroll or resize; each subscription
// then receives the regions whose intersecting flag or threshold bucket
// changed since the previous refresh. The first refresh after Subscribe
// reports every region.
type ScrollObserver struct {
	viewport Viewport

	mu   sync.Mutex
	subs map[*scrollSub]struct{}
}

type scrollSub struct {
	regions    []Region
	band       Band
	thresholds []float64
	notify     func([]Entry)
	last       []regionState

	// guards delivery so unsubscribe can wait out a batch in flight
	mu     sync.Mutex
	closed bool
}

type regionState struct {
	seen         bool
	intersecting bool
	bucket       int
}

// NewScrollObserver returns an observer measuring against viewport.
func NewScrollObserver(viewport Viewport) *ScrollObserver {
	return &ScrollObserver{
		viewport: viewport,
		subs:     make(map[*scrollSub]struct{}),
	}
}

func (o *ScrollObserver) Subscribe(regions []Region, band Band, thresholds []float64, notify func([]Entry)) func() {
	ts := append([]float64(nil), thresholds...)
	sort.Float64s(ts)
	sub := &scrollSub{
		regions:    append([]Region(nil), regions...),
		band:       band,
		thresholds: ts,
		notify:     notify,
		last:       make([]regionState, len(regions)),
	}

	o.mu.Lock()
	o.subs[sub] = struct{}{}
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, sub)
		o.mu.Unlock()

		sub.mu.Lock()
		sub.closed = true
		sub.regions = nil
		sub.mu.Unlock()
	}
}

// Refresh measures every subscribed region and delivers the changes.
func (o *ScrollObserver) Refresh() {
	o.mu.Lock()
	subs := make([]*scrollSub, 0, len(o.subs))
	for s := range o.subs {
		subs = append(subs, s)
	}
	o.mu.Unlock()

	height := o.viewport.Height()
	for _, s := range subs {
		s.refresh(height)
	}
}

func (s *scrollSub) refresh(viewportHeight float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	band := s.band.Bounds(viewportHeight)
	var batch []Entry
	for i, r := range s.regions {
		intersecting, ratio := intersect(r.Bounds(), band)
		st := regionState{seen: true, intersecting: intersecting, bucket: s.bucket(intersecting, ratio)}
		if st == s.last[i] {
			continue
		}
		s.last[i] = st
		batch = append(batch, Entry{Region: r, Intersecting: intersecting, Ratio: ratio})
	}
	if len(batch) > 0 {
		s.notify(batch)
	}
}

// bucket is the index of the first threshold above ratio, or 0 when the
// region is outside the band.
func (s *scrollSub) bucket(intersecting bool, ratio float64) int {
	if !intersecting {
		return 0
	}
	return sort.Search(len(s.thresholds), func(i int) bool { return s.thresholds[i] > ratio })
}
