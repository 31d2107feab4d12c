//go:build js && wasm

package dom

import (
	"sync"
	"syscall/js"

	"github.com/kritikpaudel/portfolio/sectiontrack"
)

// IntersectionObserverSupported reports whether the browser has a native
// IntersectionObserver.
func IntersectionObserverSupported() bool {
	return !js.Global().Get("IntersectionObserver").IsUndefined()
}

// IntersectionObserver feeds the tracker from the browser's native
// IntersectionObserver. Regions must be *Element values; others are ignored.
type IntersectionObserver struct{}

func (IntersectionObserver) Subscribe(regions []sectiontrack.Region, band sectiontrack.Band, thresholds []float64, notify func([]sectiontrack.Entry)) func() {
	byID := make(map[string]sectiontrack.Region, len(regions))
	for _, r := range regions {
		byID[r.ID()] = r
	}

	var mu sync.Mutex
	closed := false
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		mu.Lock()
		defer mu.Unlock()
		if closed || len(args) == 0 {
			return nil
		}
		list := args[0]
		batch := make([]sectiontrack.Entry, 0, list.Length())
		for i := 0; i < list.Length(); i++ {
			e := list.Index(i)
			r, ok := byID[e.Get("target").Get("id").String()]
			if !ok {
				continue
			}
			batch = append(batch, sectiontrack.Entry{
				Region:       r,
				Intersecting: e.Get("isIntersecting").Bool(),
				Ratio:        e.Get("intersectionRatio").Float(),
			})
		}
		notify(batch)
		return nil
	})

	ts := make([]any, len(thresholds))
	for i, t := range thresholds {
		ts[i] = t
	}
	obs := js.Global().Get("IntersectionObserver").New(cb, map[string]any{
		"root":       nil,
		"rootMargin": band.RootMargin(),
		"threshold":  ts,
	})
	for _, r := range regions {
		if el, ok := r.(*Element); ok {
			obs.Call("observe", el.v)
		}
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		closed = true
		obs.Call("disconnect")
		cb.Release()
	}
}
