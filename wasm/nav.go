//go:build js && wasm

package main

import (
	"log/slog"

	"github.com/kritikpaudel/portfolio/dom"
	"github.com/kritikpaudel/portfolio/menu"
	"github.com/kritikpaudel/portfolio/sectiontrack"
	"github.com/kritikpaudel/portfolio/site"
)

// mountNav highlights the links of the active section and scrolls smoothly
// to a section when one of its links is clicked. The desktop bar and the
// mobile drawer both carry links, so an id can map to several elements.
func mountNav(doc dom.Document, win dom.Window, s *site.Site, reduced bool, logger *slog.Logger) (teardown func()) {
	links := make(map[string][]*dom.Element)
	for _, el := range doc.QueryAll("a[data-nav]") {
		id := el.Attr("data-nav")
		links[id] = append(links[id], el)
	}

	var observer sectiontrack.Observer = dom.IntersectionObserver{}
	var scroll *sectiontrack.ScrollObserver
	releaseScroll := func() {}
	if !dom.IntersectionObserverSupported() {
		logger.Info("no IntersectionObserver, tracking sections from scroll events")
		scroll = sectiontrack.NewScrollObserver(win)
		observer = scroll
		releaseScroll = win.OnViewportChange(scroll.Refresh)
	}

	cfg := s.TrackerConfig(win)
	cfg.Logger = logger
	tracker := sectiontrack.New(cfg, doc, observer)
	tracker.Subscribe(func(active string) {
		for id, els := range links {
			for _, el := range els {
				el.ToggleClass("active", id == active)
				if v := menu.AriaCurrent(id == active); v != "" {
					el.SetAttr("aria-current", v)
				} else {
					el.RemoveAttr("aria-current")
				}
			}
		}
	})
	if scroll != nil {
		scroll.Refresh()
	}

	drawer := menu.NewDrawer()
	releases := []func(){mountDrawer(doc, drawer)}
	for id, els := range links {
		target, ok := doc.ByID(id)
		if !ok {
			continue
		}
		for _, link := range els {
			releases = append(releases, link.On("click", func(e dom.Event) {
				e.PreventDefault()
				drawer.Close()
				target.ScrollIntoView(!reduced)
			}))
		}
	}

	return func() {
		tracker.Close()
		releaseScroll()
		for _, release := range releases {
			release()
		}
	}
}

// mountDrawer wires the mobile menu: the toggle and close buttons, Escape,
// presses outside the panel, and the page scroll lock while it is open.
func mountDrawer(doc dom.Document, drawer *menu.Drawer) (teardown func()) {
	toggle, ok := doc.ByID("menu-toggle")
	if !ok {
		return func() {}
	}
	overlay, _ := doc.ByID("menu-drawer")
	panel, _ := doc.ByID("menu-panel")
	root := doc.Root()

	var lock menu.ScrollLock
	unsubscribe := drawer.Subscribe(func(open bool) {
		toggle.SetAttr("aria-expanded", boolAttr(open))
		if open {
			toggle.SetAttr("aria-label", "Close menu")
		} else {
			toggle.SetAttr("aria-label", "Open menu")
		}
		if overlay != nil {
			overlay.ToggleClass("open", open)
		}
		root.SetStyle("overflow", lock.Apply(open, root.Style("overflow")))
	})

	releases := []func(){
		unsubscribe,
		toggle.On("click", func(dom.Event) { drawer.Toggle() }),
		doc.On("keydown", func(e dom.Event) { drawer.Key(e.Key()) }),
		doc.On("mousedown", func(e dom.Event) {
			if toggle.Contains(e) {
				return
			}
			drawer.PointerDown(panel != nil && panel.Contains(e))
		}),
	}
	if closeBtn, ok := doc.ByID("menu-close"); ok {
		releases = append(releases, closeBtn.On("click", func(dom.Event) { drawer.Close() }))
	}

	return func() {
		drawer.Close()
		for _, release := range releases {
			release()
		}
	}
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
