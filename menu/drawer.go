// Package menu holds navigation menu state: the mobile drawer and the
// marking of the current link.
package menu

import "github.com/kritikpaudel/portfolio/reactive"

// EscapeKey is the KeyboardEvent.key value that closes the drawer.
const EscapeKey = "Escape"

// AriaCurrent is the aria-current value for a nav link, empty when the
// attribute should be removed.
func AriaCurrent(active bool) string {
	if active {
		return "page"
	}
	return ""
}

// Drawer is the mobile navigation drawer. It starts closed.
type Drawer struct {
	open *reactive.Value[bool]
}

func NewDrawer() *Drawer {
	d := &Drawer{open: reactive.NewValue[bool]()}
	d.open.Set(false)
	return d
}

func (d *Drawer) IsOpen() bool {
	open, _ := d.open.Get()
	return open
}

// Subscribe calls fn each time the drawer opens or closes.
func (d *Drawer) Subscribe(fn func(open bool)) (unsubscribe func()) {
	return d.open.Subscribe(fn)
}

func (d *Drawer) Toggle() { d.open.Set(!d.IsOpen()) }

func (d *Drawer) Close() { d.open.Set(false) }

// Key closes the drawer on Escape.
func (d *Drawer) Key(key string) {
	if key == EscapeKey {
		d.Close()
	}
}

// PointerDown closes the drawer when a press lands outside its panel.
func (d *Drawer) PointerDown(insidePanel bool) {
	if d.IsOpen() && !insidePanel {
		d.Close()
	}
}

// ScrollLock keeps the page from scrolling behind the open drawer and puts
// the previous overflow value back when it closes.
type ScrollLock struct {
	locked bool
	prev   string
}

// Apply returns the overflow value the root element should have after the
// drawer moves to open, given its current value.
func (l *ScrollLock) Apply(open bool, current string) string {
	switch {
	case open && !l.locked:
		l.locked, l.prev = true, current
		return "hidden"
	case !open && l.locked:
		l.locked = false
		return l.prev
	}
	return current
}
