//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/kritikpaudel/portfolio/sectiontrack"
)

// Document is the page document. It resolves section ids for the tracker.
type Document struct {
	v js.Value
}

func NewDocument() Document {
	return Document{v: js.Global().Get("document")}
}

func (d Document) ByID(id string) (*Element, bool) {
	return wrap(d.v.Call("getElementById", id))
}

func (d Document) Resolve(id string) (sectiontrack.Region, bool) {
	el, ok := d.ByID(id)
	if !ok {
		return nil, false
	}
	return el, true
}

// Root is the <html> element.
func (d Document) Root() *Element {
	return &Element{v: d.v.Get("documentElement")}
}

// On listens for event on the whole document until release is called.
func (d Document) On(event string, fn func(Event)) (release func()) {
	return listen(d.v, event, fn, false)
}

// QueryAll returns every element matching selector, in document order.
func (d Document) QueryAll(selector string) []*Element {
	list := d.v.Call("querySelectorAll", selector)
	out := make([]*Element, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// Window is the browser window: the viewport for the tracker and the
// opener for mailto links.
type Window struct {
	v js.Value
}

func NewWindow() Window {
	return Window{v: js.Global()}
}

func (w Window) Height() float64 { return w.v.Get("innerHeight").Float() }

// ReducedMotion reports the prefers-reduced-motion media query.
func (w Window) ReducedMotion() bool {
	mm := w.v.Get("matchMedia")
	if mm.IsUndefined() {
		return false
	}
	return w.v.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
}

// Open navigates the window, which hands mailto links to the mail client.
func (w Window) Open(url string) error {
	w.v.Get("location").Set("href", url)
	return nil
}

func (w Window) On(event string, fn func(Event)) (release func()) {
	return listen(w.v, event, fn, true)
}

// OnViewportChange calls fn after every scroll or resize.
func (w Window) OnViewportChange(fn func()) (release func()) {
	onScroll := listen(w.v, "scroll", func(Event) { fn() }, true)
	onResize := listen(w.v, "resize", func(Event) { fn() }, true)
	return func() {
		onScroll()
		onResize()
	}
}
