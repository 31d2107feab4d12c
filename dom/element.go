//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/kritikpaudel/portfolio/motion"
	"github.com/kritikpaudel/portfolio/sectiontrack"
)

// Element wraps a DOM element. It satisfies sectiontrack.Region.
type Element struct {
	v js.Value
}

func wrap(v js.Value) (*Element, bool) {
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Element{v: v}, true
}

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) Bounds() sectiontrack.Rect {
	r := e.v.Call("getBoundingClientRect")
	return sectiontrack.Rect{Top: r.Get("top").Float(), Bottom: r.Get("bottom").Float()}
}

func (e *Element) Box() motion.Box {
	r := e.v.Call("getBoundingClientRect")
	return motion.Box{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) RemoveAttr(name string) { e.v.Call("removeAttribute", name) }

func (e *Element) SetText(s string) { e.v.Set("textContent", s) }

// Value is the current value of an input or textarea.
func (e *Element) Value() string { return e.v.Get("value").String() }

func (e *Element) SetDisabled(on bool) { e.v.Set("disabled", on) }

func (e *Element) ToggleClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

// SetStyle sets a style property; custom properties (--x) are allowed.
func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

// Style reads an inline style property.
func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

// Contains reports whether the event's target is the element or inside it.
func (e *Element) Contains(ev Event) bool {
	target := ev.v.Get("target")
	if target.IsNull() || target.IsUndefined() {
		return false
	}
	return e.v.Call("contains", target).Bool()
}

func (e *Element) Remove() { e.v.Call("remove") }

// ScrollIntoView brings the element to the top of the viewport.
func (e *Element) ScrollIntoView(smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	e.v.Call("scrollIntoView", map[string]any{"behavior": behavior, "block": "start"})
}

// Query returns the first descendant matching selector.
func (e *Element) Query(selector string) (*Element, bool) {
	return wrap(e.v.Call("querySelector", selector))
}

// On listens for event on the element until the returned func is called.
func (e *Element) On(event string, fn func(Event)) (release func()) {
	return listen(e.v, event, fn, false)
}
