//go:build js && wasm

package dom

import (
	"sync"
	"syscall/js"
)

// Event wraps a DOM event.
type Event struct {
	v js.Value
}

func (e Event) PreventDefault() { e.v.Call("preventDefault") }

func (e Event) ClientX() float64 { return e.v.Get("clientX").Float() }

func (e Event) ClientY() float64 { return e.v.Get("clientY").Float() }

// Key is KeyboardEvent.key, such as "Escape".
func (e Event) Key() string {
	k := e.v.Get("key")
	if k.IsUndefined() {
		return ""
	}
	return k.String()
}

// PointerType is "mouse", "pen" or "touch" for pointer events.
func (e Event) PointerType() string {
	pt := e.v.Get("pointerType")
	if pt.IsUndefined() {
		return ""
	}
	return pt.String()
}

func listen(target js.Value, event string, fn func(Event), passive bool) (release func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(Event{v: args[0]})
		}
		return nil
	})
	opts := map[string]any{"passive": passive}
	target.Call("addEventListener", event, cb, opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb, opts)
			cb.Release()
		})
	}
}
