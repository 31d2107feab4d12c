//go:build js && wasm

package dom

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var errNoClipboard = errors.New("clipboard API unavailable")

// Clipboard writes to the async clipboard API. WriteText blocks until the
// browser settles the promise, so call it off the event loop.
type Clipboard struct{}

func (Clipboard) WriteText(ctx context.Context, text string) error {
	clip := js.Global().Get("navigator").Get("clipboard")
	if clip.IsUndefined() {
		return errNoClipboard
	}

	done := make(chan error, 1)
	resolve := js.FuncOf(func(js.Value, []js.Value) any {
		done <- nil
		return nil
	})
	reject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := "rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done <- fmt.Errorf("clipboard: %s", reason)
		return nil
	})
	clip.Call("writeText", text).Call("then", resolve, reject)

	select {
	case err := <-done:
		resolve.Release()
		reject.Release()
		return err
	case <-ctx.Done():
		// The promise may still settle; the callbacks stay alive for it.
		return ctx.Err()
	}
}
