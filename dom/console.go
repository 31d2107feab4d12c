//go:build js && wasm

package dom

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"syscall/js"
)

// ConsoleHandler is a slog.Handler that writes text records to the browser
// console, picking console.debug/log/warn/error by level.
type ConsoleHandler struct {
	h   slog.Handler
	buf *bytes.Buffer
	mu  *sync.Mutex
}

func NewConsoleHandler(opts *slog.HandlerOptions) *ConsoleHandler {
	buf := new(bytes.Buffer)
	return &ConsoleHandler{h: slog.NewTextHandler(buf, opts), buf: buf, mu: new(sync.Mutex)}
}

func (c *ConsoleHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return c.h.Enabled(ctx, l)
}

func (c *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
	if err := c.h.Handle(ctx, r); err != nil {
		return err
	}

	method := "log"
	switch {
	case r.Level >= slog.LevelError:
		method = "error"
	case r.Level >= slog.LevelWarn:
		method = "warn"
	case r.Level < slog.LevelInfo:
		method = "debug"
	}
	js.Global().Get("console").Call(method, strings.TrimRight(c.buf.String(), "\n"))
	return nil
}

func (c *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{h: c.h.WithAttrs(attrs), buf: c.buf, mu: c.mu}
}

func (c *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{h: c.h.WithGroup(name), buf: c.buf, mu: c.mu}
}
