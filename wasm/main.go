//go:build js && wasm

// Command wasm is the browser side of the portfolio: it highlights the
// navigation link of the section in view, runs the pointer and text
// effects, and drives the contact form.
package main

import (
	"context"
	"log/slog"

	"github.com/kritikpaudel/portfolio/dom"
	"github.com/kritikpaudel/portfolio/site"
)

func main() {
	logger := slog.New(dom.NewConsoleHandler(&slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	doc := dom.NewDocument()
	win := dom.NewWindow()

	s, err := site.Default()
	if err != nil {
		logger.Error("loading site config", "error", err)
		removePreloader(doc)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	reduced := win.ReducedMotion()

	teardown := []func(){
		mountNav(doc, win, s, reduced, logger),
		mountTypewriter(ctx, doc, s, reduced),
		mountEffects(doc, win, reduced),
		mountContact(ctx, doc, win, s, logger),
	}
	removePreloader(doc)

	done := make(chan struct{})
	var releaseUnload func()
	releaseUnload = win.On("pagehide", func(dom.Event) {
		cancel()
		for _, fn := range teardown {
			fn()
		}
		releaseUnload()
		close(done)
	})
	logger.Info("portfolio ready", "sections", len(s.Nav), "reduced_motion", reduced)
	<-done
}

func removePreloader(doc dom.Document) {
	if el, ok := doc.ByID("preloader"); ok {
		el.Remove()
	}
}
