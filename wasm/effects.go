//go:build js && wasm

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kritikpaudel/portfolio/dom"
	"github.com/kritikpaudel/portfolio/motion"
	"github.com/kritikpaudel/portfolio/site"
)

func mountTypewriter(ctx context.Context, doc dom.Document, s *site.Site, reduced bool) (teardown func()) {
	el, ok := doc.ByID("brand-typewriter")
	if !ok || len(s.Brand.Words) == 0 {
		return func() {}
	}
	if s.Brand.MinCh > 0 {
		el.SetStyle("min-width", strconv.Itoa(s.Brand.MinCh)+"ch")
	}

	ctx, cancel := context.WithCancel(ctx)
	tw := motion.NewTypewriter(motion.TypewriterConfig{Words: s.Brand.Words, ReducedMotion: reduced})
	go tw.Run(ctx, el.SetText)
	return cancel
}

// mountEffects wires the cursor spotlight, magnetic buttons and tilt cards.
func mountEffects(doc dom.Document, win dom.Window, reduced bool) (teardown func()) {
	var releases []func()

	spot := motion.DefaultSpotlight()
	spot.ReducedMotion = reduced
	if el, ok := doc.ByID("spotlight"); ok && spot.Enabled() {
		releases = append(releases, win.On("pointermove", func(e dom.Event) {
			left, top := spot.Position(e.ClientX(), e.ClientY())
			el.SetStyle("left", px(left))
			el.SetStyle("top", px(top))
		}))
	}

	magnetic := motion.DefaultMagnetic()
	for _, el := range doc.QueryAll(".magnetic") {
		releases = append(releases,
			el.On("pointermove", func(e dom.Event) {
				x, y := magnetic.Offset(el.Box(), e.ClientX(), e.ClientY())
				el.SetStyle("transform", fmt.Sprintf("translate(%s, %s)", px(x), px(y)))
			}),
			el.On("pointerleave", func(dom.Event) {
				el.SetStyle("transform", "translate(0px, 0px)")
			}),
		)
	}

	tilt := motion.DefaultTilt()
	tilt.ReducedMotion = reduced
	for _, el := range doc.QueryAll(".tilt-card") {
		releases = append(releases,
			el.On("pointermove", func(e dom.Event) {
				if st, ok := tilt.Move(el.Box(), e.ClientX(), e.ClientY(), motion.PointerType(e.PointerType())); ok {
					applyTilt(el, st)
				}
			}),
			el.On("pointerleave", func(dom.Event) { applyTilt(el, motion.Resting) }),
		)
	}

	return func() {
		for _, release := range releases {
			release()
		}
	}
}

func applyTilt(el *dom.Element, st motion.TiltState) {
	el.SetStyle("transform", fmt.Sprintf("rotateX(%.2fdeg) rotateY(%.2fdeg) scale(%.3f)", st.RotateX, st.RotateY, st.Scale))
	el.SetStyle("--px", fmt.Sprintf("%.1f%%", st.GlowX))
	el.SetStyle("--py", fmt.Sprintf("%.1f%%", st.GlowY))
}

func px(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) + "px" }
