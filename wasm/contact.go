//go:build js && wasm

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/kritikpaudel/portfolio/contact"
	"github.com/kritikpaudel/portfolio/dom"
	"github.com/kritikpaudel/portfolio/site"
)

const (
	toastTime   = 1800 * time.Millisecond
	submitLabel = "Send message"
	busyLabel   = "Sending…"
)

type contactForm struct {
	form    *dom.Element
	inputs  map[string]*dom.Element
	errors  map[string]*dom.Element
	trap    *dom.Element
	counter *dom.Element
	submit  *dom.Element
	touched contact.Touched
}

// setBusy disables the submit button and swaps its label while a
// submission is in flight.
func (f *contactForm) setBusy(on bool) {
	if f.submit == nil {
		return
	}
	f.submit.SetDisabled(on)
	if on {
		f.submit.SetText(busyLabel)
	} else {
		f.submit.SetText(submitLabel)
	}
}

func (f *contactForm) read() contact.Form {
	v := func(el *dom.Element) string {
		if el == nil {
			return ""
		}
		return el.Value()
	}
	return contact.Form{
		Name:    v(f.inputs["name"]),
		Email:   v(f.inputs["email"]),
		Subject: v(f.inputs["subject"]),
		Message: v(f.inputs["message"]),
		Trap:    v(f.trap),
	}
}

// render shows the errors of touched fields and the message counter.
func (f *contactForm) render() {
	form := f.read()
	err := form.Validate()
	for _, name := range contact.Fields {
		msg := f.touched.Visible(err, name)
		if el := f.errors[name]; el != nil {
			el.SetText(msg)
		}
		if in := f.inputs[name]; in != nil {
			in.ToggleClass("invalid", msg != "")
		}
	}
	if f.counter != nil {
		f.counter.SetText(fmt.Sprintf("%d/%d", utf8.RuneCountInString(form.Message), contact.MaxMessage))
	}
}

func mountContact(ctx context.Context, doc dom.Document, win dom.Window, s *site.Site, logger *slog.Logger) (teardown func()) {
	formEl, ok := doc.ByID("contact-form")
	if !ok {
		return func() {}
	}

	f := &contactForm{
		form:    formEl,
		inputs:  make(map[string]*dom.Element),
		errors:  make(map[string]*dom.Element),
		touched: contact.Touched{},
	}
	for _, name := range contact.Fields {
		if el, ok := formEl.Query(fmt.Sprintf("[name=%q]", name)); ok {
			f.inputs[name] = el
		}
		if el, ok := formEl.Query(fmt.Sprintf("[data-error-for=%q]", name)); ok {
			f.errors[name] = el
		}
	}
	f.trap, _ = formEl.Query(`[name="website"]`)
	f.counter, _ = doc.ByID("message-count")
	f.submit, _ = formEl.Query(`[type="submit"]`)

	sender := &contact.Sender{
		To:        s.Email,
		Clipboard: dom.Clipboard{},
		Opener:    win,
		Toast:     newToast(doc),
		Logger:    logger,
	}

	var releases []func()
	for name, in := range f.inputs {
		releases = append(releases,
			in.On("blur", func(dom.Event) {
				f.touched[name] = true
				f.render()
			}),
			in.On("input", func(dom.Event) { f.render() }),
		)
	}

	releases = append(releases, formEl.On("submit", func(e dom.Event) {
		e.PreventDefault()
		form := f.read()
		if form.Trap != "" {
			return
		}
		f.touched.TouchAll()
		f.render()
		if form.Validate() != nil || sender.Busy() {
			return
		}

		f.setBusy(true)
		go func() {
			err := sender.Submit(ctx, form)
			f.setBusy(false)
			switch {
			case err == nil, errors.Is(err, contact.ErrTrapped), errors.Is(err, context.Canceled):
			default:
				logger.Warn("contact form submission", "error", err)
			}
		}()
	}))

	if btn, ok := doc.ByID("copy-message"); ok {
		releases = append(releases, btn.On("click", func(dom.Event) {
			form := f.read()
			go sender.Copy(ctx, form)
		}))
	}

	f.render()
	return func() {
		for _, release := range releases {
			release()
		}
	}
}

// newToast shows short notices in #toast, each replacing the last.
func newToast(doc dom.Document) func(string) {
	el, ok := doc.ByID("toast")
	if !ok {
		return nil
	}
	var mu sync.Mutex
	var gen int
	return func(msg string) {
		mu.Lock()
		gen++
		mine := gen
		mu.Unlock()

		el.SetText(msg)
		el.ToggleClass("show", true)
		time.AfterFunc(toastTime, func() {
			mu.Lock()
			defer mu.Unlock()
			if gen == mine {
				el.ToggleClass("show", false)
			}
		})
	}
}
