package contact

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

var (
	// ErrTrapped means the honeypot field was filled and the submission
	// was dropped without side effects.
	ErrTrapped = errors.New("contact: honeypot filled")

	// ErrBusy means a previous submission is still in progress.
	ErrBusy = errors.New("contact: submission in progress")

	// ErrNoClipboard means the Sender has no clipboard to copy to.
	ErrNoClipboard = errors.New("contact: no clipboard")
)

const DefaultOpenDelay = 600 * time.Millisecond

// Clipboard copies text for the visitor.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Opener navigates to a URL, typically handing mailto links to the OS.
type Opener interface {
	Open(url string) error
}

// Sender runs the copy-then-mailto flow.
type Sender struct {
	To        string
	Clipboard Clipboard
	Opener    Opener
	// OpenDelay is how long the "copied" notice stays up before the mail
	// client takes focus. Zero means DefaultOpenDelay.
	OpenDelay time.Duration
	// Toast shows a short notice to the visitor. Optional.
	Toast  func(msg string)
	Logger *slog.Logger

	busy atomic.Bool
}

// Busy reports whether a submission is in progress.
func (s *Sender) Busy() bool { return s.busy.Load() }

// Submit validates f, copies the message to the clipboard and opens the
// mailto link. Clipboard failures are logged and otherwise ignored.
func (s *Sender) Submit(ctx context.Context, f Form) error {
	if f.Trap != "" {
		return ErrTrapped
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	logger := s.logger()

	body := f.Body()
	if s.Clipboard != nil {
		if err := s.Clipboard.WriteText(ctx, body); err != nil {
			logger.Warn("copying message to clipboard", "error", err)
		} else {
			s.toast("Message copied to clipboard.")
		}
	}

	delay := s.OpenDelay
	if delay == 0 {
		delay = DefaultOpenDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if err := s.Opener.Open(MailtoURL(s.To, f.Subject, body)); err != nil {
		logger.Error("opening mail client", "error", err)
		return err
	}
	s.toast("Opening your email app…")
	logger.Info("contact message handed to mail client", "subject_len", len(f.Subject))
	return nil
}

// Copy puts the composed message on the clipboard without sending it, so
// visitors can paste it into a mail client of their choice. The form is
// not validated.
func (s *Sender) Copy(ctx context.Context, f Form) error {
	err := ErrNoClipboard
	if s.Clipboard != nil {
		err = s.Clipboard.WriteText(ctx, f.Body())
	}
	if err != nil {
		s.logger().Warn("copying message to clipboard", "error", err)
		s.toast("Copy failed.")
		return err
	}
	s.toast("Copied to clipboard.")
	return nil
}

func (s *Sender) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Sender) toast(msg string) {
	if s.Toast != nil {
		s.Toast(msg)
	}
}
