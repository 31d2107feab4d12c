// Package motion computes the small pointer and text effects of the page.
// Nothing here touches the browser: callers pass in pointer positions,
// element boxes and the reduced-motion preference, and apply the results.
package motion

import (
	"context"
	"time"
)

// TypewriterConfig tunes a Typewriter. Zero durations take the defaults.
type TypewriterConfig struct {
	Words         []string
	TypingSpeed   time.Duration // per rune while typing
	DeletingSpeed time.Duration // per rune while deleting
	Hold          time.Duration // full word on screen before deleting
	Gap           time.Duration // empty before the next word
	// NoLoop stops on the last word once it is fully typed.
	NoLoop bool
	// ReducedMotion swaps whole words every Hold instead of typing.
	ReducedMotion bool
}

func (c *TypewriterConfig) defaults() {
	if c.TypingSpeed == 0 {
		c.TypingSpeed = 90 * time.Millisecond
	}
	if c.DeletingSpeed == 0 {
		c.DeletingSpeed = 50 * time.Millisecond
	}
	if c.Hold == 0 {
		c.Hold = 1200 * time.Millisecond
	}
	if c.Gap == 0 {
		c.Gap = 400 * time.Millisecond
	}
}

// Typewriter types words out rune by rune, holds them, deletes them and
// moves on to the next.
type Typewriter struct {
	cfg      TypewriterConfig
	words    [][]rune
	word     int
	n        int
	deleting bool
	done     bool
}

func NewTypewriter(cfg TypewriterConfig) *Typewriter {
	cfg.defaults()
	t := &Typewriter{cfg: cfg}
	for _, w := range cfg.Words {
		t.words = append(t.words, []rune(w))
	}
	if len(t.words) == 0 {
		t.done = true
	}
	return t
}

// Text is what should be on screen now.
func (t *Typewriter) Text() string {
	if len(t.words) == 0 {
		return ""
	}
	w := t.words[t.word]
	if t.cfg.ReducedMotion {
		return string(w)
	}
	return string(w[:t.n])
}

// Done reports whether the typewriter has nothing more to show.
func (t *Typewriter) Done() bool { return t.done }

// Delay is how long the current frame stays up before Advance.
func (t *Typewriter) Delay() time.Duration {
	if len(t.words) == 0 {
		return 0
	}
	if t.cfg.ReducedMotion {
		return t.cfg.Hold
	}
	w := t.words[t.word]
	switch {
	case !t.deleting && t.n < len(w):
		return t.cfg.TypingSpeed
	case !t.deleting:
		return t.cfg.Hold
	case t.n > 0:
		return t.cfg.DeletingSpeed
	default:
		return t.cfg.Gap
	}
}

// Advance moves to the next frame.
func (t *Typewriter) Advance() {
	if t.done {
		return
	}
	last := t.word == len(t.words)-1
	if t.cfg.ReducedMotion {
		if last && t.cfg.NoLoop {
			t.done = true
			return
		}
		t.word = (t.word + 1) % len(t.words)
		return
	}

	w := t.words[t.word]
	switch {
	case !t.deleting && t.n < len(w):
		t.n++
		if t.n == len(w) && last && t.cfg.NoLoop {
			t.done = true
		}
	case !t.deleting:
		if last && t.cfg.NoLoop {
			t.done = true
			return
		}
		t.deleting = true
	case t.n > 0:
		t.n--
	default:
		t.word = (t.word + 1) % len(t.words)
		t.deleting = false
	}
}

// Run renders every frame until ctx ends or the typewriter is done.
func (t *Typewriter) Run(ctx context.Context, render func(string)) {
	render(t.Text())
	for !t.done {
		timer := time.NewTimer(t.Delay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		t.Advance()
		render(t.Text())
	}
}
