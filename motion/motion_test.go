package motion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frames advances tw n times, collecting the text after each step.
func frames(tw *Typewriter, n int) []string {
	out := []string{tw.Text()}
	for i := 0; i < n; i++ {
		tw.Advance()
		out = append(out, tw.Text())
	}
	return out
}

func TestTypewriterCycle(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"ab", "c"}})

	// Type, hold, delete, gap, then the next word, looping back to the first.
	assert.Equal(t, []string{
		"", "a", "ab", "ab", "a", "", "",
		"c", "c", "", "",
		"a",
	}, frames(tw, 11))
	assert.False(t, tw.Done())
}

func TestTypewriterDelays(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"ab"}})

	var got []time.Duration
	for i := 0; i < 6; i++ {
		got = append(got, tw.Delay())
		tw.Advance()
	}
	ms := time.Millisecond
	assert.Equal(t, []time.Duration{90 * ms, 90 * ms, 1200 * ms, 50 * ms, 50 * ms, 400 * ms}, got)
}

func TestTypewriterNoLoopStopsOnLastWord(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"a", "bc"}, NoLoop: true})

	for i := 0; i < 20 && !tw.Done(); i++ {
		tw.Advance()
	}
	require.True(t, tw.Done())
	assert.Equal(t, "bc", tw.Text())

	tw.Advance()
	assert.Equal(t, "bc", tw.Text())
}

func TestTypewriterRunes(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"héllo"}})
	assert.Equal(t, []string{"", "h", "hé", "hél"}, frames(tw, 3))
}

func TestTypewriterReducedMotion(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"one", "two"}, ReducedMotion: true})

	assert.Equal(t, 1200*time.Millisecond, tw.Delay())
	assert.Equal(t, []string{"one", "two", "one"}, frames(tw, 2))
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{})
	assert.True(t, tw.Done())
	assert.Equal(t, "", tw.Text())
	assert.Zero(t, tw.Delay())

	calls := 0
	tw.Run(context.Background(), func(string) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestTypewriterRun(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{
		Words:         []string{"hi"},
		TypingSpeed:   time.Microsecond,
		DeletingSpeed: time.Microsecond,
		Hold:          time.Microsecond,
		Gap:           time.Microsecond,
		NoLoop:        true,
	})

	var seen []string
	tw.Run(context.Background(), func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"", "h", "hi"}, seen)
}

func TestTypewriterRunStopsOnCancel(t *testing.T) {
	tw := NewTypewriter(TypewriterConfig{Words: []string{"hi"}, TypingSpeed: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tw.Run(ctx, func(string) {})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMagneticOffset(t *testing.T) {
	m := DefaultMagnetic()
	b := Box{Left: 100, Top: 100, Width: 40, Height: 20}

	x, y := m.Offset(b, 120, 110)
	assert.Zero(t, x)
	assert.Zero(t, y)

	// 30px right of centre: pull is 0.5.
	x, y = m.Offset(b, 150, 110)
	assert.InDelta(t, 30.0/40*10*0.5, x, 1e-9)
	assert.Zero(t, y)

	x, y = m.Offset(b, 500, 500)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = m.Offset(Box{}, 1, 1)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTiltMove(t *testing.T) {
	tilt := DefaultTilt()
	b := Box{Left: 0, Top: 0, Width: 200, Height: 100}

	s, ok := tilt.Move(b, 200, 0, PointerMouse)
	require.True(t, ok)
	assert.InDelta(t, 12, s.RotateY, 1e-9)
	assert.InDelta(t, 12, s.RotateX, 1e-9)
	assert.Equal(t, 1.02, s.Scale)
	assert.InDelta(t, 100, s.GlowX, 1e-9)
	assert.InDelta(t, 0, s.GlowY, 1e-9)

	s, ok = tilt.Move(b, 100, 50, PointerMouse)
	require.True(t, ok)
	assert.InDelta(t, 0, s.RotateX, 1e-9)
	assert.InDelta(t, 0, s.RotateY, 1e-9)

	_, ok = tilt.Move(b, 10, 10, PointerTouch)
	assert.False(t, ok)

	tilt.ReducedMotion = true
	_, ok = tilt.Move(b, 10, 10, PointerMouse)
	assert.False(t, ok)

	assert.Equal(t, TiltState{Scale: 1, GlowX: 50, GlowY: 50}, Resting)
}

func TestSpotlight(t *testing.T) {
	s := DefaultSpotlight()
	assert.True(t, s.Enabled())

	left, top := s.Position(500, 300)
	assert.Equal(t, 340.0, left)
	assert.Equal(t, 140.0, top)

	s.ReducedMotion = true
	assert.False(t, s.Enabled())
}
