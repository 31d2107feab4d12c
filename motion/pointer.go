package motion

import "math"

// Box is an element's bounding box in viewport pixels.
type Box struct {
	Left, Top, Width, Height float64
}

func (b Box) center() (x, y float64) {
	return b.Left + b.Width/2, b.Top + b.Height/2
}

// Magnetic pulls an element toward the pointer while it is near.
type Magnetic struct {
	Radius float64 // px from the centre where the pull fades to zero
	Max    float64 // px of offset at full pull
}

// DefaultMagnetic matches the buttons on the page.
func DefaultMagnetic() Magnetic { return Magnetic{Radius: 60, Max: 10} }

// Offset is the translation for a pointer at (px, py). The pull falls off
// linearly with distance from the element centre.
func (m Magnetic) Offset(b Box, px, py float64) (x, y float64) {
	if b.Width <= 0 || b.Height <= 0 || m.Radius <= 0 {
		return 0, 0
	}
	cx, cy := b.center()
	dx, dy := px-cx, py-cy
	pull := math.Max(0, 1-math.Hypot(dx, dy)/m.Radius)
	return dx / b.Width * m.Max * pull, dy / b.Height * m.Max * pull
}

// PointerType mirrors PointerEvent.pointerType.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)

// TiltState is the transform and glow position of a tilt card.
type TiltState struct {
	RotateX float64 // degrees
	RotateY float64 // degrees
	Scale   float64
	GlowX   float64 // percent across the card
	GlowY   float64 // percent down the card
}

// Resting is the card with no pointer over it.
var Resting = TiltState{Scale: 1, GlowX: 50, GlowY: 50}

// Tilt rotates a card toward the pointer.
type Tilt struct {
	MaxTilt       float64 // degrees at the card edge
	ReducedMotion bool
}

func DefaultTilt() Tilt { return Tilt{MaxTilt: 12} }

// Move returns the card state for a pointer at (px, py). ok is false when
// the move should be ignored: touch and pen pointers, reduced motion, or a
// card with no size.
func (t Tilt) Move(b Box, px, py float64, pointer PointerType) (s TiltState, ok bool) {
	if t.ReducedMotion || pointer != PointerMouse || b.Width <= 0 || b.Height <= 0 {
		return TiltState{}, false
	}
	fx := (px - b.Left) / b.Width
	fy := (py - b.Top) / b.Height
	return TiltState{
		RotateX: -(fy - 0.5) * 2 * t.MaxTilt,
		RotateY: (fx - 0.5) * 2 * t.MaxTilt,
		Scale:   1.02,
		GlowX:   fx * 100,
		GlowY:   fy * 100,
	}, true
}

// Spotlight is the soft glow that follows the cursor.
type Spotlight struct {
	Size          float64
	ReducedMotion bool
}

func DefaultSpotlight() Spotlight { return Spotlight{Size: 320} }

// Enabled reports whether the spotlight should be drawn at all.
func (s Spotlight) Enabled() bool { return !s.ReducedMotion && s.Size > 0 }

// Position is the top-left corner that centres the spotlight on the pointer.
func (s Spotlight) Position(px, py float64) (left, top float64) {
	return px - s.Size/2, py - s.Size/2
}
