package sectiontrack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultThresholds are the intersection ratios at which observers report.
var DefaultThresholds = []float64{0, 0.2, 0.5, 0.8, 1}

// Rect is the vertical extent of a region in viewport coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Band is the detection window of the viewport, expressed as margins
// cut from the top and bottom edges as fractions of the viewport height.
type Band struct {
	Top    float64
	Bottom float64
}

// DefaultBand starts detection 40% down from the top and stops 55% up
// from the bottom.
func DefaultBand() Band {
	return Band{Top: 0.40, Bottom: 0.55}
}

// Bounds returns the band in viewport coordinates for the given height.
// A band whose margins overlap collapses to a zero-height line.
func (b Band) Bounds(viewportHeight float64) Rect {
	top := viewportHeight * b.Top
	bottom := viewportHeight * (1 - b.Bottom)
	if bottom < top {
		bottom = top
	}
	return Rect{Top: top, Bottom: bottom}
}

// RootMargin formats the band as a CSS root margin, the form the
// browser's IntersectionObserver expects.
func (b Band) RootMargin() string {
	return fmt.Sprintf("%s 0px %s 0px", percent(-b.Top), percent(-b.Bottom))
}

func percent(f float64) string {
	v := math.Round(f*10000) / 100
	if v == 0 {
		return "0px"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ParseRootMargin reads a CSS root margin such as "-40% 0px -55% 0px".
// Only the vertical components are kept, and they must be percentages.
func ParseRootMargin(s string) (Band, error) {
	parts := strings.Fields(s)
	var top, bottom string
	switch len(parts) {
	case 1:
		top, bottom = parts[0], parts[0]
	case 2, 3:
		top = parts[0]
		bottom = parts[0]
		if len(parts) == 3 {
			bottom = parts[2]
		}
	case 4:
		top, bottom = parts[0], parts[2]
	default:
		return Band{}, fmt.Errorf("root margin %q: want 1 to 4 components", s)
	}

	t, err := parseMargin(top)
	if err != nil {
		return Band{}, fmt.Errorf("root margin %q: %w", s, err)
	}
	b, err := parseMargin(bottom)
	if err != nil {
		return Band{}, fmt.Errorf("root margin %q: %w", s, err)
	}
	// Negative margins shrink the root; the band keeps them as positive cuts.
	band := Band{Top: -t, Bottom: -b}
	if band.Top < 0 || band.Bottom < 0 || band.Top+band.Bottom > 1 {
		return Band{}, fmt.Errorf("root margin %q: band falls outside the viewport", s)
	}
	return band, nil
}

func parseMargin(v string) (float64, error) {
	if v == "0" || v == "0px" {
		return 0, nil
	}
	num, ok := strings.CutSuffix(v, "%")
	if !ok {
		return 0, fmt.Errorf("margin %q is not a percentage", v)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("margin %q: %w", v, err)
	}
	return f / 100, nil
}

// intersect computes how much of r lies inside band. A region touching
// the band edge counts as intersecting, matching the browser observer.
func intersect(r, band Rect) (intersecting bool, ratio float64) {
	top := max(r.Top, band.Top)
	bottom := min(r.Bottom, band.Bottom)
	if bottom < top {
		return false, 0
	}
	h := r.Height()
	if h <= 0 {
		return true, 1
	}
	return true, min((bottom-top)/h, 1)
}
