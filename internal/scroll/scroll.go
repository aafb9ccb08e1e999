// Package scroll turns raw vertical scroll positions into normalized
// progress values and the parallax transforms derived from them.
package scroll

import (
	"errors"

	"github.com/samber/lo"
)

var (
	ErrNotMounted = errors.New("scroll: reference element not mounted")
	ErrZeroSize   = errors.New("scroll: reference element has zero size")
)

// Geometry is the measured layout of a reference element. ReferenceTop is
// relative to the document, not the viewport.
type Geometry struct {
	ReferenceTop    float64
	ReferenceHeight float64
	ViewportHeight  float64
}

// Observation pairs measured geometry with the current global scroll offset.
type Observation struct {
	Geometry
	ScrollY float64
}

// Start is the scroll offset at which the reference element's top enters the
// viewport from below.
func (g Geometry) Start() float64 {
	return g.ReferenceTop - g.ViewportHeight
}

// End is the scroll offset at which the reference element has fully passed
// above the viewport.
func (g Geometry) End() float64 {
	return g.ReferenceTop + g.ReferenceHeight
}

// Valid reports whether the geometry can produce a meaningful progress.
func (g Geometry) Valid() bool {
	return g.ReferenceHeight > 0 && g.ViewportHeight > 0
}

// Progress maps ScrollY linearly from [Start, End] onto [0, 1].
func Progress(o Observation) float64 {
	span := o.ReferenceHeight + o.ViewportHeight
	if span <= 0 {
		return 0
	}
	return lo.Clamp((o.ScrollY-o.Start())/span, 0, 1)
}
