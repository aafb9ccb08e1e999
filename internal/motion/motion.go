// Package motion animates a scalar toward a target, either with a damped
// spring or, when the user prefers reduced motion, with a short tween.
package motion

import (
	"math"
	"time"
)

// Animator moves a value toward a target one frame at a time.
type Animator interface {
	// Snap places the value at x with no motion.
	Snap(x float64)
	// Retarget changes the destination, keeping the current value and velocity.
	Retarget(target float64)
	// Step advances the animation by dt and returns the new value.
	Step(dt time.Duration) float64
	Value() float64
	Done() bool
}

// For returns a spring unless reduced motion is requested.
func For(reduced bool) Animator {
	if reduced {
		return NewTween(DefaultTweenDuration)
	}
	return NewSpring(DefaultStiffness, DefaultDamping)
}

const (
	DefaultStiffness     = 500.0
	DefaultDamping       = 30.0
	DefaultTweenDuration = 300 * time.Millisecond

	restDelta = 0.01
	restSpeed = 0.01

	// larger frame gaps (background tabs) are integrated in slices of this
	maxSubstep = 8 * time.Millisecond
)

type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	x, v, target float64
}

func NewSpring(stiffness, damping float64) *Spring {
	return &Spring{Stiffness: stiffness, Damping: damping, Mass: 1}
}

func (s *Spring) Snap(x float64) {
	s.x, s.v, s.target = x, 0, x
}

func (s *Spring) Retarget(target float64) { s.target = target }

func (s *Spring) Step(dt time.Duration) float64 {
	for dt > 0 && !s.Done() {
		h := min(dt, maxSubstep)
		dt -= h
		sec := h.Seconds()

		force := -s.Stiffness*(s.x-s.target) - s.Damping*s.v
		s.v += force / s.Mass * sec
		s.x += s.v * sec
	}
	if s.Done() {
		s.x, s.v = s.target, 0
	}
	return s.x
}

func (s *Spring) Value() float64 { return s.x }

func (s *Spring) Done() bool {
	return math.Abs(s.x-s.target) < restDelta && math.Abs(s.v) < restSpeed
}

// Tween eases out from the value at the last Retarget to the target over a
// fixed duration.
type Tween struct {
	Duration time.Duration

	from, x, target float64
	elapsed         time.Duration
}

func NewTween(d time.Duration) *Tween {
	return &Tween{Duration: d}
}

func (t *Tween) Snap(x float64) {
	t.from, t.x, t.target = x, x, x
	t.elapsed = t.Duration
}

func (t *Tween) Retarget(target float64) {
	if target == t.target {
		return
	}
	t.from, t.target = t.x, target
	t.elapsed = 0
}

func (t *Tween) Step(dt time.Duration) float64 {
	t.elapsed = min(t.elapsed+dt, t.Duration)
	if t.Duration <= 0 {
		t.x = t.target
		return t.x
	}
	p := float64(t.elapsed) / float64(t.Duration)
	t.x = t.from + (t.target-t.from)*easeOut(p)
	return t.x
}

func (t *Tween) Value() float64 { return t.x }

func (t *Tween) Done() bool { return t.elapsed >= t.Duration }

func easeOut(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}
