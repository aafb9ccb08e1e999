package scroll

import (
	"errors"
	"sync"
)

// Measurer reads the live geometry of a reference element. It is called
// synchronously after layout.
type Measurer interface {
	Measure() (Geometry, error)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() (Geometry, error)

func (f MeasurerFunc) Measure() (Geometry, error) { return f() }

// Source delivers scroll and resize events. Each registration returns the
// function that removes it.
type Source interface {
	OnScroll(fn func(y float64)) (release func())
	OnResize(fn func()) (release func())
}

var ErrAttached = errors.New("scroll: tracker already attached")

// Tracker owns the measured geometry of one reference element and the
// listeners feeding it. A zero Tracker is not usable; call NewTracker.
type Tracker struct {
	measurer Measurer

	mu       sync.Mutex
	geom     Geometry
	measured bool
	scrollY  float64
	releases []func()
}

func NewTracker(m Measurer) *Tracker {
	return &Tracker{measurer: m}
}

// Measure re-reads the reference geometry. On failure the previous geometry
// is kept and the error is returned so the caller can retry on the next
// trigger.
func (t *Tracker) Measure() error {
	g, err := t.measurer.Measure()
	if err == nil && !g.Valid() {
		err = ErrZeroSize
	}
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.geom = g
	t.measured = true
	t.mu.Unlock()
	return nil
}

// Measured reports whether at least one measurement has succeeded.
func (t *Tracker) Measured() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.measured
}

func (t *Tracker) Geometry() Geometry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.geom
}

// Scroll records the global scroll offset and returns the resulting frame.
// Before the first successful measurement the frame is the zero-progress one.
func (t *Tracker) Scroll(y float64) Frame {
	t.mu.Lock()
	t.scrollY = y
	t.mu.Unlock()
	return t.Frame()
}

// Resize re-measures and recomputes the frame for the last scroll offset.
func (t *Tracker) Resize() (Frame, error) {
	err := t.Measure()
	return t.Frame(), err
}

func (t *Tracker) Frame() Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.measured {
		return Derive(0)
	}
	return Derive(Progress(Observation{Geometry: t.geom, ScrollY: t.scrollY}))
}

// Attach measures the reference element and subscribes to src. onFrame is
// called with a fresh frame on every scroll and resize event. Listeners stay
// registered until Close.
func (t *Tracker) Attach(src Source, onFrame func(Frame)) error {
	t.mu.Lock()
	if len(t.releases) > 0 {
		t.mu.Unlock()
		return ErrAttached
	}
	t.mu.Unlock()

	// a failed initial measurement is retried on the next resize
	_ = t.Measure()

	releaseScroll := src.OnScroll(func(y float64) {
		onFrame(t.Scroll(y))
	})
	releaseResize := src.OnResize(func() {
		f, _ := t.Resize()
		onFrame(f)
	})

	t.mu.Lock()
	t.releases = append(t.releases, releaseScroll, releaseResize)
	t.mu.Unlock()

	onFrame(t.Frame())
	return nil
}

// Close removes every listener registered by Attach. It is safe to call more
// than once.
func (t *Tracker) Close() {
	t.mu.Lock()
	releases := t.releases
	t.releases = nil
	t.mu.Unlock()

	for _, release := range releases {
		release()
	}
}
