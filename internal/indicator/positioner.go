package indicator

import (
	"sync"

	"github.com/samber/mo"
	"go.uber.org/atomic"
)

// Measurer reads live label and container geometry. A false result means the
// element is not mounted yet.
type Measurer interface {
	ContainerRect() (Rect, bool)
	LabelRect(label string) (Rect, bool)
}

// Scheduler runs fn once layout has settled, typically on the next animation
// frame. Deferred calls cannot be cancelled.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// Immediate runs deferred work synchronously.
var Immediate = SchedulerFunc(func(fn func()) { fn() })

// State is the positioner's output. An Idle state has no offset and the
// indicator must not render.
type State struct {
	Label  string
	Offset mo.Option[float64]
}

func (s State) Active() bool { return s.Offset.IsPresent() }

// Idle is the state with no active label.
var Idle = State{Offset: mo.None[float64]()}

type Option func(*Positioner)

func WithItems(items []NavItem) Option {
	return func(p *Positioner) { p.items = items }
}

func WithGap(gap float64) Option {
	return func(p *Positioner) { p.gap = gap }
}

// Positioner tracks hover, focus and route triggers and publishes the arrow
// offset for the label they resolve to. Each trigger bumps a generation
// counter; a deferred measurement is applied only if no newer trigger fired
// in the meantime.
type Positioner struct {
	items     []NavItem
	gap       float64
	measurer  Measurer
	scheduler Scheduler

	generation atomic.Uint64

	mu        sync.Mutex
	mounted   bool
	hovered   mo.Option[string]
	route     string
	state     State
	listeners []func(State)
}

func New(m Measurer, s Scheduler, route string, opts ...Option) *Positioner {
	p := &Positioner{
		items:     DefaultItems,
		gap:       Gap,
		measurer:  m,
		scheduler: s,
		route:     route,
		hovered:   mo.None[string](),
		state:     Idle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnChange registers fn to be called after every state transition. The
// returned function unregisters it.
func (p *Positioner) OnChange(fn func(State)) (release func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
	idx := len(p.listeners) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if idx < len(p.listeners) {
			p.listeners[idx] = nil
		}
	}
}

func (p *Positioner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Generation is the number of triggers seen so far.
func (p *Positioner) Generation() uint64 {
	return p.generation.Load()
}

// Resolve returns the label that should currently carry the indicator.
func (p *Positioner) Resolve() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolveLocked()
}

func (p *Positioner) resolveLocked() (string, bool) {
	if label, ok := p.hovered.Get(); ok {
		if _, known := ForLabel(p.items, label); known {
			return label, true
		}
	}
	item, ok := ForRoute(p.items, p.route)
	return item.Label, ok
}

func (p *Positioner) Mount() {
	p.trigger(func() { p.mounted = true })
}

// Unmount discards pending measurements and resets to Idle.
func (p *Positioner) Unmount() {
	p.mu.Lock()
	p.mounted = false
	p.generation.Inc()
	p.state = Idle
	p.mu.Unlock()
}

func (p *Positioner) HoverEnter(label string) {
	p.trigger(func() { p.hovered = mo.Some(label) })
}

func (p *Positioner) HoverLeave() {
	p.trigger(func() { p.hovered = mo.None[string]() })
}

func (p *Positioner) Focus(label string) { p.HoverEnter(label) }

func (p *Positioner) Blur() { p.HoverLeave() }

func (p *Positioner) SetRoute(route string) {
	p.trigger(func() { p.route = route })
}

func (p *Positioner) Resize() {
	p.trigger(func() {})
}

func (p *Positioner) trigger(update func()) {
	p.mu.Lock()
	update()
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	gen := p.generation.Inc()
	p.mu.Unlock()

	p.scheduler.Defer(func() { p.measure(gen) })
}

func (p *Positioner) measure(gen uint64) {
	p.mu.Lock()
	if gen != p.generation.Load() || !p.mounted {
		p.mu.Unlock()
		return
	}

	next, ok := p.nextStateLocked()
	if !ok || next == p.state {
		p.mu.Unlock()
		return
	}
	p.state = next
	listeners := append([]func(State){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		if fn != nil {
			fn(next)
		}
	}
}

// nextStateLocked returns false when measurement failed and the current state
// should be kept until the next trigger.
func (p *Positioner) nextStateLocked() (State, bool) {
	label, ok := p.resolveLocked()
	if !ok {
		return Idle, true
	}

	container, ok := p.measurer.ContainerRect()
	if !ok {
		return State{}, false
	}
	rect, ok := p.measurer.LabelRect(label)
	if !ok {
		return State{}, false
	}
	return State{Label: label, Offset: mo.Some(Offset(rect, container, p.gap))}, true
}
