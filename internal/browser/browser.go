//go:build js && wasm

// Package browser adapts the DOM to the scroll and indicator packages:
// geometry measurers, event sources and an animation-frame scheduler.
package browser

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/armaanv/portfolio/internal/indicator"
	"github.com/armaanv/portfolio/internal/scroll"
)

var passive = js.ValueOf(map[string]any{"passive": true})

// Listen registers fn for event on target. The returned function removes the
// listener and frees its callback.
func Listen(target js.Value, event string, fn func(ev js.Value)) (release func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb, passive)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, cb, passive)
		cb.Release()
	}
}

// NextFrame defers work to the next animation frame.
var NextFrame = indicator.SchedulerFunc(func(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
})

// Loop calls step once per animation frame with the time since the previous
// frame until step returns false or cancel is called.
func Loop(step func(dt time.Duration) bool) (cancel func()) {
	stopped := false
	var last float64
	var frame js.Func
	frame = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if stopped {
			frame.Release()
			return nil
		}
		now := args[0].Float()
		dt := time.Duration(0)
		if last > 0 {
			dt = time.Duration((now - last) * float64(time.Millisecond))
		}
		last = now
		if !step(dt) {
			stopped = true
			frame.Release()
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	// the pending frame sees stopped and frees the callback itself
	return func() { stopped = true }
}

// PrefersReducedMotion reports the user's motion preference.
func PrefersReducedMotion() bool {
	mq := js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)")
	return mq.Truthy() && mq.Get("matches").Bool()
}

// Window is the global scroll and resize source. Scroll events are coalesced
// to one callback per animation frame.
type Window struct {
	win js.Value
}

func NewWindow() Window {
	return Window{win: js.Global()}
}

func (w Window) ScrollY() float64 {
	return w.win.Get("scrollY").Float()
}

func (w Window) OnScroll(fn func(y float64)) (release func()) {
	pending, closed := false, false
	stop := Listen(w.win, "scroll", func(js.Value) {
		if pending {
			return
		}
		pending = true
		NextFrame.Defer(func() {
			pending = false
			if !closed {
				fn(w.ScrollY())
			}
		})
	})
	return func() {
		closed = true
		stop()
	}
}

func (w Window) OnResize(fn func()) (release func()) {
	return Listen(w.win, "resize", func(js.Value) { fn() })
}

// ElementGeometry measures el relative to the document.
func ElementGeometry(el js.Value) scroll.Measurer {
	return scroll.MeasurerFunc(func() (scroll.Geometry, error) {
		if !el.Truthy() || !el.Get("isConnected").Bool() {
			return scroll.Geometry{}, scroll.ErrNotMounted
		}
		win := js.Global()
		rect := el.Call("getBoundingClientRect")
		return scroll.Geometry{
			ReferenceTop:    rect.Get("top").Float() + win.Get("scrollY").Float(),
			ReferenceHeight: rect.Get("height").Float(),
			ViewportHeight:  win.Get("innerHeight").Float(),
		}, nil
	})
}

// NavLayout measures the navigation container and the text span inside each
// [data-nav-label] link.
type NavLayout struct {
	Container js.Value
}

func (n NavLayout) ContainerRect() (indicator.Rect, bool) {
	return rectOf(n.Container)
}

func (n NavLayout) LabelRect(label string) (indicator.Rect, bool) {
	el := n.Label(label)
	if !el.Truthy() {
		return indicator.Rect{}, false
	}
	text := el.Call("querySelector", "[data-nav-text]")
	if !text.Truthy() {
		text = el
	}
	return rectOf(text)
}

// Label finds the link for label. Labels are compared as attribute values so
// they need no CSS escaping.
func (n NavLayout) Label(label string) js.Value {
	if !n.Container.Truthy() {
		return js.Null()
	}
	links := n.Container.Call("querySelectorAll", "[data-nav-label]")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		if link.Call("getAttribute", "data-nav-label").String() == label {
			return link
		}
	}
	return js.Null()
}

func rectOf(el js.Value) (indicator.Rect, bool) {
	if !el.Truthy() || !el.Get("isConnected").Bool() {
		return indicator.Rect{}, false
	}
	r := el.Call("getBoundingClientRect")
	rect := indicator.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
	// detached or display:none elements report an empty box
	if rect.Width == 0 && rect.Height == 0 {
		return indicator.Rect{}, false
	}
	return rect, true
}

// TranslateY moves el vertically and sets its opacity.
func TranslateY(el js.Value, y, opacity float64) {
	if !el.Truthy() {
		return
	}
	style := el.Get("style")
	style.Call("setProperty", "transform", fmt.Sprintf("translateY(%.2fpx)", y))
	style.Call("setProperty", "opacity", fmt.Sprintf("%.3f", opacity))
}

// TranslateX moves el horizontally.
func TranslateX(el js.Value, x float64) {
	if !el.Truthy() {
		return
	}
	el.Get("style").Call("setProperty", "transform", fmt.Sprintf("translateX(%.2fpx)", x))
}
