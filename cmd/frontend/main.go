//go:build js && wasm

// Command frontend is the WebAssembly module loaded by every page. It drives
// the parallax sections and the navigation arrow.
//
//	GOOS=js GOARCH=wasm go build -o internal/web/static/app.wasm ./cmd/frontend
package main

import (
	"syscall/js"
	"time"

	"github.com/armaanv/portfolio/internal/browser"
	"github.com/armaanv/portfolio/internal/indicator"
	"github.com/armaanv/portfolio/internal/motion"
	"github.com/armaanv/portfolio/internal/scroll"
)

func main() {
	doc := js.Global().Get("document")
	win := browser.NewWindow()

	unmounts := []func(){
		mountHero(doc, win),
		mountParallax(doc, win),
		mountNav(doc, win),
	}

	done := make(chan struct{})
	release := browser.Listen(js.Global(), "pagehide", func(js.Value) {
		for _, unmount := range unmounts {
			unmount()
		}
		close(done)
	})
	<-done
	release()
}

// mountHero fades and lifts the hero copy as the page scrolls.
func mountHero(doc js.Value, win browser.Window) func() {
	title := doc.Call("querySelector", "[data-hero-title]")
	subtitle := doc.Call("querySelector", "[data-hero-subtitle]")
	if !title.Truthy() && !subtitle.Truthy() {
		return func() {}
	}

	apply := func(y float64) {
		f := scroll.PageTransform(y)
		browser.TranslateY(title, f.TitleY, f.Opacity)
		browser.TranslateY(subtitle, f.SubtitleY, f.Opacity)
	}
	apply(win.ScrollY())
	return win.OnScroll(apply)
}

// mountParallax attaches one tracker per [data-parallax] section.
func mountParallax(doc js.Value, win browser.Window) func() {
	sections := doc.Call("querySelectorAll", "[data-parallax]")
	trackers := make([]*scroll.Tracker, 0, sections.Length())

	for i := 0; i < sections.Length(); i++ {
		section := sections.Index(i)
		header := section.Call("querySelector", "[data-parallax-header]")
		content := section.Call("querySelector", "[data-parallax-content]")

		tr := scroll.NewTracker(browser.ElementGeometry(section))
		tr.Scroll(win.ScrollY())
		err := tr.Attach(win, func(f scroll.Frame) {
			browser.TranslateY(header, f.HeaderY, f.Opacity)
			browser.TranslateY(content, f.ContentY, f.Opacity)
		})
		if err != nil {
			continue
		}
		trackers = append(trackers, tr)
	}

	return func() {
		for _, tr := range trackers {
			tr.Close()
		}
	}
}

// mountNav keeps the arrow next to the hovered, focused or current link.
func mountNav(doc js.Value, win browser.Window) func() {
	container := doc.Call("querySelector", "[data-nav]")
	if !container.Truthy() {
		return func() {}
	}
	arrow := container.Call("querySelector", "[data-nav-arrow]")
	route := container.Call("getAttribute", "data-current-route").String()
	layout := browser.NavLayout{Container: container}

	p := indicator.New(layout, browser.NextFrame, route)
	anim := motion.For(browser.PrefersReducedMotion())

	shown := false
	cancel := func() {}
	releaseChange := p.OnChange(func(s indicator.State) {
		x, ok := s.Offset.Get()
		if !ok {
			cancel()
			arrow.Set("hidden", true)
			shown = false
			return
		}
		if !shown {
			// first placement snaps; later moves animate
			anim.Snap(x)
			browser.TranslateX(arrow, x)
			arrow.Set("hidden", false)
			shown = true
			return
		}
		anim.Retarget(x)
		cancel()
		cancel = browser.Loop(func(dt time.Duration) bool {
			browser.TranslateX(arrow, anim.Step(dt))
			return !anim.Done()
		})
	})

	releases := []func(){releaseChange, win.OnResize(p.Resize)}
	for _, item := range indicator.DefaultItems {
		link := layout.Label(item.Label)
		if !link.Truthy() {
			continue
		}
		label := item.Label
		releases = append(releases,
			browser.Listen(link, "mouseenter", func(js.Value) { p.HoverEnter(label) }),
			browser.Listen(link, "mouseleave", func(js.Value) { p.HoverLeave() }),
			browser.Listen(link, "focus", func(js.Value) { p.Focus(label) }),
			browser.Listen(link, "blur", func(js.Value) { p.Blur() }),
		)
	}
	p.Mount()

	return func() {
		p.Unmount()
		cancel()
		for _, release := range releases {
			release()
		}
	}
}
