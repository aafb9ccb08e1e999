package scroll

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProgress(t *testing.T) {
	Convey("Progress", t, func() {
		g := Geometry{ReferenceTop: 1000, ReferenceHeight: 600, ViewportHeight: 800}

		Convey("Should clamp to 0 before the element enters the viewport", func() {
			So(Progress(Observation{Geometry: g, ScrollY: 0}), ShouldEqual, 0.0)
			So(Progress(Observation{Geometry: g, ScrollY: g.Start()}), ShouldEqual, 0.0)
		})

		Convey("Should clamp to 1 once the element has left the viewport", func() {
			So(Progress(Observation{Geometry: g, ScrollY: g.End()}), ShouldEqual, 1.0)
			So(Progress(Observation{Geometry: g, ScrollY: 10000}), ShouldEqual, 1.0)
		})

		Convey("Should interpolate linearly in between", func() {
			// start = 200, span = 1400
			So(Progress(Observation{Geometry: g, ScrollY: 900}), ShouldAlmostEqual, 0.5)
			So(Progress(Observation{Geometry: g, ScrollY: 550}), ShouldAlmostEqual, 0.25)
		})

		Convey("Should be monotonically non-decreasing in scrollY", func() {
			prev := -1.0
			for y := -500.0; y <= 2500; y += 37 {
				p := Progress(Observation{Geometry: g, ScrollY: y})
				So(p, ShouldBeGreaterThanOrEqualTo, prev)
				So(p, ShouldBeBetweenOrEqual, 0.0, 1.0)
				prev = p
			}
		})

		Convey("Should be 0 for degenerate geometry", func() {
			So(Progress(Observation{ScrollY: 50}), ShouldEqual, 0.0)
		})
	})
}

func TestKeyframes(t *testing.T) {
	Convey("Envelope", t, func() {
		So(Envelope.At(0), ShouldEqual, 0.0)
		So(Envelope.At(0.25), ShouldEqual, 1.0)
		So(Envelope.At(0.5), ShouldEqual, 1.0)
		So(Envelope.At(0.75), ShouldEqual, 1.0)
		So(Envelope.At(1), ShouldEqual, 0.0)
		So(Envelope.At(0.125), ShouldAlmostEqual, 0.5)
		So(Envelope.At(0.875), ShouldAlmostEqual, 0.5)
	})

	Convey("Linear transforms", t, func() {
		So(Header.At(0), ShouldEqual, -20.0)
		So(Header.At(0.5), ShouldAlmostEqual, 0.0)
		So(Header.At(1), ShouldEqual, 20.0)
		So(Content.At(0), ShouldEqual, -50.0)
		So(Content.At(0.75), ShouldAlmostEqual, 25.0)
		So(Content.At(1), ShouldEqual, 50.0)
	})

	Convey("Out of range inputs hold the end values", t, func() {
		So(Header.At(-3), ShouldEqual, -20.0)
		So(Header.At(3), ShouldEqual, 20.0)
	})

	Convey("Malformed keyframes yield 0", t, func() {
		So(Keyframes{}.At(1), ShouldEqual, 0.0)
		So(Keyframes{In: []float64{0, 1}, Out: []float64{1}}.At(0.5), ShouldEqual, 0.0)
	})

	Convey("PageTransform", t, func() {
		f := PageTransform(250)
		So(f.TitleY, ShouldAlmostEqual, -50.0)
		So(f.SubtitleY, ShouldAlmostEqual, -100.0)
		So(f.Opacity, ShouldAlmostEqual, 1.0/6, 1e-9)
		So(PageTransform(1000).Opacity, ShouldEqual, 0.0)
	})
}
