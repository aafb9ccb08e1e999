package motion

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const frame = 16 * time.Millisecond

func run(a Animator, frames int) {
	for i := 0; i < frames && !a.Done(); i++ {
		a.Step(frame)
	}
}

func TestSpring(t *testing.T) {
	Convey("Spring", t, func() {
		s := NewSpring(DefaultStiffness, DefaultDamping)
		s.Snap(20)
		So(s.Done(), ShouldBeTrue)

		Convey("Should settle on the target", func() {
			s.Retarget(100)
			So(s.Done(), ShouldBeFalse)
			run(s, 200)
			So(s.Done(), ShouldBeTrue)
			So(s.Value(), ShouldEqual, 100.0)
		})

		Convey("Should move toward the target on the first frame", func() {
			s.Retarget(100)
			x := s.Step(frame)
			So(x, ShouldBeGreaterThan, 20.0)
			So(x, ShouldBeLessThan, 100.0)
		})

		Convey("Should follow a retarget mid-flight", func() {
			s.Retarget(100)
			s.Step(5 * frame)
			s.Retarget(20)
			run(s, 200)
			So(s.Value(), ShouldEqual, 20.0)
		})
	})
}

func TestTween(t *testing.T) {
	Convey("Tween", t, func() {
		tw := NewTween(160 * time.Millisecond)
		tw.Snap(20)
		So(tw.Done(), ShouldBeTrue)

		tw.Retarget(100)
		So(tw.Done(), ShouldBeFalse)
		mid := tw.Step(80 * time.Millisecond)
		So(mid, ShouldBeGreaterThan, 60.0)
		So(mid, ShouldBeLessThan, 100.0)

		tw.Step(80 * time.Millisecond)
		So(tw.Done(), ShouldBeTrue)
		So(tw.Value(), ShouldEqual, 100.0)
	})

	Convey("For", t, func() {
		_, isTween := For(true).(*Tween)
		So(isTween, ShouldBeTrue)
		_, isSpring := For(false).(*Spring)
		So(isSpring, ShouldBeTrue)
	})
}
