package content

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefault(t *testing.T) {
	Convey("The embedded site file", t, func() {
		site, err := Default()
		So(err, ShouldBeNil)
		So(site.Hero.Title, ShouldEqual, "Hi, I'm Armaan")
		So(string(site.About.HTML), ShouldContainSubstring, "<p>")
		So(site.Experience, ShouldNotBeEmpty)
		So(string(site.Experience[0].HTML), ShouldContainSubstring, "<li>")
		So(site.Projects, ShouldNotBeEmpty)
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should render markdown bodies", func() {
			site, err := Parse(`
[hero]
title = "Hello"

[[projects]]
title = "Thing"
body = "Uses **Go**."
`)
			So(err, ShouldBeNil)
			So(string(site.Projects[0].HTML), ShouldContainSubstring, "<strong>Go</strong>")
		})

		Convey("Should reject unknown keys", func() {
			_, err := Parse("[hero]\ntitle = \"Hello\"\ntitel = \"typo\"\n")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "titel")
		})

		Convey("Should require a hero title", func() {
			_, err := Parse("[about]\ntitle = \"About\"\n")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPeriod(t *testing.T) {
	Convey("Entry.Period", t, func() {
		So(Entry{}.Period(), ShouldEqual, "")
		So(Entry{Start: "May 2024"}.Period(), ShouldEqual, "May 2024 – Present")
		So(Entry{Start: "May 2024", End: "Aug 2024"}.Period(), ShouldEqual, "May 2024 – Aug 2024")
	})
}
