package main

import (
	"bytes"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommands(t *testing.T) {
	Convey("portfolio", t, func() {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		Reset(func() { rootCmd.SetArgs(nil) })

		Convey("version prints the build version", func() {
			rootCmd.SetArgs([]string{"version"})
			So(rootCmd.Execute(), ShouldBeNil)
			So(out.String(), ShouldEqual, version+"\n")
		})

		Convey("drafts purge runs against a fresh database", func() {
			t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "portfolio.db"))
			rootCmd.SetArgs([]string{"drafts", "purge"})
			So(rootCmd.Execute(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "removed 0 drafts")
		})
	})
}
