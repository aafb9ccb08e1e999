package storage

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOpen(t *testing.T) {
	Convey("Open", t, func() {
		db, err := Open(":memory:")
		So(err, ShouldBeNil)
		defer db.Close()

		Convey("Should create the drafts table", func() {
			var n int
			err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'drafts'`).Scan(&n)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})

		Convey("Should be safe to migrate twice", func() {
			_, err := db.Exec(schema)
			So(err, ShouldBeNil)
		})
	})
}
