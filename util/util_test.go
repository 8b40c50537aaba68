package util

import (
	"testing"

	"github.com/gtv-cli/gtv/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth is always positive", t, func() {
		So(TerminalWidth(), ShouldBeGreaterThan, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.WriteFile("/config/resume_points/1", []byte("10"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/cache/queries.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Directories are removed recursively", func() {
			So(Delete("/config/resume_points"), ShouldBeNil)
			exists, _ := fs.Exists("/config/resume_points/1")
			So(exists, ShouldBeFalse)
		})

		Convey("Files are removed", func() {
			So(Delete("/cache/queries.json"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/queries.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths are fine", func() {
			So(Delete("/nowhere"), ShouldBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("root")
		s.Push("action=listing&category=all")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "action=listing&category=all")
		So(s.Pop(), ShouldEqual, "action=listing&category=all")
		So(s.Pop(), ShouldEqual, "root")
		So(s.Pop(), ShouldEqual, "")
	})
}
