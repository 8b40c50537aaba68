package resume

import (
	"math"
	"strconv"
	"testing"

	"github.com/gtv-cli/gtv/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestStore(t *testing.T) {
	Convey("Given a store on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		store := New("/config")

		Convey("A written position reads back exactly", func() {
			So(store.Write(42, 123.5, Position), ShouldBeNil)
			So(store.Read(42, Position), ShouldEqual, 123.5)

			data, err := filesystem.API().ReadFile("/config/resume_points/42")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "123.5")
		})

		Convey("Kinds are stored independently", func() {
			So(store.Write(42, 10, Position), ShouldBeNil)
			So(store.Write(42, 3600, Total), ShouldBeNil)
			So(store.Read(42, Position), ShouldEqual, 10)
			So(store.Read(42, Total), ShouldEqual, 3600)
			So(store.Path(42, Total), ShouldEqual, "/config/total_times/42")
		})

		Convey("Overwrites leave no temp files behind", func() {
			for i := 1; i <= 3; i++ {
				So(store.Write(7, float64(i), Position), ShouldBeNil)
			}
			So(store.Read(7, Position), ShouldEqual, 3)

			entries, err := afero.ReadDir(filesystem.API(), "/config/resume_points")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].Name(), ShouldEqual, "7")
		})

		Convey("A missing record reads as zero", func() {
			So(store.Read(999, Position), ShouldEqual, 0)
			So(store.Read(999, Total), ShouldEqual, 0)
		})

		Convey("Unusable content reads as zero", func() {
			for i, content := range []string{"abc", "", "-5", "NaN", "+Inf"} {
				ep := 100 + i
				So(filesystem.API().MkdirAll("/config/resume_points", 0o755), ShouldBeNil)
				So(filesystem.API().WriteFile(store.Path(ep, Position), []byte(content), 0o644), ShouldBeNil)
				So(store.Read(ep, Position), ShouldEqual, 0)
			}
		})

		Convey("Surrounding whitespace is tolerated", func() {
			So(filesystem.API().MkdirAll("/config/resume_points", 0o755), ShouldBeNil)
			So(filesystem.API().WriteFile(store.Path(5, Position), []byte(" 61.25\n"), 0o644), ShouldBeNil)
			So(store.Read(5, Position), ShouldEqual, 61.25)
		})

		Convey("Values use the shortest decimal form", func() {
			So(store.Write(1, 1e21, Position), ShouldBeNil)
			data, _ := filesystem.API().ReadFile(store.Path(1, Position))
			So(string(data), ShouldEqual, strconv.FormatFloat(1e21, 'f', -1, 64))
			So(store.Read(1, Position), ShouldEqual, 1e21)
			So(math.IsInf(store.Read(1, Position), 0), ShouldBeFalse)
		})

		Convey("Clear removes both kinds", func() {
			So(store.Write(3, 1, Position), ShouldBeNil)
			So(store.Write(3, 2, Total), ShouldBeNil)
			So(store.Clear(), ShouldBeNil)
			So(store.Read(3, Position), ShouldEqual, 0)
			So(store.Read(3, Total), ShouldEqual, 0)
		})

		Convey("Writes fail on a read-only filesystem", func() {
			filesystem.Set(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(store.Write(1, 5, Position), ShouldNotBeNil)
			So(store.Read(1, Position), ShouldEqual, 0)
		})

		Reset(func() {
			filesystem.SetMemMapFs()
		})
	})
}
