package where

import (
	"path/filepath"
	"testing"

	"github.com/gtv-cli/gtv/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Resume directories are not created eagerly", func() {
			So(filepath.Base(ResumePoints()), ShouldEqual, "resume_points")
			So(filepath.Base(TotalTimes()), ShouldEqual, "total_times")
			So(lo.Must(filesystem.API().Exists(ResumePoints())), ShouldBeFalse)
		})

		Convey("GTV_CONFIG_PATH overrides the config directory", func() {
			t.Setenv(EnvConfigPath, "/custom/gtv")
			So(Config(), ShouldEqual, "/custom/gtv")
			So(ResumePoints(), ShouldEqual, filepath.Join("/custom/gtv", "resume_points"))
		})
	})
}
