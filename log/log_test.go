package log

import (
	"bytes"
	"testing"

	"github.com/gtv-cli/gtv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestLogging(t *testing.T) {
	Convey("Given a configured sink", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsJson, false)
		viper.Set(key.LogsLevel, "debug")
		So(configure(&buf), ShouldBeNil)

		Convey("When logging is disabled nothing is written", func() {
			enabled = false
			Info("hidden")
			Episode(7).Warn("hidden too")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("When logging is enabled entries carry their fields", func() {
			enabled = true
			defer func() { enabled = false }()

			Episode(42).Info("resumed")
			So(buf.String(), ShouldContainSubstring, "resumed")
			So(buf.String(), ShouldContainSubstring, "episode=42")
		})

		Convey("An unknown level falls back to info", func() {
			enabled = true
			defer func() { enabled = false }()

			viper.Set(key.LogsLevel, "chatty")
			So(configure(&buf), ShouldBeNil)
			Debug("dropped")
			So(buf.String(), ShouldNotContainSubstring, "dropped")
		})
	})
}
