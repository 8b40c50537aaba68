package host

import (
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPluginURL(t *testing.T) {
	Convey("Given a plugin URL builder", t, func() {
		p := PluginURL{Base: "gtv://"}

		Convey("Parameters are encoded in key order", func() {
			u := p.URL(url.Values{"offset": {"65"}, "episode": {"7"}, "action": {"jump_to_chapter"}})
			So(u, ShouldEqual, "gtv://?action=jump_to_chapter&episode=7&offset=65")
		})

		Convey("No parameters yield the base", func() {
			So(p.URL(url.Values{}), ShouldEqual, "gtv://")
		})
	})
}

func TestQuery(t *testing.T) {
	Convey("Query extracts the parameter part", t, func() {
		So(Query("gtv://?action=play&video=3"), ShouldEqual, "action=play&video=3")
		So(Query("?action=play&video=3"), ShouldEqual, "action=play&video=3")
		So(Query(" action=play&video=3 "), ShouldEqual, "action=play&video=3")
		So(Query("gtv://"), ShouldEqual, "")
		So(Query(""), ShouldEqual, "")
	})
}
