package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/listing"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeAssembler struct {
	dir *listing.Directory
}

func (f *fakeAssembler) Assemble(_ context.Context, _ catalog.Category, _ int, query string) (*listing.Directory, error) {
	dir := *f.dir
	dir.Query = query
	return &dir, nil
}

type fakeStreams map[int]string

func (f fakeStreams) PlaylistURL(_ context.Context, episode int) (string, error) {
	if u, ok := f[episode]; ok {
		return u, nil
	}
	return "", errors.New("no playlist")
}

func records() []*listing.Record {
	return []*listing.Record{
		{Kind: listing.KindVideo, Episode: 9, Title: "Minecraft Hardcore", URL: "gtv://?action=play&video=9"},
		{Kind: listing.KindVideo, Episode: 8, Title: "Pen & Paper", URL: "gtv://?action=play&video=8"},
		{Kind: listing.KindVideo, Episode: 7, Title: "Minecraft Creative", URL: "gtv://?action=play&video=7"},
		{Kind: listing.KindMore, Label: listing.MoreLabel, URL: "gtv://?action=listing&category=all&offset=25"},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a listing", t, func() {
		assembler := &fakeAssembler{dir: &listing.Directory{Records: records()}}
		streams := fakeStreams{9: "https://cdn/9.m3u8", 7: "https://cdn/7.m3u8"}
		var buf bytes.Buffer
		ctx := context.Background()

		Convey("Text mode prints one navigation URL per video", func() {
			err := Run(ctx, assembler, streams, &Options{Out: &buf, Category: catalog.AllByDate})
			So(err, ShouldBeNil)
			So(strings.Split(strings.TrimSpace(buf.String()), "\n"), ShouldResemble, []string{
				"gtv://?action=play&video=9",
				"gtv://?action=play&video=8",
				"gtv://?action=play&video=7",
			})
		})

		Convey("Stream mode prints resolvable stream URLs only", func() {
			err := Run(ctx, assembler, streams, &Options{Out: &buf, Category: catalog.AllByDate, Streams: true})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://cdn/9.m3u8\nhttps://cdn/7.m3u8\n")
		})

		Convey("JSON mode carries paging and picked videos", func() {
			picker, err := ParsePicker("@minecraft@")
			So(err, ShouldBeNil)

			err = Run(ctx, assembler, streams, &Options{
				Out:      &buf,
				Category: catalog.AllByDate,
				Offset:   25,
				Json:     true,
				Picker:   mo.Some(picker),
				Streams:  true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Category, ShouldEqual, "all")
			So(output.Next, ShouldEqual, 50)
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[1].Episode, ShouldEqual, 7)
			So(output.Result[1].Stream, ShouldEqual, "https://cdn/7.m3u8")
		})

		Convey("An empty result is an empty JSON array", func() {
			assembler.dir = &listing.Directory{}
			So(Run(ctx, assembler, streams, &Options{Out: &buf, Category: catalog.Search, Query: "zzzz", Json: true}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"result":[]`)
			So(buf.String(), ShouldContainSubstring, `"query":"zzzz"`)
		})

		Convey("Short search queries are rejected before any request", func() {
			err := Run(ctx, assembler, streams, &Options{Out: &buf, Category: catalog.Search, Query: "ab"})
			So(errors.Is(err, catalog.ErrInvalidQuery), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		all := records()[:3]
		pick := func(description string) []int {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			var episodes []int
			for _, r := range picker(all) {
				episodes = append(episodes, r.Episode)
			}
			return episodes
		}

		So(pick("first"), ShouldResemble, []int{9})
		So(pick("last"), ShouldResemble, []int{7})
		So(pick("all"), ShouldResemble, []int{9, 8, 7})
		So(pick("1"), ShouldResemble, []int{8})
		So(pick("99"), ShouldResemble, []int{7})
		So(pick("#8"), ShouldResemble, []int{8})
		So(pick("@PAPER@"), ShouldResemble, []int{8})

		for _, bad := range []string{"", "#x", "second", "-1"} {
			_, err := ParsePicker(bad)
			So(err, ShouldNotBeNil)
		}
	})
}
