package router

import (
	"context"
	"errors"
	"testing"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/listing"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeAssembler struct {
	dir   *listing.Directory
	err   error
	calls []*Command
}

func (f *fakeAssembler) Root() *listing.Directory {
	return &listing.Directory{Title: "root"}
}

func (f *fakeAssembler) Assemble(_ context.Context, category catalog.Category, offset int, query string) (*listing.Directory, error) {
	f.calls = append(f.calls, &Command{Action: ActionListing, Category: category, Offset: offset, Query: query})
	return f.dir, f.err
}

type fakePlayback struct {
	played []int
	jumps  [][2]int
	err    error
}

func (f *fakePlayback) Play(_ context.Context, episode int) error {
	f.played = append(f.played, episode)
	return f.err
}

func (f *fakePlayback) JumpToChapter(_ context.Context, episode, offset int) error {
	f.jumps = append(f.jumps, [2]int{episode, offset})
	return f.err
}

type recordingRenderer struct {
	rendered []*listing.Directory
}

func (r *recordingRenderer) Render(dir *listing.Directory) error {
	r.rendered = append(r.rendered, dir)
	return nil
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("The empty string is the root", func() {
			for _, raw := range []string{"", "?", "gtv://"} {
				cmd, err := Parse(raw)
				So(err, ShouldBeNil)
				So(cmd.Action, ShouldEqual, ActionRoot)
			}
		})

		Convey("Listings default offset and query", func() {
			cmd, err := Parse("?action=listing&category=all")
			So(err, ShouldBeNil)
			So(cmd, ShouldResemble, &Command{Action: ActionListing, Category: catalog.AllByDate})

			cmd, err = Parse("gtv://?action=listing&category=search&offset=25&search_str=pen+and+paper")
			So(err, ShouldBeNil)
			So(cmd.Category, ShouldEqual, catalog.Search)
			So(cmd.Offset, ShouldEqual, 25)
			So(cmd.Query, ShouldEqual, "pen and paper")
		})

		Convey("Play and jump carry episode and offset", func() {
			cmd, err := Parse("action=play&video=812")
			So(err, ShouldBeNil)
			So(cmd, ShouldResemble, &Command{Action: ActionPlay, Episode: 812})

			cmd, err = Parse("action=jump_to_chapter&episode=812&offset=3661")
			So(err, ShouldBeNil)
			So(cmd, ShouldResemble, &Command{Action: ActionJump, Episode: 812, Offset: 3661})
		})

		Convey("Invalid parameters are routing errors", func() {
			for _, raw := range []string{
				"action=dance",
				"category=all",
				"action=listing",
				"action=listing&category=popular",
				"action=listing&category=all&offset=ten",
				"action=listing&category=all&offset=-25",
				"action=play",
				"action=play&video=",
				"action=jump_to_chapter&episode=3",
				"action=%zz",
			} {
				_, err := Parse(raw)
				So(errors.Is(err, ErrInvalidParams), ShouldBeTrue)

				var routingErr *RoutingError
				So(errors.As(err, &routingErr), ShouldBeTrue)
				So(routingErr.Params, ShouldEqual, raw)
			}
		})

		Convey("Unknown categories keep their cause", func() {
			_, err := Parse("action=listing&category=popular")
			So(errors.Is(err, catalog.ErrUnknownCategory), ShouldBeTrue)
		})
	})
}

func TestDispatch(t *testing.T) {
	Convey("Given a router", t, func() {
		assembler := &fakeAssembler{dir: &listing.Directory{Title: "Recent streams"}}
		playback := &fakePlayback{}
		renderer := &recordingRenderer{}
		var remembered []string
		r := New(assembler, playback, renderer, WithQueryRecorder(func(q string) error {
			remembered = append(remembered, q)
			return nil
		}))
		ctx := context.Background()

		Convey("The root renders the categories", func() {
			So(r.Dispatch(ctx, ""), ShouldBeNil)
			So(renderer.rendered, ShouldHaveLength, 1)
			So(renderer.rendered[0].Title, ShouldEqual, "root")
		})

		Convey("Listings are assembled and rendered", func() {
			So(r.Dispatch(ctx, "action=listing&category=recent"), ShouldBeNil)
			So(assembler.calls[0].Category, ShouldEqual, catalog.Recent)
			So(renderer.rendered[0], ShouldEqual, assembler.dir)
		})

		Convey("Retrieval failures render a failed directory", func() {
			assembler.err = &catalog.RetrievalError{Endpoint: "/search", Err: errors.New("503")}

			So(r.Dispatch(ctx, "action=listing&category=all"), ShouldBeNil)
			So(renderer.rendered, ShouldHaveLength, 1)
			So(renderer.rendered[0].Failed, ShouldBeTrue)
			So(renderer.rendered[0].Records, ShouldBeEmpty)
		})

		Convey("Routing errors render nothing", func() {
			err := r.Dispatch(ctx, "action=nope")
			So(errors.Is(err, ErrInvalidParams), ShouldBeTrue)
			So(renderer.rendered, ShouldBeEmpty)
			So(playback.played, ShouldBeEmpty)
		})

		Convey("Play and jump reach playback", func() {
			So(r.Dispatch(ctx, "action=play&video=5"), ShouldBeNil)
			So(r.Dispatch(ctx, "action=jump_to_chapter&episode=5&offset=90"), ShouldBeNil)
			So(playback.played, ShouldResemble, []int{5})
			So(playback.jumps, ShouldResemble, [][2]int{{5, 90}})
		})

		Convey("Playback failures are returned", func() {
			playback.err = &catalog.RetrievalError{Endpoint: "/video/playlist", Err: errors.New("404")}
			So(errors.Is(r.Dispatch(ctx, "action=play&video=5"), catalog.ErrRetrieval), ShouldBeTrue)
		})

		Convey("Successful searches are remembered", func() {
			assembler.dir = &listing.Directory{
				Query:   "minecraft",
				Records: []*listing.Record{{Kind: listing.KindVideo}},
			}
			So(r.Dispatch(ctx, "action=listing&category=search&search_str=minecraft"), ShouldBeNil)
			So(remembered, ShouldResemble, []string{"minecraft"})
		})

		Convey("Empty searches are not remembered", func() {
			assembler.dir = &listing.Directory{
				Query:   "zzzz",
				Records: []*listing.Record{{Kind: listing.KindPlaceholder}},
			}
			So(r.Dispatch(ctx, "action=listing&category=search&search_str=zzzz"), ShouldBeNil)
			So(remembered, ShouldBeEmpty)
		})
	})
}
