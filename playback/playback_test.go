package playback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/player"
	"github.com/gtv-cli/gtv/resume"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeURLs struct {
	calls int
	err   error
}

func (f *fakeURLs) PlaylistURL(_ context.Context, episode int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/" + title(episode) + ".m3u8", nil
}

// fakePlayer starts playing startAfter polls after something was loaded and
// stops after playFor polls reporting playing. A negative playFor never stops.
type fakePlayer struct {
	mu         sync.Mutex
	loaded     bool
	startAfter int
	playFor    int
	pos        float64
	played     []player.Media
	seeks      []float64
}

func (p *fakePlayer) Play(media player.Media) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = true
	p.played = append(p.played, media)
	return nil
}

func (p *fakePlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return false
	}
	if p.startAfter > 0 {
		p.startAfter--
		return false
	}
	if p.playFor == 0 {
		return false
	}
	if p.playFor > 0 {
		p.playFor--
	}
	return true
}

func (p *fakePlayer) TimePos() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos += 10
	return p.pos, nil
}

func (p *fakePlayer) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seeks = append(p.seeks, seconds)
	return nil
}

type fakeResolver struct {
	player   *fakePlayer
	resolved []host.Playable
	noPlayer bool
}

func (r *fakeResolver) Resolve(playable host.Playable) error {
	r.resolved = append(r.resolved, playable)
	if r.noPlayer {
		return nil
	}
	return r.player.Play(player.Media{URL: playable.URL, StartAt: playable.StartAt})
}

var fastOptions = Options{
	Resume:        true,
	Interval:      time.Millisecond,
	StartInterval: time.Millisecond,
	StartTimeout:  50 * time.Millisecond,
	JumpTimeout:   50 * time.Millisecond,
}

func TestPlay(t *testing.T) {
	Convey("Given a controller with a resume store", t, func() {
		filesystem.SetMemMapFs()
		store := resume.New("/config")
		urls := &fakeURLs{}
		p := &fakePlayer{startAfter: 2, playFor: 3}
		resolver := &fakeResolver{player: p}
		ctx := context.Background()

		Convey("A stored position is handed to the host as the start point", func() {
			So(store.Write(42, 123.5, resume.Position), ShouldBeNil)
			So(store.Write(42, 3600, resume.Total), ShouldBeNil)

			So(New(urls, store, resolver, p, fastOptions).Play(ctx, 42), ShouldBeNil)

			So(resolver.resolved, ShouldHaveLength, 1)
			So(resolver.resolved[0].URL, ShouldEqual, "https://cdn.example/Episode 42.m3u8")
			So(resolver.resolved[0].StartAt, ShouldEqual, 123.5)
			So(resolver.resolved[0].Total, ShouldEqual, 3600)
		})

		Convey("The position is recorded while playing and kept after stop", func() {
			So(New(urls, store, resolver, p, fastOptions).Play(ctx, 42), ShouldBeNil)

			So(resolver.resolved[0].StartAt, ShouldEqual, 0)
			So(store.Read(42, resume.Position), ShouldEqual, 20)
			So(store.Read(42, resume.Total), ShouldEqual, 0)
		})

		Convey("Resuming can be disabled", func() {
			So(store.Write(42, 99, resume.Position), ShouldBeNil)
			options := fastOptions
			options.Resume = false

			So(New(urls, store, resolver, p, options).Play(ctx, 42), ShouldBeNil)
			So(resolver.resolved[0].StartAt, ShouldEqual, 0)
		})

		Convey("A player that never starts ends the call without writes", func() {
			resolver.noPlayer = true

			So(New(urls, store, resolver, p, fastOptions).Play(ctx, 42), ShouldBeNil)
			So(store.Read(42, resume.Position), ShouldEqual, 0)
		})

		Convey("Stream lookup failures are returned before the host is involved", func() {
			urls.err = errors.New("retrieval")

			So(New(urls, store, resolver, p, fastOptions).Play(ctx, 42), ShouldNotBeNil)
			So(resolver.resolved, ShouldBeEmpty)
		})

		Convey("Cancellation ends the monitor", func() {
			p.playFor = -1
			ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- New(urls, store, resolver, p, fastOptions).Play(ctx, 42) }()

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(2 * time.Second):
				t.Fatal("monitor did not stop on cancellation")
			}
			So(store.Read(42, resume.Position), ShouldBeGreaterThan, 0)
		})
	})
}

func TestJumpToChapter(t *testing.T) {
	Convey("Given a controller", t, func() {
		filesystem.SetMemMapFs()
		store := resume.New("/config")
		urls := &fakeURLs{}
		ctx := context.Background()

		Convey("A playing player seeks immediately", func() {
			p := &fakePlayer{loaded: true, playFor: -1}
			c := New(urls, store, &fakeResolver{player: p}, p, fastOptions)

			So(c.JumpToChapter(ctx, 7, 3661), ShouldBeNil)
			So(p.seeks, ShouldResemble, []float64{3661})
			So(p.played, ShouldBeEmpty)
			So(urls.calls, ShouldEqual, 0)
		})

		Convey("A stopped player is started and seeks once playing", func() {
			p := &fakePlayer{startAfter: 3, playFor: -1}
			c := New(urls, store, &fakeResolver{player: p}, p, fastOptions)

			So(c.JumpToChapter(ctx, 7, 65), ShouldBeNil)
			So(p.played, ShouldHaveLength, 1)
			So(p.played[0].URL, ShouldEqual, "https://cdn.example/Episode 7.m3u8")
			So(p.seeks, ShouldResemble, []float64{65})
		})

		Convey("A player that never starts gets no seek", func() {
			p := &fakePlayer{startAfter: 1 << 30, playFor: -1}
			c := New(urls, store, &fakeResolver{player: p}, p, fastOptions)

			So(c.JumpToChapter(ctx, 7, 65), ShouldBeNil)
			So(p.played, ShouldHaveLength, 1)
			So(p.seeks, ShouldBeEmpty)
		})
	})
}
