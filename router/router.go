// Package router maps navigation parameter strings to listings and playback.
package router

import (
	"context"
	"errors"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/log"
	"github.com/samber/lo"
)

// Assembler builds directories.
type Assembler interface {
	Root() *listing.Directory
	Assemble(ctx context.Context, category catalog.Category, offset int, query string) (*listing.Directory, error)
}

// Playback starts episodes and seeks within them.
type Playback interface {
	Play(ctx context.Context, episode int) error
	JumpToChapter(ctx context.Context, episode, offset int) error
}

// Renderer shows a directory to the user.
type Renderer interface {
	Render(dir *listing.Directory) error
}

// QueryRecorder remembers a successful search query.
type QueryRecorder func(query string) error

// Router dispatches commands.
type Router struct {
	assembler Assembler
	playback  Playback
	renderer  Renderer
	remember  QueryRecorder
}

// Option customizes a Router.
type Option func(*Router)

// WithQueryRecorder records queries of non-empty search results.
func WithQueryRecorder(remember QueryRecorder) Option {
	return func(r *Router) {
		r.remember = remember
	}
}

// New returns a Router.
func New(assembler Assembler, playback Playback, renderer Renderer, opts ...Option) *Router {
	r := &Router{
		assembler: assembler,
		playback:  playback,
		renderer:  renderer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch parses raw and runs the command. Invalid parameters render nothing.
func (r *Router) Dispatch(ctx context.Context, raw string) error {
	cmd, err := Parse(raw)
	if err != nil {
		log.Error(err)
		return err
	}
	return r.Run(ctx, cmd)
}

// Run executes a parsed command.
func (r *Router) Run(ctx context.Context, cmd *Command) error {
	switch cmd.Action {
	case ActionListing:
		return r.listing(ctx, cmd)
	case ActionPlay:
		return r.logged(r.playback.Play(ctx, cmd.Episode))
	case ActionJump:
		return r.logged(r.playback.JumpToChapter(ctx, cmd.Episode, cmd.Offset))
	default:
		return r.renderer.Render(r.assembler.Root())
	}
}

// listing renders a failed directory when the catalog is unreachable.
func (r *Router) listing(ctx context.Context, cmd *Command) error {
	dir, err := r.assembler.Assemble(ctx, cmd.Category, cmd.Offset, cmd.Query)
	if err != nil {
		if !errors.Is(err, catalog.ErrRetrieval) {
			return err
		}

		log.Errorf("listing %s: %v", cmd.Category, err)
		return r.renderer.Render(&listing.Directory{Title: cmd.Category.Title(), Failed: true})
	}

	if err := r.renderer.Render(dir); err != nil {
		return err
	}

	if cmd.Category == catalog.Search && r.remember != nil && dir.Query != "" && hasVideos(dir) {
		if err := r.remember(dir.Query); err != nil {
			log.Warnf("remember query %q: %v", dir.Query, err)
		}
	}
	return nil
}

func (r *Router) logged(err error) error {
	if err != nil {
		log.Error(err)
	}
	return err
}

func hasVideos(dir *listing.Directory) bool {
	return lo.SomeBy(dir.Records, func(record *listing.Record) bool {
		return record.Kind == listing.KindVideo
	})
}
