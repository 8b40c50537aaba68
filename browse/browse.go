// Package browse implements an interactive terminal loop over the navigation
// router: pick an entry, follow its URL, go back.
package browse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/log"
	"github.com/gtv-cli/gtv/router"
	"github.com/gtv-cli/gtv/util"
)

// Dispatcher runs a navigation URL, rendering into the Browser.
type Dispatcher interface {
	Dispatch(ctx context.Context, raw string) error
}

// Selector asks the user to pick one of options and returns its index.
type Selector func(message string, options []string) (int, error)

// Option customizes a Browser.
type Option func(*Browser)

// WithSelector replaces the survey select prompt.
func WithSelector(selector Selector) Option {
	return func(b *Browser) {
		b.selector = selector
	}
}

// Browser is a router.Renderer that keeps the last directory and lets the user
// navigate from it.
type Browser struct {
	out      io.Writer
	selector Selector

	current *listing.Directory
	seen    map[string]*listing.Directory
	history util.Stack[string]
}

var _ router.Renderer = (*Browser)(nil)

// New returns a Browser printing headings to out.
func New(out io.Writer, opts ...Option) *Browser {
	b := &Browser{
		out:      out,
		selector: surveySelect,
		seen:     make(map[string]*listing.Directory),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render keeps dir for the next selection.
func (b *Browser) Render(dir *listing.Directory) error {
	b.current = dir
	return nil
}

// Run browses from start until the user quits or interrupts.
func (b *Browser) Run(ctx context.Context, d Dispatcher, start string) error {
	raw := start

	for ctx.Err() == nil {
		dir, ok := b.seen[raw]
		if !ok {
			b.current = nil
			if err := d.Dispatch(ctx, raw); err != nil {
				if errors.Is(err, router.ErrInvalidParams) || b.history.Len() == 0 {
					return err
				}
				fail(b.out, err)
				raw = b.history.Peek()
				continue
			}

			if b.current == nil {
				// playback returned, show the listing it was started from
				if b.history.Len() == 0 {
					return nil
				}
				raw = b.history.Peek()
				continue
			}

			dir = b.current
			raw = canonical(raw, dir)
			if cacheable(raw, dir) {
				b.seen[raw] = dir
			}
		}

		if b.history.Len() == 0 || b.history.Peek() != raw {
			b.history.Push(raw)
		}

		next, err := b.choose(dir)
		switch {
		case errors.Is(err, terminal.InterruptErr), errors.Is(err, errQuit):
			return nil
		case errors.Is(err, errStay):
		case errors.Is(err, errBack):
			if b.history.Len() > 1 {
				b.history.Pop()
			}
			raw = b.history.Peek()
		case err != nil:
			return err
		default:
			raw = next
		}
	}

	return nil
}

// canonical pins the effective search query so revisiting a search result
// does not prompt again.
func canonical(raw string, dir *listing.Directory) string {
	if dir.Query == "" {
		return raw
	}

	params, err := url.ParseQuery(host.Query(raw))
	if err != nil || params.Get(listing.ParamSearch) != "" {
		return raw
	}

	params.Set(listing.ParamSearch, dir.Query)
	return params.Encode()
}

// cacheable reports whether dir can be shown again without dispatching raw.
// Failed listings and searches without a pinned query are always dispatched again.
func cacheable(raw string, dir *listing.Directory) bool {
	if dir.Failed {
		return false
	}

	params, err := url.ParseQuery(host.Query(raw))
	if err != nil {
		return false
	}

	return params.Get(listing.ParamCategory) != catalog.Search.String() || params.Get(listing.ParamSearch) != ""
}

func fail(out io.Writer, err error) {
	log.Error(err)
	fmt.Fprintln(out, failLabel(err.Error()))
}
