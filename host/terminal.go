package host

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/gtv-cli/gtv/color"
	"github.com/gtv-cli/gtv/icon"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/player"
	"github.com/gtv-cli/gtv/style"
	"github.com/gtv-cli/gtv/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

const maxWidth = 100

// Terminal is a host printing directories to a writer and asking on stdin.
type Terminal struct {
	out      io.Writer
	player   player.Player
	suggest  func(string) []string
	width    int
	urls     bool
	erasable bool
}

// TerminalOption customizes a Terminal.
type TerminalOption func(*Terminal)

// WithSuggestions completes the search prompt with suggest.
func WithSuggestions(suggest func(string) []string) TerminalOption {
	return func(t *Terminal) {
		t.suggest = suggest
	}
}

// WithWidth wraps plots at width columns.
func WithWidth(width int) TerminalOption {
	return func(t *Terminal) {
		t.width = width
	}
}

// WithURLs prints the navigation URL under each record.
func WithURLs(show bool) TerminalOption {
	return func(t *Terminal) {
		t.urls = show
	}
}

// NewTerminal returns a host writing to out and playing through p.
func NewTerminal(out io.Writer, p player.Player, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:      out,
		player:   p,
		width:    util.Min(util.TerminalWidth(), maxWidth),
		erasable: util.IsTerminal(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render prints dir.
func (t *Terminal) Render(dir *listing.Directory) error {
	var b strings.Builder

	if dir.Failed {
		b.WriteString(style.ErrorTitle(dir.Title))
		b.WriteString("\n\n")
		b.WriteString(icon.Get(icon.Fail) + " " + style.Fg(color.Red)("The catalog could not be reached."))
		b.WriteString("\n")
		_, err := io.WriteString(t.out, b.String())
		return err
	}

	b.WriteString(style.Title(dir.Title))
	b.WriteString("\n\n")

	for _, record := range dir.Records {
		b.WriteString(t.record(record))
		b.WriteString("\n")
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Terminal) record(r *listing.Record) string {
	var b strings.Builder

	switch r.Kind {
	case listing.KindVideo:
		b.WriteString(icon.Get(icon.Video) + " " + style.Episode(fmt.Sprintf("#%d", r.Episode)) + " " + style.Bold(r.Label))
		if r.Duration > 0 {
			b.WriteString(" " + style.Faint(listing.SecondsToTime(r.Duration)))
		}
	case listing.KindMore:
		b.WriteString(icon.Get(icon.More) + " " + style.Italic(r.Label))
	case listing.KindPlaceholder:
		b.WriteString(icon.Get(icon.Empty) + " " + style.Fg(color.Yellow)(r.Label))
	default:
		b.WriteString(icon.Get(icon.Folder) + " " + r.Label)
	}
	b.WriteString("\n")

	if r.Plot != "" {
		plot := wrap.String(r.Plot, util.Max(t.width-4, 20))
		b.WriteString(style.Faint(indent.String(plot, 4)))
		b.WriteString("\n")
	}

	if t.urls {
		b.WriteString(style.Faint(indent.String(r.URL, 4)))
		b.WriteString("\n")
	}

	return b.String()
}

// Input asks for free text. Interrupting the prompt cancels with an empty answer.
func (t *Terminal) Input(heading string) (string, error) {
	prompt := &survey.Input{
		Message: heading,
	}
	if t.suggest != nil {
		prompt.Suggest = t.suggest
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", nil
		}
		return "", err
	}
	return answer, nil
}

// Notice prints message as a warning.
func (t *Terminal) Notice(message string) error {
	_, err := fmt.Fprintln(t.out, icon.Get(icon.Warn), style.Fg(color.Yellow)(message))
	return err
}

// Resolve starts the player on playable.
func (t *Terminal) Resolve(playable Playable) error {
	if playable.StartAt > 0 {
		at := listing.SecondsToTime(int(playable.StartAt))
		if playable.Total > 0 {
			at += " / " + listing.SecondsToTime(int(playable.Total))
		}
		fmt.Fprintln(t.out, icon.Get(icon.Resume), "Resuming at", style.Timestamp(at))
	}

	title := lo.Ternary(playable.Title != "", playable.Title, fmt.Sprintf("#%d", playable.Episode))
	status := fmt.Sprintf("%s Starting %s..", icon.Get(icon.Video), title)
	if t.erasable {
		defer util.PrintErasable(status)()
	} else {
		fmt.Fprintln(t.out, status)
	}

	return t.player.Play(player.Media{
		URL:     playable.URL,
		Title:   title,
		StartAt: playable.StartAt,
	})
}
