package browse

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gtv-cli/gtv/color"
	"github.com/gtv-cli/gtv/icon"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/style"
	"github.com/gtv-cli/gtv/util"
	"github.com/samber/lo"
)

var (
	errBack = errors.New("back")
	errQuit = errors.New("quit")
	errStay = errors.New("stay")
)

const (
	backLabel = "‹ Back"
	quitLabel = "Quit"
	playLabel = "Play"
)

// choose returns the URL of the picked entry, errBack or errQuit.
func (b *Browser) choose(dir *listing.Directory) (string, error) {
	title(b.out, dir)

	options := lo.Map(dir.Records, func(r *listing.Record, _ int) string {
		return label(r)
	})
	canGoBack := b.history.Len() > 1
	if canGoBack {
		options = append(options, backLabel)
	}
	options = append(options, quitLabel)

	i, err := b.selector(dir.Title, options)
	if err != nil {
		return "", err
	}

	switch {
	case i < len(dir.Records):
		return b.chooseAction(dir.Records[i])
	case canGoBack && i == len(dir.Records):
		return "", errBack
	default:
		return "", errQuit
	}
}

// chooseAction offers chapter jumps for videos that have them.
func (b *Browser) chooseAction(r *listing.Record) (string, error) {
	if len(r.Actions) == 0 {
		return r.URL, nil
	}

	options := []string{playLabel}
	for _, action := range r.Actions {
		options = append(options, action.Label)
	}
	options = append(options, backLabel)

	i, err := b.selector(r.Label, options)
	if err != nil {
		return "", err
	}

	switch {
	case i == 0:
		return r.URL, nil
	case i <= len(r.Actions):
		return r.Actions[i-1].URL, nil
	default:
		// back to the same directory
		return "", errStay
	}
}

func label(r *listing.Record) string {
	switch r.Kind {
	case listing.KindVideo:
		s := fmt.Sprintf("%s #%d %s", icon.Get(icon.Video), r.Episode, r.Label)
		if r.Duration > 0 {
			s += " (" + listing.SecondsToTime(r.Duration) + ")"
		}
		return s
	case listing.KindMore:
		return icon.Get(icon.More) + " " + r.Label
	case listing.KindPlaceholder:
		return icon.Get(icon.Empty) + " " + r.Label
	default:
		return icon.Get(icon.Folder) + " " + r.Label
	}
}

func title(out io.Writer, dir *listing.Directory) {
	if dir.Failed {
		fmt.Fprintln(out, style.ErrorTitle(dir.Title))
		return
	}
	fmt.Fprintln(out, style.Title(dir.Title))
}

func failLabel(msg string) string {
	return icon.Get(icon.Fail) + " " + style.Fg(color.Red)(msg)
}

func surveySelect(message string, options []string) (int, error) {
	var i int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: util.Max(util.Min(len(options), 20), 1),
	}
	err := survey.AskOne(prompt, &i)
	return i, err
}
