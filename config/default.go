package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/gtv-cli/gtv/color"
	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/key"
	"github.com/gtv-cli/gtv/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered configuration key with its default.
type Field struct {
	Key         string
	Value       any
	Description string
	// Unit names what an integer value counts, if anything.
	Unit string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var sb strings.Builder
	lo.Must0(fieldTemplate.Execute(&sb, f))
	return sb.String()
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Unit        string `json:"unit,omitempty"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Unit:        f.Unit,
		Type:        reflect.TypeOf(f.Value).String(),
		Env:         f.Env(),
	})
}

const (
	unitSeconds = "seconds"
	unitMillis  = "milliseconds"
	unitHours   = "hours"
)

var fields = []Field{
	{key.APIBaseURL, constant.APIBaseURL, "Root of the versioned catalog API", ""},
	{key.APIUserAgent, constant.UserAgent, "User-Agent header sent with every catalog request", ""},
	{key.APITimeout, 30, "Timeout of a single catalog request.\n0 disables the timeout", unitSeconds},

	{key.ChaptersCacheSize, 100, "Number of episodes whose chapters are kept in memory", ""},
	{key.ChaptersPersist, false, "Keep fetched chapters on disk between invocations", ""},
	{key.ChaptersLifetime, 24, "How long chapters stay valid on disk", unitHours},

	{key.PlaybackResume, true, "Start playback at the last saved position", ""},
	{key.PlaybackInterval, 1000, "Progress polling interval while playing", unitMillis},
	{key.PlaybackStartInterval, 100, "Polling interval while waiting for playback to start", unitMillis},
	{key.PlaybackStartTimeout, 30, "Stop waiting for playback to start after this long", unitSeconds},
	{key.PlaybackJumpTimeout, 10, "Give up a chapter jump if playback has not started after this long", unitSeconds},

	{key.PlayerBinary, "mpv", "mpv executable used for playback", ""},
	{key.PlayerSocket, "", "mpv IPC socket path.\nEmpty uses a fixed path in the temp directory", ""},

	{key.ListingShowViews, false, "Prefix video descriptions with the view count", ""},
	{key.SearchShowQuerySuggestions, true, "Show query suggestions when searching", ""},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)", ""},

	{key.LogsWrite, false, "Write logs", ""},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", ""},
	{key.LogsJson, false, "Use json format for logs", ""},
	{key.CliColored, true, "Enable colored CLI output", ""},
}

// Default maps every configuration key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, ok := Default[f.Key]; ok {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var fieldTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"key":      style.Fg(color.Accent),
	"label":    style.Fg(color.Blue),
	"current":  func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl":       highlight,
}).Parse(`{{ faint .Description }}
{{ label "Key:" }}     {{ key .Key }}
{{ label "Env:" }}     {{ .Env }}
{{ label "Value:" }}   {{ hl (current .Key) }}
{{ label "Default:" }} {{ hl .Value }}
{{ label "Type:" }}    {{ typename .Value }}{{ with .Unit }} ({{ . }}){{ end }}`))
