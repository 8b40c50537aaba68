// Package icon renders the symbols prefixed to terminal output.
//
// Icons can be displayed as emoji, nerd-font glyphs or plain ASCII
// depending on user preference.
package icon

import (
	"github.com/gtv-cli/gtv/key"
	"github.com/spf13/viper"
)

// Variants.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every variant accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Question
	Folder
	Video
	More
	Search
	Chapter
	Resume
	Empty
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!"},
	Question: {emoji: "🤔", nerd: "", plain: "?"},
	Folder:   {emoji: "📁", nerd: "", plain: "+"},
	Video:    {emoji: "📺", nerd: "", plain: ">"},
	More:     {emoji: "⏬", nerd: "", plain: "…"},
	Search:   {emoji: "🔍", nerd: "", plain: "/"},
	Chapter:  {emoji: "🔖", nerd: "", plain: "·"},
	Resume:   {emoji: "⏯️", nerd: "", plain: "»"},
	Empty:    {emoji: "🕳️", nerd: "", plain: "-"},
}

func (d *iconDef) get(variant string) string {
	switch variant {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get(viper.GetString(key.IconsVariant))
}
