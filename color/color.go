// Package color names the terminal colors gtv renders with.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, following the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	HiRed  = New("9")
	Gray   = New("8")
)

// Brand colors of the catalog site.
var (
	Accent     = New("#ff7b00")
	AccentDark = New("#1f1f2e")
	Light      = New("#f5f5f5")
)
