// Package style composes the lipgloss styles used for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gtv-cli/gtv/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a style with foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Text helpers.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a directory heading.
var Title = func(s string) string {
	return Colored(color.Light, color.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a heading for failed directories.
var ErrorTitle = func(s string) string {
	return Colored(color.Light, color.Red).Bold(true).Padding(0, 1).Render(s)
}

// Tag renders s as a small padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Episode renders an episode number tag such as "#812".
var Episode = func(s string) string {
	return Tag(color.AccentDark, color.Accent)(s)
}

// Timestamp renders chapter offsets.
var Timestamp = Fg(color.Cyan)

// Plot renders a record's description block indented below its label.
func Plot(width int) func(string) string {
	return func(s string) string {
		return New().Faint(true).PaddingLeft(4).Width(width).Render(s)
	}
}
