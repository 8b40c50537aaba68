// Package host provides the environment gtv runs in: how navigation URLs look,
// how directories are shown, how the user is asked for input and how a playable
// result reaches the player.
//
// Capability interfaces are declared by the packages consuming them
// (catalog.Prompter, listing.URLBuilder, router.Renderer, playback.Resolver).
// Terminal implements all of them for a plain terminal.
package host

import (
	"net/url"
	"strings"
)

// Playable is the result of a play action handed to the host.
type Playable struct {
	Episode int
	URL     string
	Title   string

	// StartAt is the resume position in seconds, zero to start from the beginning.
	StartAt float64
	// Total is the last known duration in seconds, zero when unknown.
	Total float64
}

// PluginURL builds navigation URLs of the form base?key=value&...
type PluginURL struct {
	Base string
}

// URL encodes params with keys in sorted order.
func (p PluginURL) URL(params url.Values) string {
	encoded := params.Encode()
	if encoded == "" {
		return p.Base
	}
	return p.Base + "?" + encoded
}

// Query returns the parameter part of a navigation URL, accepting full URLs,
// bare query strings and query strings with a leading '?'.
func Query(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[i+1:]
	}
	if strings.Contains(raw, "://") {
		return ""
	}
	return raw
}
