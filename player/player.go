// Package player drives an external media player for stream playback.
// The implementation targets mpv via its JSON-IPC interface on a fixed socket,
// so later invocations can reach a player started by an earlier one.
package player

// Media describes what to play.
type Media struct {
	URL   string
	Title string

	// StartAt is the position in seconds playback begins at. Zero starts from the beginning.
	StartAt float64
}

// Player encapsulates the capabilities playback monitoring relies on.
type Player interface {
	// Play starts playback of media. If a player instance is already running,
	// the media replaces the current file in it.
	Play(media Media) error

	// IsPlaying reports whether the player currently has a media file loaded and positioned.
	IsPlaying() bool

	// TimePos retrieves the current absolute playback position in seconds.
	TimePos() (float64, error)

	// Seek moves playback to an absolute position in seconds.
	Seek(seconds float64) error
}
