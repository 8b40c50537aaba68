// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog API - these keys configure access to the remote video catalog.
const (
	APIBaseURL   = "api.base_url"
	APIUserAgent = "api.user_agent"
	APITimeout   = "api.timeout"
)

// Chapter Cache - these keys bound the per-episode chapter memo.
const (
	ChaptersCacheSize = "chapters.cache_size"
	ChaptersPersist   = "chapters.persist"
	ChaptersLifetime  = "chapters.lifetime"
)

// Playback - these keys tune resume handling and the progress polling loop.
const (
	PlaybackResume        = "playback.resume"
	PlaybackInterval      = "playback.interval"
	PlaybackStartInterval = "playback.start_interval"
	PlaybackStartTimeout  = "playback.start_timeout"
	PlaybackJumpTimeout   = "playback.jump_timeout"
)

// Media Player - these keys locate the mpv binary and its IPC socket.
const (
	PlayerBinary = "player.binary"
	PlayerSocket = "player.socket"
)

// Listing
const (
	ListingShowViews = "listing.show_views"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
