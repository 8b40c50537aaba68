package constant

// APIBaseURL is the versioned root of the gronkh.tv catalog API.
const APIBaseURL = "https://api.gronkh.tv/v1"

const (
	// PageSize is the number of videos requested per all-by-date page. The API caps it at 25.
	PageSize = 25

	// TerminalEpisode is the oldest episode. Pagination stops once it has been listed.
	TerminalEpisode = 1

	// MinQueryLength is the shortest accepted search query, in runes.
	MinQueryLength = 3
)

// PluginBase prefixes every navigation URL the listings link to.
const PluginBase = App + "://"
