package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/log"
	"github.com/samber/lo"
)

// Fetcher is a blocking HTTP GET returning the response body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Prompter is the interactive input capability used when a search has no query.
type Prompter interface {
	// Input asks for free text. An empty answer cancels.
	Input(heading string) (string, error)
	// Notice shows an informational message and returns once acknowledged.
	Notice(message string) error
}

// Search prompt texts.
const (
	SearchHeading    = "Search"
	QueryTooShortMsg = "Please enter at least 3 characters."
)

// Client issues category, search and per-episode queries against the catalog.
type Client struct {
	fetcher  Fetcher
	prompter Prompter
	base     string
}

// New returns a Client rooted at baseURL. A nil prompter cancels every interactive search.
func New(fetcher Fetcher, prompter Prompter, baseURL string) *Client {
	if baseURL == "" {
		baseURL = constant.APIBaseURL
	}
	return &Client{
		fetcher:  fetcher,
		prompter: prompter,
		base:     strings.TrimRight(baseURL, "/"),
	}
}

// ValidateQuery reports ErrInvalidQuery for non-empty queries under the minimum length.
// The empty query is valid: it means the user cancelled.
func ValidateQuery(q string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(q))
	if n > 0 && n < constant.MinQueryLength {
		return fmt.Errorf("%w: %q", ErrInvalidQuery, q)
	}
	return nil
}

// Videos fetches one listing. A cancelled search returns an empty page.
func (c *Client) Videos(ctx context.Context, category Category, offset int, query string) (*Page, error) {
	var (
		endpoint string
		params   = url.Values{}
		extract  func(*envelope) []*videoDTO
	)

	switch category {
	case Recent:
		endpoint, extract = "/video/discovery/recent", discovery
	case MostViewed:
		endpoint, extract = "/video/discovery/views", discovery
	case AllByDate:
		if offset < 0 {
			offset = 0
		}
		endpoint, extract = "/search", results
		params.Set("sort", "date")
		params.Set("offset", strconv.Itoa(offset))
		params.Set("first", strconv.Itoa(constant.PageSize))
	case Search:
		q := c.resolveQuery(query)
		if q == "" {
			return &Page{}, nil
		}
		query = q
		endpoint, extract = "/search", results
		params.Set("query", q)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(category))
	}

	var env envelope
	if err := c.getJSON(ctx, endpoint, params, &env); err != nil {
		return nil, err
	}

	fetched := lo.FilterMap(extract(&env), func(dto *videoDTO, _ int) (*Video, bool) {
		if dto == nil {
			return nil, false
		}
		return dto.video(), true
	})

	page := &Page{
		Videos: lo.UniqBy(fetched, func(v *Video) int {
			return v.Episode
		}),
		Fetched: len(fetched),
	}
	if last, ok := lo.Last(fetched); ok {
		page.LastEpisode = last.Episode
	}
	if category == Search {
		page.Query = query
	}
	return page, nil
}

// resolveQuery returns a valid query or "" when the user cancelled.
func (c *Client) resolveQuery(supplied string) string {
	q := strings.TrimSpace(supplied)
	if q == "" {
		q = c.ask()
	}

	for q != "" {
		if err := ValidateQuery(q); err == nil {
			return q
		}

		log.Debugf("rejecting search query %q", q)
		if c.prompter == nil {
			return ""
		}
		if err := c.prompter.Notice(QueryTooShortMsg); err != nil {
			return ""
		}
		q = c.ask()
	}

	return ""
}

func (c *Client) ask() string {
	if c.prompter == nil {
		return ""
	}
	in, err := c.prompter.Input(SearchHeading)
	if err != nil {
		log.Debugf("search input cancelled: %v", err)
		return ""
	}
	return strings.TrimSpace(in)
}

// Chapters returns the chapter markers of one episode, ordered by offset.
func (c *Client) Chapters(ctx context.Context, episode int) ([]*Chapter, error) {
	var info struct {
		Chapters []*Chapter `json:"chapters"`
	}
	if err := c.getJSON(ctx, "/video/info", episodeParams(episode), &info); err != nil {
		return nil, err
	}

	chapters := lo.Compact(info.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Offset < chapters[j].Offset
	})
	return chapters, nil
}

// PlaylistURL resolves the playable stream URL of one episode.
func (c *Client) PlaylistURL(ctx context.Context, episode int) (string, error) {
	var pl struct {
		PlaylistURL string `json:"playlist_url"`
	}
	if err := c.getJSON(ctx, "/video/playlist", episodeParams(episode), &pl); err != nil {
		return "", err
	}
	if pl.PlaylistURL == "" {
		return "", &RetrievalError{Endpoint: "/video/playlist", Err: errors.New("empty playlist_url")}
	}
	return pl.PlaylistURL, nil
}

func episodeParams(episode int) url.Values {
	return url.Values{"episode": []string{strconv.Itoa(episode)}}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, target any) error {
	u := c.base + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	body, err := c.fetcher.Get(ctx, u)
	if err != nil {
		return &RetrievalError{Endpoint: endpoint, Err: err}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &RetrievalError{Endpoint: endpoint, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// envelope covers both list shapes: discovery endpoints and search results.
type envelope struct {
	Discovery []*videoDTO `json:"discovery"`
	Results   struct {
		Videos []*videoDTO `json:"videos"`
	} `json:"results"`
}

func discovery(e *envelope) []*videoDTO { return e.Discovery }
func results(e *envelope) []*videoDTO   { return e.Results.Videos }

type videoDTO struct {
	Episode     int    `json:"episode"`
	Title       string `json:"title"`
	VideoLength int    `json:"video_length"`
	CreatedAt   string `json:"created_at"`
	PreviewURL  string `json:"preview_url"`
	Views       int    `json:"views"`
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func (d *videoDTO) video() *Video {
	v := &Video{
		Episode:     d.Episode,
		Title:       d.Title,
		VideoLength: d.VideoLength,
		PreviewURL:  d.PreviewURL,
		Views:       d.Views,
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, d.CreatedAt); err == nil {
			v.CreatedAt = t
			break
		}
	}
	return v
}
