package listing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/log"
	"github.com/samber/lo"
)

// Navigation actions and parameter names shared with the router.
const (
	ActionListing = "listing"
	ActionPlay    = "play"
	ActionJump    = "jump_to_chapter"

	ParamAction   = "action"
	ParamCategory = "category"
	ParamOffset   = "offset"
	ParamSearch   = "search_str"
	ParamVideo    = "video"
	ParamEpisode  = "episode"
)

// MoreLabel is the label of the continuation record.
const MoreLabel = "... more"

// VideoSource lists videos of a category.
type VideoSource interface {
	Videos(ctx context.Context, category catalog.Category, offset int, query string) (*catalog.Page, error)
}

// ChapterSource returns the chapters of an episode.
type ChapterSource interface {
	Get(ctx context.Context, episode int) ([]*catalog.Chapter, error)
}

// URLBuilder encodes navigation parameters into a URL the router understands.
type URLBuilder interface {
	URL(params url.Values) string
}

// Assembler builds directories from catalog results.
type Assembler struct {
	videos    VideoSource
	chapters  ChapterSource
	urls      URLBuilder
	showViews bool
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithViews prefixes plots with the view count.
func WithViews(show bool) Option {
	return func(a *Assembler) {
		a.showViews = show
	}
}

// New returns an Assembler.
func New(videos VideoSource, chapters ChapterSource, urls URLBuilder, opts ...Option) *Assembler {
	a := &Assembler{videos: videos, chapters: chapters, urls: urls}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Root lists the categories as folders.
func (a *Assembler) Root() *Directory {
	dir := &Directory{Title: constant.Genre}
	for _, c := range catalog.Categories() {
		dir.Records = append(dir.Records, &Record{
			Kind:   KindCategory,
			Label:  c.Title(),
			Title:  c.Title(),
			Genre:  constant.Genre,
			URL:    a.urls.URL(ListingParams(c, 0, "")),
			Folder: true,
		})
	}
	return dir
}

// Assemble fetches one listing and builds its directory.
func (a *Assembler) Assemble(ctx context.Context, category catalog.Category, offset int, query string) (*Directory, error) {
	page, err := a.videos.Videos(ctx, category, offset, query)
	if err != nil {
		return nil, err
	}
	videos, query := page.Videos, page.Query

	dir := &Directory{Title: category.Title(), Query: query}
	for _, video := range videos {
		dir.Records = append(dir.Records, a.video(ctx, video))
	}

	if hasNextPage(category, page) {
		dir.Records = append(dir.Records, &Record{
			Kind:   KindMore,
			Label:  MoreLabel,
			Title:  MoreLabel,
			Genre:  constant.Genre,
			URL:    a.urls.URL(ListingParams(category, offset+constant.PageSize, "")),
			Folder: true,
		})
	}

	if category == catalog.Search {
		if len(videos) == 0 {
			log.Infof("no title found when searching for %q", query)
			dir.Records = append(dir.Records, &Record{
				Kind:   KindPlaceholder,
				Label:  fmt.Sprintf("No title found for %q", query),
				Title:  fmt.Sprintf("No title found when searching for %q", query),
				Genre:  constant.Genre,
				URL:    a.urls.URL(ListingParams(catalog.Search, 0, "")),
				Folder: true,
			})
		} else {
			dir.SortByDate = true
		}
	}

	return dir, nil
}

func (a *Assembler) video(ctx context.Context, video *catalog.Video) *Record {
	record := &Record{
		Kind:     KindVideo,
		Label:    video.Title,
		Title:    video.Title,
		Genre:    constant.Genre,
		Episode:  video.Episode,
		Duration: video.VideoLength,
		Created:  video.CreatedAt,
		Thumb:    video.PreviewURL,
		Views:    video.Views,
		URL:      a.urls.URL(PlayParams(video.Episode)),
		Playable: true,
	}

	chapters, err := a.chapters.Get(ctx, video.Episode)
	if err != nil {
		log.Episode(video.Episode).Warnf("chapters unavailable: %v", err)
	}

	chapters = lo.Filter(chapters, func(c *catalog.Chapter, _ int) bool {
		return c.Offset >= 0 && (video.VideoLength <= 0 || c.Offset <= video.VideoLength)
	})

	var lines []string
	if a.showViews {
		lines = append(lines, fmt.Sprintf("%d views", video.Views))
	}

	for _, chapter := range chapters {
		stamp := SecondsToTime(chapter.Offset)
		lines = append(lines, fmt.Sprintf("[%s] %s", stamp, chapter.Title))
		record.Actions = append(record.Actions, Action{
			Label: fmt.Sprintf("jump to [%s]: %s", stamp, chapter.Title),
			URL:   a.urls.URL(JumpParams(video.Episode, chapter.Offset)),
		})
	}

	record.Plot = strings.Join(lines, "\n")
	return record
}

// hasNextPage reports whether a full date-ordered page may have a successor.
// Fullness counts what the catalog returned, duplicates included.
// Episode 1 is the oldest, so a page ending on it is the last one.
func hasNextPage(category catalog.Category, page *catalog.Page) bool {
	if !category.Paginated() || page.Fetched != constant.PageSize {
		return false
	}
	return page.LastEpisode != constant.TerminalEpisode
}

// ListingParams are the navigation parameters of a listing.
func ListingParams(category catalog.Category, offset int, query string) url.Values {
	params := url.Values{
		ParamAction:   {ActionListing},
		ParamCategory: {category.String()},
	}
	if offset > 0 {
		params.Set(ParamOffset, strconv.Itoa(offset))
	}
	if query != "" {
		params.Set(ParamSearch, query)
	}
	return params
}

// PlayParams are the navigation parameters playing episode.
func PlayParams(episode int) url.Values {
	return url.Values{
		ParamAction: {ActionPlay},
		ParamVideo:  {strconv.Itoa(episode)},
	}
}

// JumpParams are the navigation parameters seeking episode to offset seconds.
func JumpParams(episode, offset int) url.Values {
	return url.Values{
		ParamAction:  {ActionJump},
		ParamEpisode: {strconv.Itoa(episode)},
		ParamOffset:  {strconv.Itoa(offset)},
	}
}
