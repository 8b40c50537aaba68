// Package query remembers successful search queries and suggests them back
// while the user types.
package query

import (
	"strings"
	"sync"

	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/key"
	"github.com/gtv-cli/gtv/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

// History is a ranked set of queries persisted as JSON.
type History struct {
	cacher      *gache.Cache[map[string]*queryRecord]
	mu          sync.Mutex
	suggestions map[string][]*queryRecord
}

// New returns a history stored at path.
func New(path string) *History {
	return &History{
		cacher: gache.New[map[string]*queryRecord](
			&gache.Options{
				Path:       path,
				FileSystem: &filesystem.GacheFs{},
			},
		),
		suggestions: make(map[string][]*queryRecord),
	}
}

var defaultHistory = sync.OnceValue(func() *History {
	return New(where.Queries())
})

// Remember records q in the default history.
func Remember(q string) error {
	return defaultHistory().Remember(q, 1)
}

// SuggestMany returns suggestions from the default history.
func SuggestMany(q string) []string {
	return defaultHistory().SuggestMany(q)
}

// Remember adds weight to the rank of q, recording it if new.
func (h *History) Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cached, expired, err := h.cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(h.suggestions)
	return h.cacher.Set(cached)
}

// Suggest returns the highest ranked query matching q.
func (h *History) Suggest(q string) mo.Option[string] {
	suggestions := h.SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
// It is empty when search.show_query_suggestions is off.
func (h *History) SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	h.mu.Lock()
	defer h.mu.Unlock()

	records, ok := h.suggestions[q]
	if !ok {
		cached, expired, err := h.cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		h.suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
