// Package chapters memoizes per-episode chapter lists so repeated listings
// do not refetch episode info.
package chapters

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// DefaultSize is the number of episodes kept in memory.
const DefaultSize = 100

// Source fetches the chapters of one episode.
type Source interface {
	Chapters(ctx context.Context, episode int) ([]*catalog.Chapter, error)
}

// Cache is a bounded LRU over a Source, optionally backed by a JSON file on disk.
type Cache struct {
	source  Source
	entries *lru.Cache[int, []*catalog.Chapter]
	size    int

	disk     *gache.Cache[map[int]*diskEntry]
	lifetime time.Duration
	mu       sync.Mutex
}

type diskEntry struct {
	Chapters []*catalog.Chapter `json:"chapters"`
	Stored   time.Time          `json:"stored"`
}

// Option customizes a Cache.
type Option func(*Cache)

// WithPersistence keeps entries in a JSON file at path for lifetime.
func WithPersistence(path string, lifetime time.Duration) Option {
	return func(c *Cache) {
		c.lifetime = lifetime
		c.disk = gache.New[map[int]*diskEntry](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		})
	}
}

// New returns a cache holding at most size episodes. Non-positive sizes use DefaultSize.
func New(source Source, size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[int, []*catalog.Chapter](size)
	if err != nil {
		return nil, fmt.Errorf("create chapter cache: %w", err)
	}

	c := &Cache{source: source, entries: entries, size: size}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the chapters of episode, fetching them at most once while cached.
// Failed fetches are not cached.
func (c *Cache) Get(ctx context.Context, episode int) ([]*catalog.Chapter, error) {
	if chapters, ok := c.entries.Get(episode); ok {
		return chapters, nil
	}

	if chapters, ok := c.loadDisk(episode).Get(); ok {
		c.entries.Add(episode, chapters)
		return chapters, nil
	}

	chapters, err := c.source.Chapters(ctx, episode)
	if err != nil {
		return nil, err
	}

	c.entries.Add(episode, chapters)
	c.storeDisk(episode, chapters)
	return chapters, nil
}

// Peek returns a cached value without fetching or touching recency.
func (c *Cache) Peek(episode int) mo.Option[[]*catalog.Chapter] {
	if chapters, ok := c.entries.Peek(episode); ok {
		return mo.Some(chapters)
	}
	return mo.None[[]*catalog.Chapter]()
}

func (c *Cache) loadDisk(episode int) mo.Option[[]*catalog.Chapter] {
	if c.disk == nil {
		return mo.None[[]*catalog.Chapter]()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.disk.Get()
	if err != nil {
		log.Debugf("chapter disk cache unreadable: %v", err)
		return mo.None[[]*catalog.Chapter]()
	}
	if expired || data == nil {
		return mo.None[[]*catalog.Chapter]()
	}

	entry, ok := data[episode]
	if !ok || entry == nil || c.stale(entry) {
		return mo.None[[]*catalog.Chapter]()
	}
	return mo.Some(entry.Chapters)
}

func (c *Cache) storeDisk(episode int, chapters []*catalog.Chapter) {
	if c.disk == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.disk.Get()
	if err != nil || expired || data == nil {
		data = make(map[int]*diskEntry)
	}

	for ep, entry := range data {
		if entry == nil || c.stale(entry) {
			delete(data, ep)
		}
	}

	data[episode] = &diskEntry{Chapters: chapters, Stored: time.Now()}
	evictOldest(data, c.size)

	if err := c.disk.Set(data); err != nil {
		log.Warnf("persist chapters of episode %d: %v", episode, err)
	}
}

func (c *Cache) stale(entry *diskEntry) bool {
	return c.lifetime > 0 && time.Since(entry.Stored) > c.lifetime
}

// evictOldest trims data to at most size entries, dropping the oldest stored first.
func evictOldest(data map[int]*diskEntry, size int) {
	if len(data) <= size {
		return
	}

	episodes := make([]int, 0, len(data))
	for ep := range data {
		episodes = append(episodes, ep)
	}
	sort.Slice(episodes, func(i, j int) bool {
		return data[episodes[i]].Stored.Before(data[episodes[j]].Stored)
	})

	for _, ep := range episodes[:len(data)-size] {
		delete(data, ep)
	}
}
