package catalog

import (
	"fmt"
	"strings"
)

// Category selects the query shape used against the catalog.
type Category int

const (
	Recent Category = iota + 1
	MostViewed
	AllByDate
	Search
)

var categoryTokens = map[Category]string{
	Recent:     "recent",
	MostViewed: "views",
	AllByDate:  "all",
	Search:     "search",
}

var categoryTitles = map[Category]string{
	Recent:     "Recent streams",
	MostViewed: "Most viewed",
	AllByDate:  "All streams",
	Search:     "Search",
}

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{Recent, MostViewed, AllByDate, Search}
}

// ParseCategory maps a navigation token to its Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, token := range categoryTokens {
		if token == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// String returns the stable token carried in navigation URLs.
func (c Category) String() string {
	if token, ok := categoryTokens[c]; ok {
		return token
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title is the human-facing label.
func (c Category) Title() string {
	return categoryTitles[c]
}

// Paginated reports whether the category is served page by page.
func (c Category) Paginated() bool {
	return c == AllByDate
}
