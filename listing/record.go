// Package listing turns catalog results into renderable directory records:
// one playable record per video with its chapters as plot lines and jump
// actions, plus continuation and empty-search records.
package listing

import (
	"fmt"
	"time"
)

// Kind tells records apart for renderers.
type Kind string

const (
	KindCategory    Kind = "category"
	KindVideo       Kind = "video"
	KindMore        Kind = "more"
	KindPlaceholder Kind = "placeholder"
)

// Action is a context action attached to a record.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Record is one entry of a directory.
type Record struct {
	Kind     Kind      `json:"kind" jsonschema:"enum=category,enum=video,enum=more,enum=placeholder"`
	Label    string    `json:"label"`
	Title    string    `json:"title"`
	Plot     string    `json:"plot,omitempty"`
	Genre    string    `json:"genre"`
	Episode  int       `json:"episode,omitempty"`
	Duration int       `json:"duration,omitempty" jsonschema:"description=Runtime in seconds."`
	Created  time.Time `json:"created,omitempty"`
	Thumb    string    `json:"thumb,omitempty"`
	Views    int       `json:"views,omitempty"`
	URL      string    `json:"url"`
	Folder   bool      `json:"folder"`
	Playable bool      `json:"playable"`
	Actions  []Action  `json:"actions,omitempty"`
}

func (r *Record) String() string {
	return r.Label
}

// Directory is a titled list of records.
type Directory struct {
	Title   string    `json:"title"`
	Records []*Record `json:"records"`

	// Query is the effective search query, empty for other categories and cancelled searches.
	Query string `json:"query,omitempty"`

	// SortByDate marks directories the host may offer sorted by date added.
	SortByDate bool `json:"sort_by_date"`
	// Failed marks a directory rendered after a retrieval error.
	Failed bool `json:"failed"`
}

// SecondsToTime formats s as H:MM:SS. Hours are not bounded, negative input is 0.
func SecondsToTime(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}
