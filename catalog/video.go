// Package catalog talks to the gronkh.tv catalog API and normalizes its responses.
package catalog

import (
	"fmt"
	"time"
)

// Video is one catalog entry. Episode is the stable primary key.
type Video struct {
	Episode     int       `json:"episode" jsonschema:"description=Stable episode id."`
	Title       string    `json:"title"`
	VideoLength int       `json:"video_length" jsonschema:"description=Runtime in seconds."`
	CreatedAt   time.Time `json:"created_at"`
	PreviewURL  string    `json:"preview_url"`
	Views       int       `json:"views"`
}

func (v *Video) String() string {
	return fmt.Sprintf("#%d %s", v.Episode, v.Title)
}

// Page is one listing as returned by the catalog.
type Page struct {
	// Videos are unique by episode, in catalog order.
	Videos []*Video
	// Query is the effective search query, empty outside searches and when cancelled.
	Query string
	// Fetched counts the entries the catalog returned before de-duplication.
	Fetched int
	// LastEpisode is the episode of the last returned entry.
	LastEpisode int
}

// Chapter is a named offset, in seconds, inside a video.
type Chapter struct {
	Offset int    `json:"offset"`
	Title  string `json:"title"`
}
