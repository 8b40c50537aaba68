package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows the videos of a listing.
type Picker func([]*listing.Record) []*listing.Record

// Options of one inline run.
type Options struct {
	Out      io.Writer
	Category catalog.Category
	Offset   int
	Query    string
	Json     bool
	Picker   mo.Option[Picker]
	// Streams resolves the playlist URL of every picked video.
	Streams bool
}

// ParsePicker parses a video selector:
//
//	first, last, all
//	[index]      by position, starting at 0
//	#[episode]   by episode id
//	@[text]@     titles containing text
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(records []*listing.Record) []*listing.Record {
			return lo.Slice(records, 0, 1)
		}, nil
	case "last":
		return func(records []*listing.Record) []*listing.Record {
			if len(records) == 0 {
				return records
			}
			return records[len(records)-1:]
		}, nil
	case "all":
		return func(records []*listing.Record) []*listing.Record {
			return records
		}, nil
	}

	if strings.HasPrefix(description, "#") {
		episode, err := strconv.Atoi(description[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid episode: %s", description)
		}
		return func(records []*listing.Record) []*listing.Record {
			return lo.Filter(records, func(r *listing.Record, _ int) bool {
				return r.Episode == episode
			})
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(records []*listing.Record) []*listing.Record {
			return lo.Filter(records, func(r *listing.Record, _ int) bool {
				return strings.Contains(strings.ToLower(r.Title), sub)
			})
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(records []*listing.Record) []*listing.Record {
			if len(records) == 0 {
				return records
			}
			i := int(util.Min(idx, uint64(len(records)-1)))
			return records[i : i+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid video selector: %s", description)
}
