// Package inline lists a category without interaction, for scripts.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/log"
	"github.com/samber/lo"
)

// Assembler builds a listing.
type Assembler interface {
	Assemble(ctx context.Context, category catalog.Category, offset int, query string) (*listing.Directory, error)
}

// StreamSource resolves an episode to its playlist URL.
type StreamSource interface {
	PlaylistURL(ctx context.Context, episode int) (string, error)
}

// Run writes the picked videos of one listing to options.Out, one navigation
// URL (or stream URL) per line, or as a JSON document.
func Run(ctx context.Context, assembler Assembler, streams StreamSource, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Category == catalog.Search {
		if err := catalog.ValidateQuery(options.Query); err != nil {
			return err
		}
	}

	dir, err := assembler.Assemble(ctx, options.Category, options.Offset, options.Query)
	if err != nil {
		return err
	}

	records := lo.Filter(dir.Records, func(r *listing.Record, _ int) bool {
		return r.Kind == listing.KindVideo
	})
	if picker, ok := options.Picker.Get(); ok {
		records = picker(records)
	}

	output := &Output{
		Category: options.Category.String(),
		Offset:   options.Offset,
		Query:    dir.Query,
	}
	if lo.ContainsBy(dir.Records, func(r *listing.Record) bool { return r.Kind == listing.KindMore }) {
		output.Next = options.Offset + constant.PageSize
	}

	for _, record := range records {
		video := &Video{Record: record}
		if options.Streams {
			stream, err := streams.PlaylistURL(ctx, record.Episode)
			if err != nil {
				log.Episode(record.Episode).Warnf("stream unavailable: %v", err)
			} else {
				video.Stream = stream
			}
		}
		output.Result = append(output.Result, video)
	}

	if options.Json {
		data, err := asJson(output)
		if err != nil {
			return err
		}
		_, err = options.Out.Write(data)
		return err
	}

	for _, video := range output.Result {
		line := video.URL
		if options.Streams {
			if video.Stream == "" {
				continue
			}
			line = video.Stream
		}
		if _, err := fmt.Fprintln(options.Out, line); err != nil {
			return err
		}
	}

	return nil
}
