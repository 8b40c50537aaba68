package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"reflect"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/inline"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/query"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("category", "c", catalog.Recent.String(), "Category to list: recent, views, all or search")
	inlineCmd.Flags().IntP("offset", "o", 0, "Offset into the all-by-date listing")
	inlineCmd.Flags().StringP("query", "q", "", "Search query, implies --category search")
	inlineCmd.Flags().StringP("videos", "V", "", "Select videos: first, last, all, [index], #[episode] or @[text]@")
	inlineCmd.Flags().BoolP("json", "j", false, "Write a JSON document")
	inlineCmd.Flags().BoolP("streams", "s", false, "Resolve the stream URL of every selected video")
	inlineCmd.Flags().String("output", "", "Write to a file instead of stdout")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(catalog.Categories(), func(c catalog.Category, _ int) string {
			return c.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd lists a category without interaction.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "List a category without interaction, for scripts",
	Long: `List a category and print one navigation URL per video, or a JSON document.

Video selectors:
  first - first video in the list
  last - last video in the list
  all - every video
  [number] - select video by index (starting from 0)
  #[episode] - select video by episode id
  @[substring]@ - select videos by title substring`,
	Example: `  gtv inline -c all -o 25 --json
  gtv inline -q minecraft -V first --streams`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		category, err := catalog.ParseCategory(lo.Must(cmd.Flags().GetString("category")))
		handleErr(err)

		q := lo.Must(cmd.Flags().GetString("query"))
		if q != "" {
			category = catalog.Search
		}

		picker := mo.None[inline.Picker]()
		if selector := lo.Must(cmd.Flags().GetString("videos")); selector != "" {
			fn, err := inline.ParsePicker(selector)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Category: category,
			Offset:   lo.Must(cmd.Flags().GetInt("offset")),
			Query:    q,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Picker:   picker,
			Streams:  lo.Must(cmd.Flags().GetBool("streams")),
		}

		handleErr(writeOutput(cmd.OutOrStdout(), lo.Must(cmd.Flags().GetString("output")), func(w io.Writer) error {
			a, err := newApp(w, false)
			if err != nil {
				return err
			}

			options.Out = w
			return inline.Run(ctx, a.assembler, a.catalog, options)
		}))
	},
}

// writeOutput runs write against path, or against out when path is empty.
// The file is closed before returning and removed when write fails.
func writeOutput(out io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(out)
	}

	fs := filesystem.API()
	file, err := fs.Create(path)
	if err != nil {
		return err
	}

	err = write(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(path)
	}
	return err
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("directory", "d", false, "Generate the schema of a rendered directory instead")
}

// inlineSchemaCmd prints the JSON schema of inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch t.Name() {
			case "Output", "Video":
				return "inline." + t.Name()
			}
			return t.Name()
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("directory")) {
			schema = reflector.Reflect(&listing.Directory{})
		} else {
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
