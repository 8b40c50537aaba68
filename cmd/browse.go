package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gtv-cli/gtv/browse"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

// browseCmd runs the interactive loop.
var browseCmd = &cobra.Command{
	Use:     "browse [params]",
	Short:   "Browse the catalog interactively",
	Long:    "Pick categories, videos and chapters from menus. Playback returns to the listing it was started from.",
	Aliases: []string{"b"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a, err := newApp(cmd.OutOrStdout(), true)
		handleErr(err)

		start := ""
		if len(args) > 0 {
			start = args[0]
		}

		browser := browse.New(cmd.OutOrStdout())
		handleErr(browser.Run(ctx, a.router(browser), start))
	},
}
