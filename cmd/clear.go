package cmd

import (
	"fmt"

	"github.com/gtv-cli/gtv/icon"
	"github.com/gtv-cli/gtv/resume"
	"github.com/gtv-cli/gtv/util"
	"github.com/gtv-cli/gtv/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deleting(location func() string) func() error {
	return func() error {
		return util.Delete(location())
	}
}

var clearTargets = []clearTarget{
	{"resume points", "resume", mo.Some("r"), func() error { return resume.New(where.Resume()).Clear() }},
	{"chapter cache", "chapters", mo.Some("c"), deleting(where.Chapters)},
	{"search queries", "queries", mo.Some("q"), deleting(where.Queries)},
	{"cache directory", "cache", mo.None[string](), deleting(where.Cache)},
	{"running player", "player", mo.Some("p"), func() error { return newPlayer().Close() }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes stored state.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear resume points, cached chapters and search queries, or stop the player",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("Clearing %s...", target.name))
			err := target.clear()
			erase()
			handleErr(err)
			cmd.Printf("%s cleared %s\n", icon.Get(icon.Success), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
