// Package cmd implements the gtv command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gtv-cli/gtv/color"
	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/icon"
	"github.com/gtv-cli/gtv/key"
	"github.com/gtv-cli/gtv/log"
	"github.com/gtv-cli/gtv/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().Bool("urls", false, "Print the navigation URL of every entry")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-resume", false, "Start playback from the beginning, ignoring saved positions")
}

// rootCmd dispatches a single navigation action, the way a media center host
// invokes a plugin: no argument lists the categories.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [params]",
	Short: "Browse and play gronkh.tv streams from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Accent).Render("    - Browse and play gronkh.tv streams from the terminal"),
	Example: `  gtv
  gtv "?action=listing&category=all&offset=25"
  gtv "gtv://?action=play&video=812"
  gtv "action=jump_to_chapter&episode=812&offset=3661"`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-resume")) {
			viper.Set(key.PlaybackResume, false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a, err := newApp(cmd.OutOrStdout(), true, host.WithURLs(lo.Must(cmd.Flags().GetBool("urls"))))
		handleErr(err)

		handleErr(a.router(a.terminal).Dispatch(ctx, strings.Join(args, "")))
	},
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
