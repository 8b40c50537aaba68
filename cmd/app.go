package cmd

import (
	"io"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/chapters"
	"github.com/gtv-cli/gtv/config"
	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/key"
	"github.com/gtv-cli/gtv/listing"
	"github.com/gtv-cli/gtv/network"
	"github.com/gtv-cli/gtv/playback"
	"github.com/gtv-cli/gtv/player"
	"github.com/gtv-cli/gtv/query"
	"github.com/gtv-cli/gtv/resume"
	"github.com/gtv-cli/gtv/router"
	"github.com/gtv-cli/gtv/where"
	"github.com/spf13/viper"
)

// app holds the components of one invocation.
type app struct {
	catalog   *catalog.Client
	assembler *listing.Assembler
	player    *player.MPV
	terminal  *host.Terminal
	playback  *playback.Controller
}

// newPlayer drives the mpv configured by player.binary and player.socket.
func newPlayer() *player.MPV {
	socket := viper.GetString(key.PlayerSocket)
	if socket == "" {
		socket = where.Socket()
	}
	return player.NewMPV(viper.GetString(key.PlayerBinary), socket)
}

// newApp wires the components from configuration. Interactive apps prompt for
// search queries, others cancel searches without a query.
func newApp(out io.Writer, interactive bool, termOpts ...host.TerminalOption) (*app, error) {
	mpv := newPlayer()

	termOpts = append([]host.TerminalOption{host.WithSuggestions(query.SuggestMany)}, termOpts...)
	term := host.NewTerminal(out, mpv, termOpts...)

	var prompter catalog.Prompter
	if interactive {
		prompter = term
	}

	client := network.New(
		config.Seconds(key.APITimeout),
		network.WithUserAgent(viper.GetString(key.APIUserAgent)),
	)
	cat := catalog.New(client, prompter, viper.GetString(key.APIBaseURL))

	var chapterOpts []chapters.Option
	if viper.GetBool(key.ChaptersPersist) {
		chapterOpts = append(chapterOpts, chapters.WithPersistence(where.Chapters(), config.Hours(key.ChaptersLifetime)))
	}
	chapterCache, err := chapters.New(cat, viper.GetInt(key.ChaptersCacheSize), chapterOpts...)
	if err != nil {
		return nil, err
	}

	return &app{
		catalog: cat,
		assembler: listing.New(
			cat,
			chapterCache,
			host.PluginURL{Base: constant.PluginBase},
			listing.WithViews(viper.GetBool(key.ListingShowViews)),
		),
		player:   mpv,
		terminal: term,
		playback: playback.New(cat, resume.New(where.Resume()), term, mpv, playback.OptionsFromConfig()),
	}, nil
}

// router dispatches into renderer.
func (a *app) router(renderer router.Renderer) *router.Router {
	return router.New(a.assembler, a.playback, renderer, router.WithQueryRecorder(query.Remember))
}
