// Package playback resolves an episode to a stream, restores its resume point
// and records the position while the player runs. It also jumps to chapters,
// starting the player first if nothing is playing.
package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/gtv-cli/gtv/config"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/key"
	"github.com/gtv-cli/gtv/log"
	"github.com/gtv-cli/gtv/player"
	"github.com/gtv-cli/gtv/resume"
	"github.com/spf13/viper"
)

// URLSource resolves an episode to its stream playlist.
type URLSource interface {
	PlaylistURL(ctx context.Context, episode int) (string, error)
}

// Store persists resume records.
type Store interface {
	Read(episode int, kind resume.Kind) float64
	Write(episode int, value float64, kind resume.Kind) error
}

// Resolver hands a playable result to the host, which starts playing it.
type Resolver interface {
	Resolve(playable host.Playable) error
}

// Options tunes resuming and the polling loops.
type Options struct {
	Resume        bool
	Interval      time.Duration
	StartInterval time.Duration
	StartTimeout  time.Duration
	JumpTimeout   time.Duration
}

// OptionsFromConfig reads the playback.* settings.
func OptionsFromConfig() Options {
	return Options{
		Resume:        viper.GetBool(key.PlaybackResume),
		Interval:      config.Millis(key.PlaybackInterval),
		StartInterval: config.Millis(key.PlaybackStartInterval),
		StartTimeout:  config.Seconds(key.PlaybackStartTimeout),
		JumpTimeout:   config.Seconds(key.PlaybackJumpTimeout),
	}
}

// Controller coordinates one invocation's playback.
type Controller struct {
	urls     URLSource
	store    Store
	resolver Resolver
	player   player.Player
	options  Options
}

// New returns a Controller. Zero durations in options fall back to the defaults.
func New(urls URLSource, store Store, resolver Resolver, p player.Player, options Options) *Controller {
	if options.Interval <= 0 {
		options.Interval = time.Second
	}
	if options.StartInterval <= 0 {
		options.StartInterval = 100 * time.Millisecond
	}
	if options.StartTimeout <= 0 {
		options.StartTimeout = 30 * time.Second
	}
	if options.JumpTimeout <= 0 {
		options.JumpTimeout = 10 * time.Second
	}

	return &Controller{
		urls:     urls,
		store:    store,
		resolver: resolver,
		player:   p,
		options:  options,
	}
}

// Play resolves episode, hands it to the host with its resume point and blocks
// while recording the position until the player stops.
func (c *Controller) Play(ctx context.Context, episode int) error {
	logger := log.Episode(episode)

	streamURL, err := c.urls.PlaylistURL(ctx, episode)
	if err != nil {
		return err
	}

	playable := host.Playable{
		Episode: episode,
		URL:     streamURL,
		Title:   title(episode),
	}

	if position := c.store.Read(episode, resume.Position); position > 0 && c.options.Resume {
		playable.StartAt = position
		playable.Total = c.store.Read(episode, resume.Total)
		logger.Infof("resuming at %.1fs", position)
	}

	if err := c.resolver.Resolve(playable); err != nil {
		return fmt.Errorf("resolve episode %d: %w", episode, err)
	}

	if !c.waitPlaying(ctx, c.options.StartTimeout) {
		logger.Warnf("playback did not start within %s", c.options.StartTimeout)
		return nil
	}

	c.monitor(ctx, episode)
	return nil
}

// monitor records the position every interval while the player is playing.
// The last recorded position stays; nothing is flushed on stop.
func (c *Controller) monitor(ctx context.Context, episode int) {
	logger := log.Episode(episode)

	ticker := time.NewTicker(c.options.Interval)
	defer ticker.Stop()

	for {
		if !c.player.IsPlaying() {
			logger.Debug("playback stopped")
			return
		}

		if position, err := c.player.TimePos(); err != nil {
			logger.Debugf("time-pos: %v", err)
		} else if err := c.store.Write(episode, position, resume.Position); err != nil {
			logger.Warnf("save resume point: %v", err)
		}

		select {
		case <-ctx.Done():
			logger.Debug("monitor cancelled")
			return
		case <-ticker.C:
		}
	}
}

// JumpToChapter seeks to offset seconds. A stopped player is started on the
// episode first; if it does not start in time no seek happens.
func (c *Controller) JumpToChapter(ctx context.Context, episode, offset int) error {
	logger := log.Episode(episode)

	if !c.player.IsPlaying() {
		streamURL, err := c.urls.PlaylistURL(ctx, episode)
		if err != nil {
			return err
		}

		if err := c.player.Play(player.Media{URL: streamURL, Title: title(episode)}); err != nil {
			return fmt.Errorf("start episode %d: %w", episode, err)
		}

		if !c.waitPlaying(ctx, c.options.JumpTimeout) {
			logger.Warnf("playback did not start within %s, not seeking", c.options.JumpTimeout)
			return nil
		}
	}

	logger.Infof("jumping to %ds", offset)
	if err := c.player.Seek(float64(offset)); err != nil {
		return fmt.Errorf("seek episode %d: %w", episode, err)
	}
	return nil
}

// waitPlaying polls every start interval until the player plays, the timeout
// expires or ctx is done.
func (c *Controller) waitPlaying(ctx context.Context, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(c.options.StartInterval)
	defer ticker.Stop()

	for {
		if c.player.IsPlaying() {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-ticker.C:
		}
	}
}

func title(episode int) string {
	return fmt.Sprintf("Episode %d", episode)
}
