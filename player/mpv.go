package player

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gtv-cli/gtv/log"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

var _ Player = (*MPV)(nil)

// MPV implements Player using mpv's JSON-IPC protocol.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when a spawned mpv exits
	mu         sync.Mutex    // serializes socket round trips
}

// NewMPV creates a player that runs binary and talks to it over socket.
// Nothing is started until Play.
func NewMPV(binary, socket string) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{
		binary:     binary,
		socketPath: socket,
	}
}

// Play starts playback of media. An mpv already listening on the socket
// is reused, otherwise a detached process is spawned.
func (m *MPV) Play(media Media) error {
	target, err := sanitizeMediaTarget(media.URL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	media.URL = target
	media.Title = sanitizeTitle(media.Title)

	if m.IsRunning() {
		log.Debugf("mpv already listening on %s, loading file", m.socketPath)
		return m.load(media)
	}

	return m.spawn(media)
}

func (m *MPV) load(media Media) error {
	if err := m.Set("force-media-title", media.Title); err != nil {
		return err
	}

	start := "none"
	if media.StartAt > 0 {
		start = formatSeconds(media.StartAt)
	}
	if err := m.Set("start", start); err != nil {
		return err
	}

	_, err := m.sendCommand([]any{"loadfile", media.URL, "replace"})
	return err
}

func (m *MPV) spawn(media Media) error {
	// a stale socket file of a dead instance makes mpv fail to bind
	_ = os.Remove(m.socketPath)

	m.cmd = exec.Command(m.binary, m.args(media)...)
	m.cmd.SysProcAttr = detached()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = kill(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// args builds the command line. Only socket, title, start and target are passed
// so the user's mpv.conf stays in charge of everything else.
func (m *MPV) args(media Media) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + media.Title,
		"--title=" + media.Title,
		"--force-window=yes",
	}

	if media.StartAt > 0 {
		args = append(args, "--start="+formatSeconds(media.StartAt))
	}

	return append(args, "--", media.URL)
}

// waitForSocket polls until the IPC socket accepts connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// TimePos returns the current playback position in seconds.
func (m *MPV) TimePos() (float64, error) {
	return m.getFloatProperty("time-pos")
}

// IsPlaying reports whether mpv has media loaded. An idle or unreachable
// player is not playing.
func (m *MPV) IsPlaying() bool {
	data, err := m.sendCommand([]any{"get_property", "time-pos"})
	return err == nil && data != nil
}

// Seek moves playback to the given absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand([]any{"seek", seconds, "absolute"})
	return err
}

// IsRunning reports whether an mpv is answering on the socket.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	if m.exited != nil {
		select {
		case <-m.exited:
			return false
		default:
		}
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// Close quits mpv and removes the socket.
func (m *MPV) Close() error {
	if !m.IsRunning() {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	if m.exited != nil {
		select {
		case <-m.exited:
		case <-time.After(3 * time.Second):
			_ = kill(m.cmd)
		}
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// Set a property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]any{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// sanitizeMediaTarget rejects anything that is not an http(s) URL or a plain path.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
