// Package resume persists per-episode playback positions and durations as
// small text files, one per episode and kind.
package resume

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gtv-cli/gtv/filesystem"
	"github.com/gtv-cli/gtv/log"
	"github.com/spf13/afero"
)

// Kind selects which record of an episode is addressed.
type Kind int

const (
	// Position is the last observed playback offset in seconds.
	Position Kind = iota
	// Total is the episode duration in seconds.
	Total
)

// Dir is the directory name of the kind below the store root.
func (k Kind) Dir() string {
	switch k {
	case Total:
		return "total_times"
	default:
		return "resume_points"
	}
}

func (k Kind) String() string {
	if k == Total {
		return "total"
	}
	return "position"
}

// Store reads and writes resume records below root.
type Store struct {
	root string
}

// New returns a store rooted at root.
func New(root string) *Store {
	return &Store{root: root}
}

// Path of the file holding the record.
func (s *Store) Path(episode int, kind Kind) string {
	return filepath.Join(s.root, kind.Dir(), strconv.Itoa(episode))
}

// Read returns the stored value or 0 when the record is missing or unusable.
func (s *Store) Read(episode int, kind Kind) float64 {
	path := s.Path(episode, kind)

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Episode(episode).Debugf("read %s: %v", kind, err)
		}
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		log.Episode(episode).Debugf("malformed %s record %q", kind, data)
		return 0
	}

	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// Write stores value, replacing any previous record atomically.
func (s *Store) Write(episode int, value float64, kind Kind) error {
	fs := filesystem.API()
	dir := filepath.Join(s.root, kind.Dir())

	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+strconv.Itoa(episode)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	_, err = tmp.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(tmp.Name())
		return fmt.Errorf("write %s of episode %d: %w", kind, episode, err)
	}

	if err := fs.Rename(tmp.Name(), s.Path(episode, kind)); err != nil {
		_ = fs.Remove(tmp.Name())
		return fmt.Errorf("replace %s of episode %d: %w", kind, episode, err)
	}

	return nil
}

// Clear removes every record of both kinds.
func (s *Store) Clear() error {
	fs := filesystem.API()
	for _, kind := range []Kind{Position, Total} {
		if err := fs.RemoveAll(filepath.Join(s.root, kind.Dir())); err != nil {
			return err
		}
	}
	return nil
}
