// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/gtv-cli/gtv/constant"
	"github.com/gtv-cli/gtv/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "GTV_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the primary application configuration directory.
// GTV_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Resume resolves the root under which resume_points/ and total_times/ live.
// The per-kind directories are created lazily by the resume store.
func Resume() string {
	return Config()
}

// ResumePoints resolves the directory holding one position file per episode.
func ResumePoints() string {
	return filepath.Join(Resume(), "resume_points")
}

// TotalTimes resolves the directory holding one duration file per episode.
func TotalTimes() string {
	return filepath.Join(Resume(), "total_times")
}

// Chapters resolves the optional on-disk chapter cache.
func Chapters() string {
	return filepath.Join(Cache(), "chapters.json")
}

// Queries resolves the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}

// Socket resolves the fixed mpv IPC socket shared by every invocation.
func Socket() string {
	return filepath.Join(Temp(), "mpv.sock")
}
