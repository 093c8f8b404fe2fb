// Package where resolves the platform specific paths cinebox reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "CINEBOX_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory: $CINEBOX_CONFIG_PATH, or the
// platform user config dir (XDG_CONFIG_HOME on Linux).
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Cinebox))
}

// Cache is the directory holding API response caches.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Cinebox))
}

// Logs is the directory for daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Favorites is the file the favorites collection is persisted to.
func Favorites() string {
	return filepath.Join(Config(), "favorites.json")
}

// History is the file recently viewed titles are kept in.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the search history used for query suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// ConfigFile is the TOML file viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Cinebox+".toml")
}
