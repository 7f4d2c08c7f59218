package cli

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/sssbpuc/campusd/internal/store"
)

// dataDir holds the --data-dir persistent flag value (set on root command).
var dataDir string

// resolveDataDir returns the data directory from --data-dir flag,
// CAMPUSD_DATA_DIR env var, or ~/.campusd as fallback.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if envDir := os.Getenv("CAMPUSD_DATA_DIR"); envDir != "" {
		return envDir
	}
	home, _ := os.UserHomeDir()
	return home + "/.campusd"
}

// openStore opens the datastore the same way serve does, so maintenance
// commands operate on the same database.
func openStore() (*store.Store, error) {
	opts := store.Options{
		Driver:  viper.GetString("db.driver"),
		DSN:     viper.GetString("db.dsn"),
		DataDir: resolveDataDir(),
	}
	return store.Open(opts)
}

// versionString returns a display version string.
func versionString() string {
	if appVersion == "" || appVersion == "dev" {
		return "dev"
	}
	if strings.HasPrefix(appVersion, "v") {
		return appVersion
	}
	return "v" + appVersion
}
