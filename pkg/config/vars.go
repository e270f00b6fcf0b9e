package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnpest"

	// CatalogFile is the default name of the SQLite species catalog.
	CatalogFile = "pests.db"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnpest by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnpest by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for persistent data.
// Returns ~/.local/share/gnpest by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnpest/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnpest/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CatalogFilePath returns the default location of the SQLite catalog.
// Returns ~/.local/share/gnpest/pests.db by default.
func CatalogFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), CatalogFile)
}
