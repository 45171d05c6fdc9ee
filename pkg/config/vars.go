package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnlexicon"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnlexicon by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// OutputDir returns the default directory for lexicon files.
// Returns ~/.local/share/gnlexicon/output by default.
func OutputDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "output")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnlexicon/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnlexicon/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
// Returns ~/.config/gnlexicon/sources.yaml by default.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}
