// Package config provides configuration management for GNlexicon.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Output: dir, extension, separate_vernaculars, use_subfolders, sort,
//     delete_empty
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Build.SourceIDs, Build.Languages (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNLEXICON_ prefix with underscores for nesting:
//
//	GNLEXICON_OUTPUT_DIR=/data/lexicon
//	GNLEXICON_OUTPUT_SORT=false
//	GNLEXICON_LOG_LEVEL=info
//	GNLEXICON_JOBS_NUMBER=8
package config

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Config represents the complete GNlexicon configuration.
type Config struct {
	// Output determines where and how lexicon files are written.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Build contains settings specific to the build command.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of output files sorted concurrently after
	// both passes are finished. The passes themselves are sequential.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, output and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// OutputConfig describes the layout of the lexicon files.
type OutputConfig struct {
	// Dir is the base directory of the output. When empty, OutputDir of
	// HomeDir is used.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Extension of the output files, including the dot.
	Extension string `mapstructure:"extension" yaml:"extension"`

	// SeparateVernaculars writes vernacular names into '_vn' files and
	// scientific names into '_tx' files. Otherwise they share one file.
	SeparateVernaculars bool `mapstructure:"separate_vernaculars" yaml:"separate_vernaculars"`

	// UseSubfolders puts files of every class into its own directory.
	// Otherwise the class name becomes part of the file name.
	UseSubfolders bool `mapstructure:"use_subfolders" yaml:"use_subfolders"`

	// Sort rewrites every file as sorted unique lines.
	Sort bool `mapstructure:"sort" yaml:"sort"`

	// DeleteEmpty removes files that got no lines.
	DeleteEmpty bool `mapstructure:"delete_empty" yaml:"delete_empty"`
}

// BuildConfig contains settings specific to the build command.
type BuildConfig struct {
	// SourceIDs is the list of data source IDs to process.
	// Empty slice means process all sources from sources.yaml.
	SourceIDs []int `mapstructure:"source_ids" yaml:"source_ids"`

	// Languages overrides accepted vernacular languages of every
	// processed source. Empty slice keeps the languages of sources.yaml.
	Languages []string `mapstructure:"languages" yaml:"languages"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Output: OutputConfig{
			Extension:           ".list",
			SeparateVernaculars: true,
			UseSubfolders:       true,
			Sort:                true,
			DeleteEmpty:         true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// OutputPath returns the directory for lexicon files: Output.Dir if it is
// set, the default location under HomeDir otherwise. A leading ~ in
// Output.Dir stands for HomeDir.
func (c *Config) OutputPath() string {
	if dir, ok := strings.CutPrefix(c.Output.Dir, "~/"); ok {
		return filepath.Join(c.HomeDir, dir)
	}
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	return OutputDir(c.HomeDir)
}
