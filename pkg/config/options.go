package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptOutputDir sets the base directory of lexicon files.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputExtension sets the extension of lexicon files.
// A leading dot is added if it is missing.
func OptOutputExtension(s string) Option {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	return func(c *Config) {
		if isValidString("Output Extension", s) {
			c.Output.Extension = s
		}
	}
}

// OptOutputSeparateVernaculars sets whether vernacular names get their
// own files.
func OptOutputSeparateVernaculars(b bool) Option {
	return func(c *Config) {
		c.Output.SeparateVernaculars = b
	}
}

// OptOutputUseSubfolders sets whether every class gets a subdirectory.
func OptOutputUseSubfolders(b bool) Option {
	return func(c *Config) {
		c.Output.UseSubfolders = b
	}
}

// OptOutputSort sets whether files are sorted and deduplicated at the end.
func OptOutputSort(b bool) Option {
	return func(c *Config) {
		c.Output.Sort = b
	}
}

// OptOutputDeleteEmpty sets whether empty files are removed at the end.
func OptOutputDeleteEmpty(b bool) Option {
	return func(c *Config) {
		c.Output.DeleteEmpty = b
	}
}

// OptBuildSourceIDs sets the list of data source IDs to process.
// Empty slice means process all sources from sources.yaml.
// Runtime-only field - not in ToOptions().
func OptBuildSourceIDs(ii []int) Option {
	return func(c *Config) {
		if len(ii) > 0 {
			c.Build.SourceIDs = ii
		}
	}
}

// OptBuildLanguages overrides vernacular languages of processed sources.
// Blank entries are dropped.
// Runtime-only field - not in ToOptions().
func OptBuildLanguages(ss []string) Option {
	var langs []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			langs = append(langs, v)
		}
	}
	return func(c *Config) {
		if len(langs) > 0 {
			c.Build.Languages = langs
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets how many output files are post-processed at once.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, output, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
