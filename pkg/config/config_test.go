package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnlexicon"),
		},
		{
			msg: "output dir",
			fn:  config.OutputDir,
			res: filepath.Join(tempHome, ".local", "share", "gnlexicon", "output"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnlexicon", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnlexicon", "config.yaml"),
		},
		{
			msg: "sources file",
			fn:  config.SourcesFilePath,
			res: filepath.Join(tempHome, ".config", "gnlexicon", "sources.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Output defaults
		assert.Equal(t, "", cfg.Output.Dir)
		assert.Equal(t, ".list", cfg.Output.Extension)
		assert.True(t, cfg.Output.SeparateVernaculars)
		assert.True(t, cfg.Output.UseSubfolders)
		assert.True(t, cfg.Output.Sort)
		assert.True(t, cfg.Output.DeleteEmpty)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOutputPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".local", "share", "gnlexicon", "output"),
		cfg.OutputPath())

	cfg.Update([]config.Option{config.OptOutputDir("/data/lexicon")})
	assert.Equal(t, "/data/lexicon", cfg.OutputPath())

	cfg.Update([]config.Option{config.OptOutputDir("~/lexicon")})
	assert.Equal(t, filepath.Join("/home/user", "lexicon"), cfg.OutputPath())
}

func TestOptionOutputDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/tmp/out",
			expected: "/tmp/out",
		},
		{
			name:     "trims whitespace",
			input:    "  /tmp/out  ",
			expected: "/tmp/out",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptOutputDir(tt.input)})
			assert.Equal(t, tt.expected, cfg.Output.Dir)
		})
	}
}

func TestOptionOutputExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets extension",
			input:    ".txt",
			expected: ".txt",
		},
		{
			name:     "adds missing dot",
			input:    "tsv",
			expected: ".tsv",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: ".list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptOutputExtension(tt.input)})
			assert.Equal(t, tt.expected, cfg.Output.Extension)
		})
	}
}

func TestOptionOutputFlags(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptOutputSeparateVernaculars(false),
		config.OptOutputUseSubfolders(false),
		config.OptOutputSort(false),
		config.OptOutputDeleteEmpty(false),
	})
	assert.False(t, cfg.Output.SeparateVernaculars)
	assert.False(t, cfg.Output.UseSubfolders)
	assert.False(t, cfg.Output.Sort)
	assert.False(t, cfg.Output.DeleteEmpty)

	cfg.Update([]config.Option{config.OptOutputSort(true)})
	assert.True(t, cfg.Output.Sort)
}

func TestOptionBuildSourceIDs(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptBuildSourceIDs(nil)})
	assert.Nil(t, cfg.Build.SourceIDs)

	cfg.Update([]config.Option{config.OptBuildSourceIDs([]int{1, 3})})
	assert.Equal(t, []int{1, 3}, cfg.Build.SourceIDs)
}

func TestOptionBuildLanguages(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets languages",
			input:    []string{"de", "la"},
			expected: []string{"de", "la"},
		},
		{
			name:     "trims and drops blanks",
			input:    []string{" de ", "", "  "},
			expected: []string{"de"},
		},
		{
			name:     "ignores empty list",
			input:    []string{" "},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptBuildLanguages(tt.input)})
			assert.Equal(t, tt.expected, cfg.Build.Languages)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormatAndDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogFormat("TEXT"),
		config.OptLogDestination("stderr"),
	})
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogFormat("xml"),
		config.OptLogDestination("syslog"),
	})
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(3)})
	assert.Equal(t, 3, cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(0)})
	assert.Equal(t, 3, cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(-2)})
	assert.Equal(t, 3, cfg.JobsNumber)
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptOutputDir("/data/lexicon"),
			config.OptOutputExtension(".txt"),
			config.OptOutputSeparateVernaculars(false),
			config.OptOutputUseSubfolders(false),
			config.OptOutputSort(false),
			config.OptOutputDeleteEmpty(false),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Output, newCfg.Output)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptBuildSourceIDs([]int{1, 2, 3}),
			config.OptBuildLanguages([]string{"de"}),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Build.SourceIDs)
		assert.Nil(t, newCfg.Build.Languages)
	})
}
