package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs verifies all required directories are created
// with 0755 permissions, and that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnlexicon"),
		filepath.Join(tmpDir, ".local", "share", "gnlexicon", "output"),
		filepath.Join(tmpDir, ".local", "share", "gnlexicon", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	err := touchDir(newDir)
	require.NoError(t, err)
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = touchDir(filepath.Join(file, "dir"))
	assert.Error(t, err)
}

func TestEnsureFiles(t *testing.T) {
	tests := []struct {
		name     string
		ensure   func(string) error
		path     func(string) string
		embedded string
	}{
		{"config", EnsureConfigFile, config.ConfigFilePath, ConfigYAML},
		{"sources", EnsureSourcesFile, config.SourcesFilePath, SourcesYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))

			err := tt.ensure(tmpDir)
			require.NoError(t, err)

			path := tt.path(tmpDir)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.embedded, string(content))

			// existing file is not overwritten
			custom := "# custom\n"
			require.NoError(t, os.WriteFile(path, []byte(custom), 0644))
			require.NoError(t, tt.ensure(tmpDir))
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content))
		})
	}
}

func TestEmbedded(t *testing.T) {
	assert.Contains(t, ConfigYAML, "output:")
	assert.Contains(t, ConfigYAML, "log:")
	assert.Contains(t, ConfigYAML, "jobs_number")

	assert.Contains(t, SourcesYAML, "data_sources")
	assert.Contains(t, SourcesYAML, "variant: backbone")
	assert.Contains(t, SourcesYAML, "variant: catalogue")
}
