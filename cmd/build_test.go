package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnlexicon/internal/iotesting"
	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetBuildCmd verifies the build command and its flags.
func TestGetBuildCmd(t *testing.T) {
	cmd := getBuildCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "build", cmd.Use)
	assert.Contains(t, cmd.Long, "sources.yaml")
	assert.NotNil(t, cmd.RunE)

	tests := []struct {
		name      string
		shorthand string
	}{
		{"source-ids", "s"},
		{"languages", "l"},
		{"output-dir", "o"},
		{"extension", "e"},
		{"jobs", "j"},
		{"separate", ""},
		{"subfolders", ""},
		{"sort", ""},
		{"delete-empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.NotEmpty(t, flag.Usage)
		})
	}
}

// TestFlagOptions verifies that only explicitly set flags change the
// configuration.
func TestFlagOptions(t *testing.T) {
	t.Run("no flags", func(t *testing.T) {
		cmd := getBuildCmd()
		require.NoError(t, cmd.Flags().Parse(nil))
		assert.Empty(t, flagOptions(cmd, buildFlags()))
	})

	t.Run("all flags", func(t *testing.T) {
		cmd := getBuildCmd()
		err := cmd.Flags().Parse([]string{
			"-s", "1,3",
			"-l", `German,"Prussian, Old DE"`,
			"-o", "/tmp/lex",
			"-e", "txt",
			"-j", "2",
			"--separate=false",
			"--subfolders=false",
			"--sort=false",
			"--delete-empty=false",
		})
		require.NoError(t, err)

		c := config.New()
		c.Update(flagOptions(cmd, buildFlags()))
		assert.Equal(t, []int{1, 3}, c.Build.SourceIDs)
		assert.Equal(t, []string{"German", "Prussian, Old DE"}, c.Build.Languages)
		assert.Equal(t, "/tmp/lex", c.Output.Dir)
		assert.Equal(t, ".txt", c.Output.Extension)
		assert.Equal(t, 2, c.JobsNumber)
		assert.False(t, c.Output.SeparateVernaculars)
		assert.False(t, c.Output.UseSubfolders)
		assert.False(t, c.Output.Sort)
		assert.False(t, c.Output.DeleteEmpty)
	})
}

// TestRunBuild runs the build command against a temporary home
// directory.
func TestRunBuild(t *testing.T) {
	home := t.TempDir()
	data := t.TempDir()

	taxa := iotesting.WriteTable(t, data, "Taxon.tsv",
		[]string{"taxonID", "kingdom", "canonicalName"},
		[]string{"1", "Plantae", "Rosa canina"},
	)
	vern := iotesting.WriteTable(t, data, "VernacularName.tsv",
		[]string{"taxonID", "language", "vernacularName"},
		[]string{"1", "de", "Hundsrose"},
	)

	sourcesPath := config.SourcesFilePath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(sourcesPath), 0755))
	require.NoError(t, os.WriteFile(sourcesPath, []byte(`
data_sources:
  - id: 1
    variant: backbone
    taxon_file: `+taxa+`
    vernacular_file: `+vern+`
`), 0644))

	oldCfg := cfg
	defer func() { cfg = oldCfg }()
	cfg = config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})

	out := filepath.Join(home, "out")
	cmd := getBuildCmd()
	err := cmd.Flags().Parse([]string{"-o", out, "-s", "1", "--subfolders=false"})
	require.NoError(t, err)

	err = runBuild(cmd)
	require.NoError(t, err)

	content := iotesting.ReadFile(t,
		filepath.Join(out, "gbif_backbone_plant_flora_tx.list"))
	assert.Equal(t, "Rosa canina\thttps://www.gbif.org/species/1\n", content)
}
