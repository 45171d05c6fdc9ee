package iosources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/gnames/gnlexicon/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.cfg.HomeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

// loadSourcesConfig reads and validates sources.yaml from disk.
// Existence of the tables is checked when a source is processed, so
// sources can be listed even if some files are not downloaded yet.
func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config file: %w", err)
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}

	for i := range res.DataSources {
		if err = expandPaths(&res.DataSources[i]); err != nil {
			return nil, fmt.Errorf("data source %d: %w", i+1, err)
		}
	}

	for _, w := range res.Warnings {
		slog.Warn("Source configuration warning",
			"source_id", w.DataSourceID,
			"field", w.Field,
			"message", w.Message,
			"suggestion", w.Suggestion)
	}

	return &res, nil
}

func expandPaths(ds *sources.DataSourceConfig) error {
	var err error
	if ds.TaxonFile, err = expandHome(ds.TaxonFile); err != nil {
		return err
	}
	ds.VernacularFile, err = expandHome(ds.VernacularFile)
	return err
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand ~: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
