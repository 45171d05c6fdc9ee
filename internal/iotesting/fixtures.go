// Package iotesting provides shared test utilities for tests that touch the
// file system.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnlexicon/pkg/config"
	"github.com/stretchr/testify/require"
)

// GetTestConfig returns a configuration with HomeDir and output directory
// inside a temporary directory that is removed after the test. Options
// are applied on top.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t, config.OptOutputSort(false))
//	    // ... files go to cfg.OutputPath()
//	}
func GetTestConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()
	home := t.TempDir()
	cfg := config.New()
	base := []config.Option{
		config.OptHomeDir(home),
		config.OptOutputDir(filepath.Join(home, "out")),
		config.OptJobsNumber(2),
	}
	cfg.Update(append(base, opts...))
	return cfg
}

// WriteTable creates a tab-separated table in dir. Every row is a slice
// of fields, the first row is the header.
func WriteTable(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(sb.String()), 0644)
	require.NoError(t, err)
	return path
}

// ReadFile returns content of a file, failing the test if it cannot be
// read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(bs)
}
