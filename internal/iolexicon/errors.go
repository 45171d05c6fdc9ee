package iolexicon

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/pkg/errcode"
)

// NoSourcesError creates an error for when no matching
// sources are found.
func NoSourcesError(requestedIDs []int) error {
	msg := `No sources found matching requested IDs

<em>Requested IDs:</em> %v

<em>How to fix:</em>
  1. Check available sources: <em>gnlexicon sources</em>
  2. Verify source IDs are correct`

	vars := []any{requestedIDs}

	return &gn.Error{
		Code: errcode.SourcesNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no sources found matching IDs: %v",
			requestedIDs),
	}
}

// OpenTableError creates an error for a Darwin Core table that cannot be
// opened.
func OpenTableError(sourceID int, path string, err error) error {
	msg := `Cannot open table of data source <em>%d</em>

<em>File:</em> %s

<em>How to fix:</em>
  1. Check taxon_file and vernacular_file in sources.yaml
  2. Make sure the archive is downloaded and unpacked`

	vars := []any{sourceID, path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// SourceError wraps a failure of a single data source.
func SourceError(sourceID int, title string, err error) error {
	msg := `Failed to process data source <em>%d</em> (%s)`
	vars := []any{sourceID, title}

	return &gn.Error{
		Code: errcode.LexiconSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source %d failed: %w", sourceID, err),
	}
}

// SourcesFailedError is returned when at least one of the selected
// sources failed. Files of the failed sources can be incomplete.
func SourcesFailedError(count, total int) error {
	msg := `Failed number of sources: <em>%d</em> of %d`

	vars := []any{count, total}

	plural := "s"
	if count == 1 {
		plural = ""
	}

	return &gn.Error{
		Code: errcode.LexiconSourcesFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d source%s failed to process", count, plural),
	}
}

// CancelledError is returned when the build is interrupted.
func CancelledError(err error) error {
	msg := "Build was cancelled, output files can be incomplete"

	return &gn.Error{
		Code: errcode.LexiconCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("build cancelled: %w", err),
	}
}
