package iooutput

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/pkg/errcode"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// CreateError is returned when an output file or its directory cannot be
// created.
func CreateError(path string, err error) error {
	msg := "Cannot create output file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create %s: %w", caller(), path, err),
	}
}

// WriteError is returned when a line cannot be written to an output file.
func WriteError(path string, err error) error {
	msg := "Cannot write to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", caller(), path, err),
	}
}

// CloseError is returned when buffered data cannot be flushed or a file
// cannot be closed.
func CloseError(path string, err error) error {
	msg := "Cannot close <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputCloseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot close %s: %w", caller(), path, err),
	}
}

// SortError is returned when a file cannot be rewritten as sorted unique
// lines. The original file stays untouched.
func SortError(path string, err error) error {
	msg := `Cannot sort <em>%s</em>

The file is left unsorted and may contain duplicate lines.`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputSortError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot sort %s: %w", caller(), path, err),
	}
}

// DeleteError is returned when an empty output file cannot be removed.
func DeleteError(path string, err error) error {
	msg := "Cannot delete empty file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.OutputDeleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot delete %s: %w", caller(), path, err),
	}
}
