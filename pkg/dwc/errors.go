package dwc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/pkg/errcode"
)

// EmptyTableError is returned when a table has no header line.
func EmptyTableError() error {
	msg := "Table is empty, header line is missing"
	return &gn.Error{
		Code: errcode.TableEmptyError,
		Msg:  msg,
		Err:  errors.New("empty table"),
	}
}

// MissingColumnError is returned when a required column is absent from
// the header. It aborts the run.
func MissingColumnError(column string, header []string) error {
	msg := `Required column <em>%s</em> is missing

<em>Header:</em> %s

<em>How to fix:</em>
  1. Check that the file is a Darwin Core table with a header line
  2. Check that the source variant matches the file`

	vars := []any{column, strings.Join(header, ", ")}

	return &gn.Error{
		Code: errcode.TableMissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing column %q", column),
	}
}

// ShortRowError is returned when a row has fewer fields than a required
// column index.
func ShortRowError(line, index, fieldsNum int) error {
	msg := "Malformed row at line <em>%d</em>: %d fields, need at least %d"
	vars := []any{line, fieldsNum, index + 1}
	return &gn.Error{
		Code: errcode.TableShortRowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("line %d: field %d out of range (%d fields)",
			line, index, fieldsNum),
	}
}

// ReadError wraps scanner failures, for example a line longer than the
// scanner buffer.
func ReadError(line int, err error) error {
	msg := "Cannot read table after line <em>%d</em>"
	vars := []any{line}
	return &gn.Error{
		Code: errcode.TableReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read table after line %d: %w", line, err),
	}
}
