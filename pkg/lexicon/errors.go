package lexicon

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlexicon/pkg/errcode"
)

// PhaseError is returned when the vernacular table is read before the
// taxon table was processed completely.
func PhaseError() error {
	msg := "Vernacular names cannot be processed before the taxon table"
	return &gn.Error{
		Code: errcode.LexiconPhaseError,
		Msg:  msg,
		Err:  errors.New("taxon pass is not finished"),
	}
}

// UnknownVariantError is returned for unsupported variant names.
func UnknownVariantError(name string) error {
	msg := `Unknown source variant <em>%s</em>

<em>Supported variants:</em>
  * %s
  * %s`
	vars := []any{name, VariantBackbone, VariantCatalogue}
	return &gn.Error{
		Code: errcode.LexiconVariantError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown variant %q", name),
	}
}

// CancelledError is returned when the context is cancelled during a pass.
// Output files written so far are incomplete.
func CancelledError(err error) error {
	msg := "Processing was cancelled, output files are incomplete"
	return &gn.Error{
		Code: errcode.LexiconCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("processing cancelled: %w", err),
	}
}
