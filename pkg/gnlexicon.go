// Package gnlexicon converts Darwin Core taxon and vernacular-name tables
// into per-kingdom lists of name/URI pairs for gazetteer seeding.
package gnlexicon

import "context"

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags.
	Build = "n/a"
)

// Builder creates lexicon files from configured Darwin Core sources.
// Config is provided during construction.
type Builder interface {
	// Build processes every selected source: taxon pass, vernacular pass,
	// then sorting and pruning of the output files.
	Build(ctx context.Context) error
}
