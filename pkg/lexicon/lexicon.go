// Package lexicon turns Darwin Core taxon and vernacular-name tables into
// name/URI pairs grouped by kingdom-derived output classes.
//
// Processing happens in two strictly ordered passes. The taxon pass emits
// scientific names and fills the lookup maps; the vernacular pass reads
// them to route common names to the same URI and class. Source specific
// behaviour (how a name is built, where the identifier comes from) is
// delegated to a Variant.
package lexicon

import (
	"fmt"

	"github.com/gnames/gnlexicon/pkg/kingdom"
)

// Sink receives the lines of the lexicon. Implementations decide where
// taxon and vernacular lines of each class are stored.
type Sink interface {
	WriteTaxon(c kingdom.Class, name, uri string) error
	WriteVernacular(c kingdom.Class, name, uri string) error
}

// Taxon is a record of the taxon table as seen by the driver.
type Taxon struct {
	// ID is the taxonID of the row, unique within a table.
	ID string
	// Name is the scientific name to emit.
	Name string
	// Kingdom is the raw kingdom value.
	Kingdom string
	// Identifier is the external identifier used in the URI. Empty means
	// the record waits for its accepted name.
	Identifier string
	// AcceptedID is the taxonID of the accepted name for synonyms.
	AcceptedID string
}

// Vernacular is a record of the vernacular-name table.
type Vernacular struct {
	TaxonID  string
	Language string
	// Names can hold several comma-separated names.
	Names string
}

// Stats collects counters of a run.
type Stats struct {
	TaxaRows    int
	TaxaEmitted int
	TaxaSkipped int
	// Deferred is the number of taxa without identifier put aside until
	// their accepted name shows up.
	Deferred int
	// Backfilled is the number of deferred taxa emitted later.
	Backfilled int
	// Dropped is the number of deferred taxa whose accepted name never
	// followed them in the table.
	Dropped int

	VernacularRows     int
	VernacularFiltered int
	VernacularEmitted  int
}

// FilterReport summarizes language filtering of the vernacular pass.
func (s Stats) FilterReport(languages []string) string {
	return fmt.Sprintf(
		"Filtered %d/%d vernacular names on selected languages: %v",
		s.VernacularFiltered, s.VernacularRows, languages,
	)
}
