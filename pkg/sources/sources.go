// Package sources provides configuration and validation for Darwin Core
// data sources.
//
// This package defines the schema for sources.yaml, which users provide to
// specify which taxon and vernacular tables to turn into lexicon files.
// It handles source configuration validation, per-variant defaults, and
// filtering by source IDs.
package sources

import (
	"fmt"

	"github.com/gnames/gnlexicon/pkg/lexicon"
)

type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// DataSources is the list of data sources to process.
	DataSources []DataSourceConfig `yaml:"data_sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	DataSourceID int    // ID of the data source
	Field        string // Field name that has the issue
	Message      string // Description of the issue
	Suggestion   string // How to fix it
}

// DataSourceConfig represents configuration for a single data source.
//
// Only id, variant, taxon_file and vernacular_file are required. Other
// fields get defaults of the variant during validation.
type DataSourceConfig struct {
	// ID identifies the data source. Convention: < 1000 = official, >= 1000 = custom
	ID int `yaml:"id"`

	// Title is a human-readable name, shown in logs and by the sources
	// command.
	Title string `yaml:"title,omitempty"`

	// Variant is either "backbone" (GBIF Backbone Taxonomy) or "catalogue"
	// (Catalogue of Life).
	Variant string `yaml:"variant"`

	// TaxonFile and VernacularFile are paths to tab-separated Darwin Core
	// tables. A leading ~ is expanded to the home directory.
	TaxonFile      string `yaml:"taxon_file"`
	VernacularFile string `yaml:"vernacular_file"`

	// BaseFileName is the prefix of every output file of the source.
	BaseFileName string `yaml:"base_file_name,omitempty"`

	// BaseURI is joined with identifiers to create URIs.
	BaseURI string `yaml:"base_uri,omitempty"`

	// Languages accepted in the vernacular table, matched exactly.
	Languages []string `yaml:"languages,omitempty"`

	// Catalogue only. ComposeNames builds names from genus and epithets
	// (default true). When it is false, scientificName is used as is,
	// or cleaned by StripAuthor or ParseNames.
	ComposeNames *bool `yaml:"compose_names,omitempty"`
	StripAuthor  bool  `yaml:"strip_author,omitempty"`
	ParseNames   bool  `yaml:"parse_names,omitempty"`
}

// Default base file names of the variants.
const (
	BackboneFileName  = "gbif_backbone"
	CatalogueFileName = "catalogue_of_life"
)

// BackboneLanguages are vernacular languages accepted from the backbone
// by default.
func BackboneLanguages() []string {
	return []string{"de", "la"}
}

// CatalogueLanguages are vernacular languages accepted from the catalogue
// by default.
func CatalogueLanguages() []string {
	return []string{"German", "Ger", "Prussian, Old DE", "Prussian"}
}

// Compose returns the effective value of ComposeNames.
func (d DataSourceConfig) Compose() bool {
	if d.ComposeNames == nil {
		return true
	}
	return *d.ComposeNames
}

// VariantOptions converts the configuration into options of
// lexicon.NewVariant. The name parser is not included, it is an I/O
// resource created by the caller when ParseNames is true.
func (d DataSourceConfig) VariantOptions() []lexicon.Option {
	res := []lexicon.Option{lexicon.OptBaseURI(d.BaseURI)}
	if d.Variant != lexicon.VariantCatalogue {
		return res
	}
	compose := d.Compose()
	res = append(res, lexicon.OptComposeNames(compose))
	if !compose && !d.ParseNames {
		res = append(res, lexicon.OptStripAuthor(d.StripAuthor))
	}
	return res
}

// Label returns the title of the source, or its ID when title is empty.
func (d DataSourceConfig) Label() string {
	if d.Title != "" {
		return d.Title
	}
	return fmt.Sprintf("source %d", d.ID)
}
