package sources

import (
	"fmt"
	"strings"

	"github.com/gnames/gnlexicon/pkg/lexicon"
)

// Validate checks the configuration for errors and applies defaults.
func (c *SourcesConfig) Validate() error {
	if len(c.DataSources) == 0 {
		return fmt.Errorf("no data sources specified in configuration")
	}

	ids := make(map[int]struct{})
	for i := range c.DataSources {
		warnings, err := c.DataSources[i].Validate()
		if err != nil {
			return fmt.Errorf("data source %d: %w", i+1, err)
		}
		id := c.DataSources[i].ID
		if _, ok := ids[id]; ok {
			return fmt.Errorf("data source %d: duplicate id %d", i+1, id)
		}
		ids[id] = struct{}{}
		c.Warnings = append(c.Warnings, warnings...)
	}

	return nil
}

// Validate checks a single data source configuration and fills empty
// fields with defaults of its variant. File existence is checked by the
// I/O layer at runtime.
// Returns a slice of warnings (non-fatal issues) and an error (fatal issues).
func (d *DataSourceConfig) Validate() ([]ValidationWarning, error) {
	if d.ID <= 0 {
		return nil, fmt.Errorf("id is required and must be positive")
	}

	d.Variant = strings.ToLower(strings.TrimSpace(d.Variant))
	switch d.Variant {
	case lexicon.VariantBackbone, lexicon.VariantCatalogue:
	case "":
		return nil, fmt.Errorf("variant is required")
	default:
		return nil, fmt.Errorf(
			"invalid variant '%s': must be '%s' or '%s'",
			d.Variant, lexicon.VariantBackbone, lexicon.VariantCatalogue,
		)
	}

	if strings.TrimSpace(d.TaxonFile) == "" {
		return nil, fmt.Errorf("taxon_file is required")
	}
	if strings.TrimSpace(d.VernacularFile) == "" {
		return nil, fmt.Errorf("vernacular_file is required")
	}

	d.applyDefaults()

	if d.Variant == lexicon.VariantBackbone {
		return d.backboneWarnings(), nil
	}
	return d.catalogueWarnings(), nil
}

func (d *DataSourceConfig) applyDefaults() {
	d.BaseFileName = strings.TrimSpace(d.BaseFileName)
	d.BaseURI = strings.TrimSpace(d.BaseURI)

	switch d.Variant {
	case lexicon.VariantBackbone:
		if d.BaseFileName == "" {
			d.BaseFileName = BackboneFileName
		}
		if d.BaseURI == "" {
			d.BaseURI = lexicon.BackboneURI
		}
		if len(d.Languages) == 0 {
			d.Languages = BackboneLanguages()
		}
	case lexicon.VariantCatalogue:
		if d.BaseFileName == "" {
			d.BaseFileName = CatalogueFileName
		}
		if d.BaseURI == "" {
			d.BaseURI = lexicon.CatalogueURI
		}
		if len(d.Languages) == 0 {
			d.Languages = CatalogueLanguages()
		}
	}
}

func (d *DataSourceConfig) backboneWarnings() []ValidationWarning {
	var res []ValidationWarning
	if d.ComposeNames != nil || d.StripAuthor || d.ParseNames {
		res = append(res, ValidationWarning{
			DataSourceID: d.ID,
			Field:        "compose_names, strip_author, parse_names",
			Message:      "options are ignored by the backbone variant, it uses canonicalName",
			Suggestion:   "Remove these options or set 'variant: catalogue'",
		})
	}
	return res
}

func (d *DataSourceConfig) catalogueWarnings() []ValidationWarning {
	var res []ValidationWarning
	if d.Compose() && (d.StripAuthor || d.ParseNames) {
		res = append(res, ValidationWarning{
			DataSourceID: d.ID,
			Field:        "strip_author, parse_names",
			Message:      "options are ignored when names are composed from epithets",
			Suggestion:   "Set 'compose_names: false' to use scientificName",
		})
		return res
	}
	if d.StripAuthor && d.ParseNames {
		res = append(res, ValidationWarning{
			DataSourceID: d.ID,
			Field:        "strip_author",
			Message:      "strip_author is ignored when parse_names is true",
			Suggestion:   "Remove 'strip_author' or set 'parse_names: false'",
		})
	}
	return res
}
