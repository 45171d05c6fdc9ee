package lexicon

import (
	"strings"

	"github.com/gnames/gnlexicon/pkg/dwc"
	"github.com/gnames/gnlexicon/pkg/parserpool"
)

// Names of supported variants.
const (
	VariantBackbone  = "backbone"
	VariantCatalogue = "catalogue"
)

// Default URI prefixes of the variants.
const (
	BackboneURI  = "https://www.gbif.org/species/"
	CatalogueURI = "http://www.catalogueoflife.org/col/details/species/id/"
)

// Variant adapts the driver to a particular Darwin Core export.
type Variant interface {
	// Name returns the variant name used in configuration and logs.
	Name() string

	// BaseURI is the prefix joined with identifiers to create URIs.
	BaseURI() string

	// TaxonColumns locates the columns the variant needs in the taxon
	// table header. A missing column is a fatal error.
	TaxonColumns(r *dwc.Reader) error

	// Taxon extracts a record from a row of the taxon table.
	Taxon(row dwc.Row) (Taxon, error)

	// Skip reports names that must not be emitted.
	Skip(name string) bool

	// Redirects is true when identifiers can be missing and get resolved
	// through accepted name usages. Otherwise the taxonID is the
	// identifier.
	Redirects() bool
}

type settings struct {
	baseURI      string
	composeNames bool
	stripAuthor  bool
	parser       parserpool.Pool
}

// Option modifies settings of a variant.
type Option func(*settings)

// OptBaseURI overrides the URI prefix. Empty strings are ignored.
func OptBaseURI(s string) Option {
	s = strings.TrimSpace(s)
	return func(st *settings) {
		if s != "" {
			st.baseURI = s
		}
	}
}

// OptComposeNames makes catalogue names from genus and epithets instead of
// the scientificName column.
func OptComposeNames(b bool) Option {
	return func(st *settings) {
		st.composeNames = b
	}
}

// OptStripAuthor removes author citations from scientificName values.
func OptStripAuthor(b bool) Option {
	return func(st *settings) {
		st.stripAuthor = b
	}
}

// OptParser sets a parser pool that turns scientificName values into
// canonical forms. It takes precedence over OptStripAuthor.
func OptParser(p parserpool.Pool) Option {
	return func(st *settings) {
		st.parser = p
	}
}

// NewVariant creates a variant by name.
func NewVariant(name string, opts ...Option) (Variant, error) {
	switch name {
	case VariantBackbone:
		return NewBackbone(opts...), nil
	case VariantCatalogue:
		return NewCatalogue(opts...), nil
	default:
		return nil, UnknownVariantError(name)
	}
}

// backbone reads the GBIF Backbone Taxonomy. Its taxonID is also the
// identifier in GBIF species URIs.
type backbone struct {
	settings
	idIdx, kingdomIdx, nameIdx int
}

// NewBackbone creates the GBIF Backbone variant. Only OptBaseURI is
// relevant for it.
func NewBackbone(opts ...Option) Variant {
	res := &backbone{settings: settings{baseURI: BackboneURI}}
	for _, opt := range opts {
		opt(&res.settings)
	}
	return res
}

func (b *backbone) Name() string    { return VariantBackbone }
func (b *backbone) BaseURI() string { return b.baseURI }
func (b *backbone) Redirects() bool { return false }

func (b *backbone) TaxonColumns(r *dwc.Reader) error {
	idx, err := r.Columns(dwc.TaxonID, dwc.CanonicalName, dwc.Kingdom)
	if err != nil {
		return err
	}
	b.idIdx, b.nameIdx, b.kingdomIdx = idx[0], idx[1], idx[2]
	return nil
}

func (b *backbone) Taxon(row dwc.Row) (Taxon, error) {
	var res Taxon
	var err error
	if res.ID, err = row.Field(b.idIdx); err != nil {
		return res, err
	}
	if res.Name, err = row.Field(b.nameIdx); err != nil {
		return res, err
	}
	if res.Kingdom, err = row.Field(b.kingdomIdx); err != nil {
		return res, err
	}
	res.Identifier = res.ID
	return res, nil
}

func (b *backbone) Skip(name string) bool {
	return isBlank(name)
}

// catalogue reads Catalogue of Life exports, where synonyms often lack an
// identifier and point to the accepted name instead.
type catalogue struct {
	settings
	idIdx, identifierIdx, acceptedIdx, kingdomIdx int
	// scientificName column for direct names
	nameIdx int
	// genus and epithets for composed names
	genusIdx, spIdx, infraIdx int
}

// NewCatalogue creates the Catalogue of Life variant. Names are composed
// from genus and epithets unless OptComposeNames(false) is given.
func NewCatalogue(opts ...Option) Variant {
	res := &catalogue{
		settings: settings{baseURI: CatalogueURI, composeNames: true},
	}
	for _, opt := range opts {
		opt(&res.settings)
	}
	return res
}

func (c *catalogue) Name() string    { return VariantCatalogue }
func (c *catalogue) BaseURI() string { return c.baseURI }
func (c *catalogue) Redirects() bool { return true }

func (c *catalogue) TaxonColumns(r *dwc.Reader) error {
	idx, err := r.Columns(
		dwc.TaxonID, dwc.Identifier, dwc.AcceptedNameUsageID, dwc.Kingdom,
	)
	if err != nil {
		return err
	}
	c.idIdx, c.identifierIdx = idx[0], idx[1]
	c.acceptedIdx, c.kingdomIdx = idx[2], idx[3]

	if !c.composeNames {
		idx, err = r.Columns(dwc.ScientificName)
		if err != nil {
			return err
		}
		c.nameIdx = idx[0]
		return nil
	}

	genus := dwc.GenericName
	if !r.Has(genus) && r.Has(dwc.Genus) {
		genus = dwc.Genus
	}
	idx, err = r.Columns(genus, dwc.SpecificEpithet, dwc.InfraspecificEpithet)
	if err != nil {
		return err
	}
	c.genusIdx, c.spIdx, c.infraIdx = idx[0], idx[1], idx[2]
	return nil
}

func (c *catalogue) Taxon(row dwc.Row) (Taxon, error) {
	var res Taxon
	var err error
	if res.ID, err = row.Field(c.idIdx); err != nil {
		return res, err
	}
	if res.Identifier, err = row.Field(c.identifierIdx); err != nil {
		return res, err
	}
	if isBlank(res.Identifier) {
		res.Identifier = ""
	}
	if res.AcceptedID, err = row.Field(c.acceptedIdx); err != nil {
		return res, err
	}
	if res.Kingdom, err = row.Field(c.kingdomIdx); err != nil {
		return res, err
	}
	if res.Name, err = c.name(row, res.Kingdom); err != nil {
		return res, err
	}
	return res, nil
}

func (c *catalogue) name(row dwc.Row, kingdom string) (string, error) {
	if c.composeNames {
		var parts [3]string
		var err error
		for i, idx := range []int{c.genusIdx, c.spIdx, c.infraIdx} {
			if parts[i], err = row.Field(idx); err != nil {
				return "", err
			}
		}
		return ComposeName(parts[0], parts[1], parts[2]), nil
	}

	res, err := row.Field(c.nameIdx)
	if err != nil {
		return "", err
	}
	switch {
	case c.parser != nil && !isBlank(res):
		return c.parser.Canonical(res, kingdom), nil
	case c.stripAuthor:
		return StripAuthor(res), nil
	default:
		return res, nil
	}
}

func (c *catalogue) Skip(name string) bool {
	return isBlank(name) || name == Placeholder
}
