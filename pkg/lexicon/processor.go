package lexicon

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/gnames/gnlexicon/pkg/dwc"
	"github.com/gnames/gnlexicon/pkg/kingdom"
)

// Processor runs the taxon and vernacular passes for one source.
// It is not safe for concurrent use; the maps it builds in the taxon pass
// are only read in the vernacular pass.
type Processor struct {
	variant   Variant
	sink      Sink
	languages []string
	langSet   map[string]struct{}

	// kingdoms maps taxonID to kingdom.
	kingdoms map[string]string
	// ids maps taxonID to resolved identifier for redirecting variants.
	ids map[string]string
	// pending holds taxa without identifier until their accepted name.
	pending *redirects

	taxaDone bool
	stats    Stats
}

// New creates a Processor. Vernacular names are kept only if their
// language is one of languages (exact, case-sensitive match).
func New(v Variant, s Sink, languages []string) *Processor {
	res := &Processor{
		variant:  v,
		sink:     s,
		langSet:  make(map[string]struct{}, len(languages)),
		kingdoms: make(map[string]string),
		ids:      make(map[string]string),
		pending:  newRedirects(),
	}
	for _, l := range languages {
		res.langSet[l] = struct{}{}
	}
	res.languages = slices.Sorted(maps.Keys(res.langSet))
	return res
}

// Languages returns the accepted languages sorted alphabetically.
func (p *Processor) Languages() []string {
	return slices.Clone(p.languages)
}

// Stats returns counters collected so far.
func (p *Processor) Stats() Stats {
	return p.stats
}

// ReadTaxa runs the taxon pass over a tab-separated taxon table.
// Deferred taxa whose accepted name did not follow them are dropped when
// the table ends.
func (p *Processor) ReadTaxa(ctx context.Context, r io.Reader) error {
	tbl, err := dwc.NewReader(r)
	if err != nil {
		return err
	}
	if err = p.variant.TaxonColumns(tbl); err != nil {
		return err
	}

	err = tbl.Each(func(row dwc.Row) error {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}
		return p.taxon(row)
	})
	if err != nil {
		return err
	}

	p.stats.Dropped += p.pending.len()
	p.pending.reset()
	p.taxaDone = true
	return nil
}

func (p *Processor) taxon(row dwc.Row) error {
	t, err := p.variant.Taxon(row)
	if err != nil {
		return err
	}
	p.stats.TaxaRows++

	redirects := p.variant.Redirects()
	if redirects && t.Identifier != "" {
		p.ids[t.ID] = t.Identifier
	}

	if p.variant.Skip(t.Name) {
		p.stats.TaxaSkipped++
		return nil
	}

	p.kingdoms[t.ID] = t.Kingdom
	cl := kingdom.Classify(t.Kingdom)

	if !redirects {
		return p.emitTaxon(cl, t.Name, t.ID)
	}

	if t.Identifier == "" {
		p.pending.add(t.AcceptedID, t.Name, t.ID)
		p.stats.Deferred++
		return nil
	}

	if err = p.emitTaxon(cl, t.Name, t.Identifier); err != nil {
		return err
	}
	for _, d := range p.pending.drain(t.ID) {
		if err = p.emitTaxon(cl, d.name, t.Identifier); err != nil {
			return err
		}
		p.ids[d.taxonID] = t.Identifier
		p.stats.Backfilled++
	}
	return nil
}

func (p *Processor) emitTaxon(cl kingdom.Class, name, id string) error {
	if err := p.sink.WriteTaxon(cl, name, p.variant.BaseURI()+id); err != nil {
		return err
	}
	p.stats.TaxaEmitted++
	return nil
}

// ReadVernaculars runs the vernacular pass. It fails with PhaseError if
// ReadTaxa did not finish successfully before.
func (p *Processor) ReadVernaculars(ctx context.Context, r io.Reader) error {
	if !p.taxaDone {
		return PhaseError()
	}

	tbl, err := dwc.NewReader(r)
	if err != nil {
		return err
	}
	idx, err := tbl.Columns(dwc.TaxonID, dwc.Language, dwc.VernacularName)
	if err != nil {
		return err
	}

	return tbl.Each(func(row dwc.Row) error {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}
		var v Vernacular
		var err error
		if v.TaxonID, err = row.Field(idx[0]); err != nil {
			return err
		}
		if v.Language, err = row.Field(idx[1]); err != nil {
			return err
		}
		if v.Names, err = row.Field(idx[2]); err != nil {
			return err
		}
		return p.vernacular(v)
	})
}

func (p *Processor) vernacular(v Vernacular) error {
	p.stats.VernacularRows++
	if _, ok := p.langSet[v.Language]; !ok {
		p.stats.VernacularFiltered++
		return nil
	}

	uri := p.variant.BaseURI() + p.ResolveID(v.TaxonID)
	cl := kingdom.Classify(p.kingdoms[v.TaxonID])
	for _, name := range SplitVernacular(v.Names) {
		if isBlank(name) {
			continue
		}
		if err := p.sink.WriteVernacular(cl, name, uri); err != nil {
			return err
		}
		p.stats.VernacularEmitted++
	}
	return nil
}

// ResolveID returns the identifier used in URIs for a taxonID. For
// redirecting variants it is the resolved identifier, if any; otherwise
// the taxonID itself.
func (p *Processor) ResolveID(taxonID string) string {
	if !p.variant.Redirects() {
		return taxonID
	}
	if id, ok := p.ids[taxonID]; ok {
		return id
	}
	return taxonID
}
