// Package dwc reads Darwin Core tables exported as tab-separated text.
//
// Fields are split on tabs only; quote characters are ordinary data, the
// same as csv.QUOTE_NONE in DwC-A tooling. The first line is the header.
package dwc

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Column names used by GBIF Backbone and Catalogue of Life exports.
const (
	TaxonID              = "taxonID"
	Kingdom              = "kingdom"
	CanonicalName        = "canonicalName"
	ScientificName       = "scientificName"
	GenericName          = "genericName"
	Genus                = "genus"
	SpecificEpithet      = "specificEpithet"
	InfraspecificEpithet = "infraspecificEpithet"
	Identifier           = "identifier"
	AcceptedNameUsageID  = "acceptedNameUsageID"
	Language             = "language"
	VernacularName       = "vernacularName"
)

const maxLineSize = 16 * 1024 * 1024

// Reader iterates over rows of a tab-separated table.
type Reader struct {
	sc     *bufio.Scanner
	header []string
	index  map[string]int
	line   int
}

// Row is one data line of a table.
type Row struct {
	// Line is the 1-based line number in the file, header included.
	Line   int
	Fields []string
}

// NewReader reads the header line from r and returns a Reader positioned
// at the first data row.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	res := &Reader{sc: sc, index: make(map[string]int)}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, ReadError(0, err)
		}
		return nil, EmptyTableError()
	}
	res.line = 1
	res.header = split(sc.Text())
	for i, v := range res.header {
		// the first occurrence wins for duplicated names
		if _, ok := res.index[v]; !ok {
			res.index[v] = i
		}
	}
	return res, nil
}

// Header returns column names in file order.
func (r *Reader) Header() []string {
	return r.header
}

// Has reports whether the header contains a column.
func (r *Reader) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Columns returns zero-based indices of the given columns. The first
// absent column results in MissingColumnError.
func (r *Reader) Columns(names ...string) ([]int, error) {
	res := make([]int, len(names))
	for i, v := range names {
		idx, ok := r.index[v]
		if !ok {
			return nil, MissingColumnError(v, r.header)
		}
		res[i] = idx
	}
	return res, nil
}

// Read returns the next row or io.EOF when the table is exhausted.
func (r *Reader) Read() (Row, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Row{}, ReadError(r.line, err)
		}
		return Row{}, io.EOF
	}
	r.line++
	return Row{Line: r.line, Fields: split(r.sc.Text())}, nil
}

// Each calls fn for every remaining row. It stops at the first error
// returned by fn or by the underlying reader.
func (r *Reader) Each(fn func(Row) error) error {
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(row); err != nil {
			return err
		}
	}
}

// Field returns the value at index i. Rows shorter than the header are
// malformed and return ShortRowError.
func (r Row) Field(i int) (string, error) {
	if i < 0 || i >= len(r.Fields) {
		return "", ShortRowError(r.Line, i, len(r.Fields))
	}
	return r.Fields[i], nil
}

func split(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, "\t")
}
