// Package iooutput writes lexicon lines into per-class files and
// post-processes them after both passes are finished.
package iooutput

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/gnames/gnlexicon/pkg/kingdom"
	"github.com/gnames/gnsys"
)

// Suffixes of separate taxon and vernacular files.
const (
	TaxonSuffix      = "_tx"
	VernacularSuffix = "_vn"
)

// Layout determines names and locations of the output files of one source.
type Layout struct {
	// Dir is the base output directory.
	Dir string

	// BaseName is the prefix of every file name, for example
	// "gbif_backbone".
	BaseName string

	// Extension is appended to every file name, including the dot.
	Extension string

	// Separate writes vernacular names into their own files.
	Separate bool

	// Subfolders places files of every class into a directory named after
	// the class. Otherwise the lower-case class becomes part of the file
	// name.
	Subfolders bool
}

// Path returns the file of a class with the given suffix.
func (l Layout) Path(c kingdom.Class, suffix string) string {
	if l.Subfolders {
		return filepath.Join(
			l.Dir, c.String(), l.BaseName+suffix+l.Extension,
		)
	}
	return filepath.Join(
		l.Dir, l.BaseName+"_"+c.Lower()+suffix+l.Extension,
	)
}

type stream struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func (s *stream) write(name, uri string) error {
	// bufio.Writer keeps the first error, checking one call is enough.
	s.w.WriteString(name)
	s.w.WriteByte('\t')
	s.w.WriteString(uri)
	if err := s.w.WriteByte('\n'); err != nil {
		return WriteError(s.path, err)
	}
	return nil
}

func (s *stream) close() error {
	err := s.w.Flush()
	if errC := s.f.Close(); err == nil {
		err = errC
	}
	if err != nil {
		return CloseError(s.path, err)
	}
	return nil
}

// Sink writes "name\turi" lines, one stream per class and kind. It
// implements lexicon.Sink.
type Sink struct {
	layout     Layout
	taxa       map[kingdom.Class]*stream
	vernacular map[kingdom.Class]*stream
	paths      []string
}

// New opens all output files of the layout, truncating existing ones.
// When vernacular names are not separate, both kinds share the same
// stream.
func New(l Layout) (*Sink, error) {
	res := Sink{
		layout:     l,
		taxa:       make(map[kingdom.Class]*stream),
		vernacular: make(map[kingdom.Class]*stream),
	}

	var err error
	for _, c := range kingdom.Classes() {
		if !l.Separate {
			if res.taxa[c], err = res.open(c, ""); err != nil {
				break
			}
			res.vernacular[c] = res.taxa[c]
			continue
		}
		if res.taxa[c], err = res.open(c, TaxonSuffix); err != nil {
			break
		}
		if res.vernacular[c], err = res.open(c, VernacularSuffix); err != nil {
			break
		}
	}

	if err != nil {
		_ = res.Close()
		return nil, err
	}
	return &res, nil
}

func (s *Sink) open(c kingdom.Class, suffix string) (*stream, error) {
	path := s.layout.Path(c, suffix)
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, CreateError(path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, CreateError(path, err)
	}
	s.paths = append(s.paths, path)
	return &stream{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// WriteTaxon writes a scientific name line under the class.
func (s *Sink) WriteTaxon(c kingdom.Class, name, uri string) error {
	return s.taxa[c].write(name, uri)
}

// WriteVernacular writes a vernacular name line under the class.
func (s *Sink) WriteVernacular(c kingdom.Class, name, uri string) error {
	return s.vernacular[c].write(name, uri)
}

// Paths returns all files opened by the sink, in the order of creation.
func (s *Sink) Paths() []string {
	return s.paths
}

// Close flushes and closes every stream. It can be called more than once.
func (s *Sink) Close() error {
	var res error
	closed := make(map[*stream]struct{})
	for _, m := range []map[kingdom.Class]*stream{s.taxa, s.vernacular} {
		for c, st := range m {
			delete(m, c)
			if st == nil {
				continue
			}
			if _, ok := closed[st]; ok {
				continue
			}
			closed[st] = struct{}{}
			if err := st.close(); err != nil && res == nil {
				res = err
			}
		}
	}
	return res
}
