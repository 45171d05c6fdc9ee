// subset-dwc extracts a representative subset from large Darwin Core
// taxon and vernacular tables.
//
// The subset keeps the edge cases of lexicon building:
//   - synonyms without identifier together with their accepted taxa
//   - "incertae sedis" placeholders and empty names
//   - kingdoms without a dedicated class
//   - vernacular names of every selected taxon
//
// Rows keep their original order, so accepted taxa still follow or precede
// their synonyms exactly as in the full table.
//
// Usage:
//
//	go run . <taxon> <vernacular> <output-dir>
//
// Examples:
//
//	go run . ~/data/col/Taxon.tsv ~/data/col/VernacularName.tsv ../../testdata/col
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnlexicon/pkg/dwc"
	"github.com/gnames/gnlexicon/pkg/kingdom"
	"github.com/gnames/gnlexicon/pkg/lexicon"
	"github.com/gnames/gnsys"
)

// Configuration constants
const (
	// Target number of sampled taxon rows
	targetTaxa = 3000

	// Maximum records to include from each edge case category
	maxEdgeCaseRecords = 50
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <taxon> <vernacular> <output-dir>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  taxon       tab-separated Darwin Core taxon table\n")
		fmt.Fprintf(os.Stderr, "  vernacular  tab-separated Darwin Core vernacular table\n")
		fmt.Fprintf(os.Stderr, "  output-dir  directory for the subset tables\n")
		os.Exit(1)
	}

	taxonPath := os.Args[1]
	vernPath := os.Args[2]
	outDir := os.Args[3]

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Info("starting Darwin Core subset extraction",
		"taxon", taxonPath,
		"vernacular", vernPath,
		"target_size", targetTaxa,
		"output", outDir,
	)

	if err := createSubset(logger, taxonPath, vernPath, outDir); err != nil {
		logger.Error("subset extraction failed", "error", err)
		os.Exit(1)
	}

	logger.Info("subset extraction complete", "output", outDir)
}

func createSubset(logger *slog.Logger, taxonPath, vernPath, outDir string) error {
	if err := gnsys.MakeDir(outDir); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	total, err := countRows(taxonPath)
	if err != nil {
		return err
	}
	logger.Info("counted taxon rows", "rows", total)

	selected, err := selectTaxa(taxonPath, total)
	if err != nil {
		return err
	}
	logger.Info("selected taxa", "taxa", len(selected))

	out := filepath.Join(outDir, filepath.Base(taxonPath))
	n, err := copyRows(taxonPath, out, selected)
	if err != nil {
		return err
	}
	logger.Info("wrote taxon subset", "rows", n, "path", out)

	out = filepath.Join(outDir, filepath.Base(vernPath))
	n, err = copyRows(vernPath, out, selected)
	if err != nil {
		return err
	}
	logger.Info("wrote vernacular subset", "rows", n, "path", out)
	return nil
}

// withTable opens a table and calls fn with its reader.
func withTable(path string, fn func(*dwc.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	r, err := dwc.NewReader(f)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	return fn(r)
}

func countRows(path string) (int, error) {
	var res int
	err := withTable(path, func(r *dwc.Reader) error {
		return r.Each(func(dwc.Row) error {
			res++
			return nil
		})
	})
	return res, err
}

// selectTaxa samples rows evenly and adds edge cases. Accepted taxa of
// selected synonyms are always included.
func selectTaxa(path string, total int) (map[string]struct{}, error) {
	res := make(map[string]struct{})
	step := max(total/targetTaxa, 1)
	edgeCases := make(map[string]int)

	// optional columns are -1 when absent
	col := func(r *dwc.Reader, name string) int {
		if idx, err := r.Columns(name); err == nil {
			return idx[0]
		}
		return -1
	}
	field := func(row dwc.Row, idx int) string {
		if idx < 0 {
			return ""
		}
		s, _ := row.Field(idx)
		return s
	}

	err := withTable(path, func(r *dwc.Reader) error {
		idx, err := r.Columns(dwc.TaxonID)
		if err != nil {
			return err
		}
		idIdx := idx[0]
		kingdomIdx := col(r, dwc.Kingdom)
		identifierIdx := col(r, dwc.Identifier)
		acceptedIdx := col(r, dwc.AcceptedNameUsageID)
		nameIdx := col(r, dwc.ScientificName)
		if nameIdx < 0 {
			nameIdx = col(r, dwc.CanonicalName)
		}

		edge := func(kind string) bool {
			if edgeCases[kind] >= maxEdgeCaseRecords {
				return false
			}
			edgeCases[kind]++
			return true
		}

		return r.Each(func(row dwc.Row) error {
			id := field(row, idIdx)
			name := strings.TrimSpace(field(row, nameIdx))
			k := field(row, kingdomIdx)

			keep := row.Line%step == 0
			switch {
			case identifierIdx >= 0 && strings.TrimSpace(field(row, identifierIdx)) == "":
				keep = edge("no identifier") || keep
			case name == "" || name == lexicon.Placeholder:
				keep = edge("placeholder") || keep
			case kingdom.Classify(k) == kingdom.Taxon || kingdom.Classify(k) == kingdom.Lichen:
				keep = edge("other kingdom") || keep
			}
			if !keep {
				return nil
			}

			res[id] = struct{}{}
			if accepted := field(row, acceptedIdx); accepted != "" {
				res[accepted] = struct{}{}
			}
			return nil
		})
	})
	return res, err
}

// copyRows writes the header and rows with selected taxonID values.
func copyRows(src, dst string, selected map[string]struct{}) (int, error) {
	var res int
	f, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("cannot create %s: %w", dst, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	err = withTable(src, func(r *dwc.Reader) error {
		idx, err := r.Columns(dwc.TaxonID)
		if err != nil {
			return err
		}
		writeLine(w, r.Header())
		return r.Each(func(row dwc.Row) error {
			id, err := row.Field(idx[0])
			if err != nil {
				return err
			}
			if _, ok := selected[id]; !ok {
				return nil
			}
			res++
			return writeLine(w, row.Fields)
		})
	})
	if err != nil {
		return res, err
	}
	return res, w.Flush()
}

func writeLine(w io.StringWriter, fields []string) error {
	_, err := w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}
