package lexicon

import (
	"regexp"
	"strings"
)

// Placeholder is the Catalogue of Life name of taxa with unknown placement.
const Placeholder = "incertae sedis"

var (
	vernacularSep = regexp.MustCompile(", ?")
	// keeps the words before an author citation, which starts with an
	// uppercase word or with "in"
	authorPattern = regexp.MustCompile(`^(\p{Lu}?\P{Lu}+) (in)?.*$`)
)

// SplitVernacular splits a vernacular name field on commas followed by an
// optional space.
func SplitVernacular(field string) []string {
	return vernacularSep.Split(field, -1)
}

// StripAuthor removes a trailing author citation from a scientific name.
// Names that do not match the pattern are returned unchanged.
func StripAuthor(name string) string {
	m := authorPattern.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[1]
}

// ComposeName joins genus and epithets with single spaces. Empty epithets
// are kept, so the result can contain trailing or double spaces.
func ComposeName(genus, specificEpithet, infraspecificEpithet string) string {
	return strings.Join(
		[]string{genus, specificEpithet, infraspecificEpithet}, " ",
	)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
