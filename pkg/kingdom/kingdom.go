// Package kingdom maps biological kingdoms to output classes of the lexicon.
// Every taxon and vernacular name ends up in exactly one class.
package kingdom

import (
	"slices"
	"strings"
)

// Class is an output category derived from a kingdom.
type Class string

const (
	AnimalFauna Class = "Animal_Fauna"
	Archaea     Class = "Archaea"
	Bacteria    Class = "Bacteria"
	Chromista   Class = "Chromista"
	Fungi       Class = "Fungi"
	Lichen      Class = "Lichen"
	PlantFlora  Class = "Plant_Flora"
	Protozoa    Class = "Protozoa"
	Viruses     Class = "Viruses"

	// Taxon is the default class for unknown or empty kingdoms.
	Taxon Class = "Taxon"
)

var kingdomClass = map[string]Class{
	"Animalia":  AnimalFauna,
	"Archaea":   Archaea,
	"Bacteria":  Bacteria,
	"Chromista": Chromista,
	"Fungi":     Fungi,
	"Lichen":    Lichen,
	"Plantae":   PlantFlora,
	"Protozoa":  Protozoa,
	"Taxon":     Taxon,
	"Viruses":   Viruses,
}

// classKingdom is the inverse of kingdomClass. Lichen and Taxon are not
// real kingdoms and have no entry.
var classKingdom = map[Class]string{
	AnimalFauna: "Animalia",
	Archaea:     "Archaea",
	Bacteria:    "Bacteria",
	Chromista:   "Chromista",
	Fungi:       "Fungi",
	PlantFlora:  "Plantae",
	Protozoa:    "Protozoa",
	Viruses:     "Viruses",
}

var classes = func() []Class {
	res := make([]Class, 0, len(kingdomClass))
	for _, v := range kingdomClass {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}()

// Classify returns the output class for a kingdom name. Unknown and empty
// names fall back to Taxon.
func Classify(kingdom string) Class {
	if res, ok := kingdomClass[kingdom]; ok {
		return res
	}
	return Taxon
}

// Kingdom returns the kingdom behind a class. The second value is false
// for classes that do not correspond to a kingdom.
func Kingdom(c Class) (string, bool) {
	res, ok := classKingdom[c]
	return res, ok
}

// Classes returns all output classes sorted by name.
func Classes() []Class {
	return slices.Clone(classes)
}

// Lower is used for flat file names.
func (c Class) Lower() string {
	return strings.ToLower(string(c))
}

func (c Class) String() string {
	return string(c)
}
