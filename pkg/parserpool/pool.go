// Package parserpool provides a pool of gnparser instances that reduce
// scientific names to their canonical form.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool parses names with parsers of the nomenclatural code that fits a
// kingdom.
type Pool interface {
	// Parse parses a scientific name string using the specified nomenclatural
	// code. Safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Canonical returns the simple canonical form of a name (no authors,
	// no ranks). Names that cannot be parsed are returned unchanged.
	Canonical(nameString, kingdom string) string

	// Close releases the parsers. The pool cannot be used afterwards.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
	poolSize     int
}

// NewPool creates parser pools with jobsNum parsers per nomenclatural
// code. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	botanicalCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	zoologicalCfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)

	return &PoolImpl{
		botanicalCh:  gnparser.NewPool(botanicalCfg, poolSize),
		zoologicalCh: gnparser.NewPool(zoologicalCfg, poolSize),
		poolSize:     poolSize,
	}
}

// Code picks the nomenclatural code for a kingdom. Plants, fungi and
// chromists follow the botanical code, everything else the zoological one.
func Code(kingdom string) nomcode.Code {
	switch kingdom {
	case "Plantae", "Fungi", "Chromista":
		return nomcode.Botanical
	default:
		return nomcode.Zoological
	}
}

// Parse parses a scientific name string using the specified nomenclatural code.
func (p *PoolImpl) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	// blocks if all parsers are busy
	parser := <-ch
	result := parser.ParseName(nameString)
	ch <- parser

	return result, nil
}

// Canonical returns the simple canonical form of nameString.
func (p *PoolImpl) Canonical(nameString, kingdom string) string {
	res, err := p.Parse(nameString, Code(kingdom))
	if err != nil || !res.Parsed || res.Canonical == nil {
		return nameString
	}
	return res.Canonical.Simple
}

// Close shuts down both parser pools.
func (p *PoolImpl) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		for range p.botanicalCh {
		}
	}

	if p.zoologicalCh != nil {
		close(p.zoologicalCh)
		for range p.zoologicalCh {
		}
	}
}
