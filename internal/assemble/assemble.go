// Package assemble implements the Post-Processor (C5): it takes the flat,
// per-kind raw elements an extract.Set produced and turns them into the
// hierarchical ElementTree the rest of the engine operates on — attaching
// members to their containing class/interface, reclassifying decorated
// methods as getters/setters, attaching decorators as children, extracting
// parameters and return info, collapsing duplicate matches by specificity,
// and sorting everything into deterministic source order.
package assemble

import (
	"sort"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extract"
)

// Assembler turns one language's raw extraction results into a tree.
type Assembler interface {
	Assemble(raws []extract.Raw, source []byte) (*core.ElementTree, error)
}

// byRange sorts elements into source order, start position ascending.
type byRange []*core.Element

func (b byRange) Len() int      { return len(b) }
func (b byRange) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byRange) Less(i, j int) bool {
	return b[i].Range.Start.Less(b[j].Range.Start)
}

func sortByPosition(els []*core.Element) {
	sort.Stable(byRange(els))
}

// dedupKey identifies an element for collapsing duplicate matches produced
// when more than one extractor kind can match the same construct (e.g. a
// class-level assignment matched by both a generic and a specific
// extractor). Elements sharing a key are collapsed to the single
// most-specific kind, per core.Specificity.
type dedupKey struct {
	parent string
	name   string
	line   int
}

// dedupBySpecificity collapses elements that share the same (parent, name,
// start line) to the single most-specific one.
func dedupBySpecificity(els []*core.Element) []*core.Element {
	best := make(map[dedupKey]*core.Element)
	var order []dedupKey
	for _, e := range els {
		key := dedupKey{parent: e.ParentName, name: e.Name, line: e.Range.Start.Line}
		cur, ok := best[key]
		if !ok {
			best[key] = e
			order = append(order, key)
			continue
		}
		if core.Specificity(e.Kind) < core.Specificity(cur.Kind) {
			best[key] = e
		}
	}
	out := make([]*core.Element, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}
