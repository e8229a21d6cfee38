// Package extract defines the Extractor contract (C4): one extractor per
// element kind, per language, turning tree-sitter nodes into raw elements.
// Raw elements still carry their originating node, since the Post-Processor
// (internal/assemble) needs it to resolve parent/child relationships,
// decorator attachment, and parameter/return sub-extraction — work that
// belongs to assembly, not extraction, per the pipeline's separation of
// concerns.
package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/sitterutil"
)

// Raw is one element found by an Extractor, paired with the tree-sitter
// node it came from so the assembler can inspect structure the Element
// value itself doesn't retain (siblings, parent chain, sub-nodes).
type Raw struct {
	Element *core.Element
	Node    *sitter.Node
}

// Extractor finds every occurrence of one element kind in a parsed tree.
// A query-based extractor is expected to fall back to a plain AST walk
// (matching node types directly) when the grammar lacks query support for
// a construct; both strategies return the same Raw shape so callers never
// need to know which one ran.
type Extractor interface {
	Kind() core.ElementKind
	Extract(t *sitterutil.Tree) ([]Raw, error)
}

// Set is the full collection of extractors for one language, keyed by kind.
type Set map[core.ElementKind]Extractor

// Run executes every extractor in the set against t and returns their
// combined raw results grouped by kind in the fixed order orderedKinds
// gives, each kind's matches in source order.
func (s Set) Run(t *sitterutil.Tree) ([]Raw, error) {
	var all []Raw
	for _, kind := range orderedKinds(s) {
		raws, err := s[kind].Extract(t)
		if err != nil {
			return nil, core.Wrap(core.ErrExtractorFailure, "extractor failed for kind "+string(kind), err)
		}
		all = append(all, raws...)
	}
	return all, nil
}

// orderedKinds returns s's keys in a fixed, deterministic order so Run's
// output ordering doesn't depend on Go's randomized map iteration.
func orderedKinds(s Set) []core.ElementKind {
	preferred := []core.ElementKind{
		core.KindImport,
		core.KindNamespace,
		core.KindTypeAlias,
		core.KindEnum,
		core.KindInterface,
		core.KindClass,
		core.KindFunction,
		core.KindMethod,
		core.KindProperty,
		core.KindStaticProperty,
		core.KindPropertyGetter,
		core.KindPropertySetter,
		core.KindDecorator,
	}
	var out []core.ElementKind
	seen := map[core.ElementKind]bool{}
	for _, k := range preferred {
		if _, ok := s[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	for k := range s {
		if !seen[k] {
			out = append(out, k)
		}
	}
	return out
}
