// Package extraction implements the Extraction Service (C6): the facade
// that runs one language's extractor set, hands the raw results to its
// post-processor, and answers FindElement/FindByXPath queries against the
// resulting tree. Each Language Service (C11) owns one Service configured
// for its grammar.
package extraction

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/assemble"
	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extract"
	"github.com/codehem-go/codehem/internal/sitterutil"
	"github.com/codehem-go/codehem/internal/xpath"
)

// Service runs the full extraction pipeline for one language: parse,
// extract, assemble.
type Service struct {
	Sitter     *sitter.Language
	Extractors extract.Set
	Assembler  assemble.Assembler
}

// Extract parses source and returns its ElementTree.
func (s Service) Extract(ctx context.Context, source []byte) (*core.ElementTree, error) {
	tree, err := sitterutil.Parse(ctx, s.Sitter, source)
	if err != nil {
		return nil, core.Wrap(core.ErrParseFailure, "failed to parse source", err)
	}
	defer tree.Close()

	raws, err := s.Extractors.Run(tree)
	if err != nil {
		return nil, err
	}
	return s.Assembler.Assemble(raws, source)
}

// FindElement finds the first element matching name and kind, using
// core.Specificity to disambiguate when kind is "" (infer).
func FindElement(tree *core.ElementTree, name string, kind core.ElementKind) (*core.Element, bool) {
	var candidates []*core.Element
	tree.Walk(func(e *core.Element) {
		if e.Name != name {
			return
		}
		if kind != "" && e.Kind != kind {
			return
		}
		candidates = append(candidates, e)
	})
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if core.Specificity(c.Kind) < core.Specificity(best.Kind) {
			best = c
		}
	}
	return best, true
}

// FindByXPath parses raw and resolves it against tree.
func (s Service) FindByXPath(tree *core.ElementTree, raw string) (*core.Element, error) {
	x, err := xpath.Parse(raw)
	if err != nil {
		return nil, err
	}
	e, ok := xpath.Resolve(tree, x)
	if !ok {
		return nil, core.Wrap(core.ErrTargetNotFound, "no element matched xpath "+raw, nil)
	}
	return e, nil
}
