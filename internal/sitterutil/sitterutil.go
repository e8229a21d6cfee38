// Package sitterutil wraps github.com/smacker/go-tree-sitter parsing and
// node navigation behind a small, language-agnostic surface: every
// descriptor/extractor calls into this package instead of touching the
// sitter API directly, so the opaque-parser boundary from the pipeline
// design stays in one place.
package sitterutil

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
)

// Tree owns a parsed tree-sitter AST together with the source bytes it was
// parsed from; callers hold one Tree per file and read nodes through it.
type Tree struct {
	Source []byte
	Lang   *sitter.Language
	tree   *sitter.Tree
}

// Parse runs a tree-sitter parse of src using lang and returns the owning
// Tree. The caller must call Close when done.
func Parse(ctx context.Context, lang *sitter.Language, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	return &Tree{Source: src, Lang: lang, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Root returns the tree's root node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// HasErrors reports whether the tree contains any ERROR or MISSING node,
// i.e. the source failed to parse cleanly.
func (t *Tree) HasErrors() bool {
	return hasErrorNode(t.Root())
}

func hasErrorNode(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	if n.IsError() || n.IsMissing() {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if hasErrorNode(n.Child(i)) {
			return true
		}
	}
	return false
}

// Text returns the source slice spanned by n.
func (t *Tree) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(t.Source)
}

// RangeOf converts a tree-sitter node's span into a core.Range, using
// 1-based lines (tree-sitter rows are 0-based) and 0-based columns.
func RangeOf(n *sitter.Node) core.Range {
	if n == nil {
		return core.Range{}
	}
	start := n.StartPoint()
	end := n.EndPoint()
	return core.Range{
		Start: core.Position{Line: int(start.Row) + 1, Column: int(start.Column)},
		End:   core.Position{Line: int(end.Row) + 1, Column: int(end.Column)},
	}
}

// Child returns the named field child of n, or nil.
func Child(n *sitter.Node, field string) *sitter.Node {
	if n == nil {
		return nil
	}
	return n.ChildByFieldName(field)
}

// ChildrenOfType returns every direct child of n whose node type is one of
// types.
func ChildrenOfType(n *sitter.Node, types ...string) []*sitter.Node {
	if n == nil {
		return nil
	}
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if want[c.Type()] {
			out = append(out, c)
		}
	}
	return out
}

// WalkPreorder visits n and every descendant, parent before children.
func WalkPreorder(n *sitter.Node, fn func(*sitter.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		WalkPreorder(n.Child(i), fn)
	}
}

// Capture is one (node, capture name) pair a Query match produced.
type Capture struct {
	Node *sitter.Node
	Name string
}

// Query runs a tree-sitter query against root and returns every captured
// node paired with the capture name that matched it, implementing spec.md
// §4.1's query(q_string, root, code_bytes) -> sequence of (node,
// capture_name) contract. lang must be the same grammar root was parsed
// with. Captures are returned in match order.
func Query(lang *sitter.Language, queryStr string, root *sitter.Node, source []byte) ([]Capture, error) {
	q, err := sitter.NewQuery([]byte(queryStr), lang)
	if err != nil {
		return nil, err
	}

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q, root)

	var out []Capture
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			out = append(out, Capture{Node: c.Node, Name: q.CaptureNameForId(c.Index)})
		}
	}
	return out, nil
}

// Query runs queryStr against t's root node using t's own grammar, per
// descriptor.ElementTypeDescriptor.TreeSitterQuery.
func (t *Tree) Query(queryStr string) ([]Capture, error) {
	return Query(t.Lang, queryStr, t.Root(), t.Source)
}

// FindAncestor walks up from n looking for the nearest ancestor whose node
// type is one of types.
func FindAncestor(n *sitter.Node, types ...string) *sitter.Node {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if want[p.Type()] {
			return p
		}
	}
	return nil
}

// PrecedingSiblingsOfType returns n's preceding siblings whose type is one
// of types, walking outward (nearest sibling first) and stopping at the
// first sibling whose type is not in types and not in the given skip set of
// "transparent" node types (e.g. blank-line-insensitive whitespace nodes
// tree-sitter does not emit, but comments often sit between decorators).
func PrecedingSiblingsOfType(n *sitter.Node, types []string, skip []string) []*sitter.Node {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	skipSet := make(map[string]bool, len(skip))
	for _, t := range skip {
		skipSet[t] = true
	}
	var out []*sitter.Node
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if want[s.Type()] {
			out = append([]*sitter.Node{s}, out...)
			continue
		}
		if skipSet[s.Type()] {
			continue
		}
		break
	}
	return out
}
