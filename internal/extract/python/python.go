// Package python implements the extractor set (C4) for the Python grammar:
// module-level imports, classes, functions, methods, class-level and
// instance attributes, and decorators. Getter/setter reclassification,
// parent/decorator attachment and parameter/return sub-extraction happen in
// internal/assemble, not here — extraction stays a flat per-kind scan.
package python

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extract"
	"github.com/codehem-go/codehem/internal/sitterutil"
)

// DecoratorNameRegexp is the regexp_pattern half of the decorator's Element Type
// Descriptor (spec.md §4.3): the fallback path when the decorator's own
// node children don't resolve to a plain identifier/attribute/call, e.g. a
// parenthesized or otherwise unusual decorator expression.
var DecoratorNameRegexp = regexp.MustCompile(`^@\s*([\w.]+)`)

// NewSet returns the complete Python extractor set.
func NewSet() extract.Set {
	return extract.Set{
		core.KindImport:         importExtractor{},
		core.KindClass:          classExtractor{},
		core.KindFunction:       functionExtractor{},
		core.KindMethod:         methodExtractor{},
		core.KindStaticProperty: classAttrExtractor{},
		core.KindProperty:       instanceAttrExtractor{},
		core.KindDecorator:      decoratorExtractor{},
	}
}

// effectiveParent skips the decorated_definition wrapper tree-sitter-python
// inserts around a decorated function/class, so callers can reason about
// "the block this definition lives in" without special-casing decorators.
func effectiveParent(n *sitter.Node) *sitter.Node {
	p := n.Parent()
	if p != nil && p.Type() == "decorated_definition" {
		return p.Parent()
	}
	return p
}

// declNode returns the node whose range/content should represent a
// class/function/method definition: n itself, or its enclosing
// decorated_definition wrapper when one or more decorators precede it. Per
// spec, a decorated element's range and content must include its attached
// decorators, not just the inner definition.
func declNode(n *sitter.Node) *sitter.Node {
	if p := n.Parent(); p != nil && p.Type() == "decorated_definition" {
		return p
	}
	return n
}

func isTopLevel(n *sitter.Node) bool {
	p := effectiveParent(n)
	return p != nil && p.Type() == "module"
}

func isInsideClassBody(n *sitter.Node) bool {
	parent := effectiveParent(n) // block
	if parent == nil || parent.Type() != "block" {
		return false
	}
	grand := parent.Parent()
	return grand != nil && grand.Type() == "class_definition"
}

func enclosingClassName(n *sitter.Node, t *sitterutil.Tree) string {
	classNode := sitterutil.FindAncestor(n, "class_definition")
	if classNode == nil {
		return ""
	}
	name := sitterutil.Child(classNode, "name")
	return t.Text(name)
}

// --- import ---

type importExtractor struct{}

func (importExtractor) Kind() core.ElementKind { return core.KindImport }

func (importExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "import_statement" && n.Type() != "import_from_statement" {
			return
		}
		if !isTopLevel(n) {
			return
		}
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindImport,
				Name:    importName(n, t),
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	})
	return raws, nil
}

func importName(n *sitter.Node, t *sitterutil.Tree) string {
	switch n.Type() {
	case "import_statement":
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch c.Type() {
			case "dotted_name":
				return t.Text(c)
			case "aliased_import":
				if name := sitterutil.Child(c, "name"); name != nil {
					return t.Text(name)
				}
			}
		}
	case "import_from_statement":
		if module := sitterutil.Child(n, "module_name"); module != nil {
			return t.Text(module)
		}
	}
	return strings.TrimSpace(t.Text(n))
}

// --- class ---

type classExtractor struct{}

func (classExtractor) Kind() core.ElementKind { return core.KindClass }

func (classExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "class_definition" {
			return
		}
		name := sitterutil.Child(n, "name")
		decl := declNode(n)
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindClass,
				Name:    t.Text(name),
				Content: t.Text(decl),
				Range:   sitterutil.RangeOf(decl),
			},
		})
	})
	return raws, nil
}

// --- function / method ---

type functionExtractor struct{}

func (functionExtractor) Kind() core.ElementKind { return core.KindFunction }

func (functionExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "function_definition" || !isTopLevel(n) {
			return
		}
		name := sitterutil.Child(n, "name")
		decl := declNode(n)
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindFunction,
				Name:    t.Text(name),
				Content: t.Text(decl),
				Range:   sitterutil.RangeOf(decl),
			},
		})
	})
	return raws, nil
}

type methodExtractor struct{}

func (methodExtractor) Kind() core.ElementKind { return core.KindMethod }

func (methodExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "function_definition" || !isInsideClassBody(n) {
			return
		}
		name := sitterutil.Child(n, "name")
		className := enclosingClassName(n, t)
		decl := declNode(n)
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:       core.KindMethod,
				Name:       t.Text(name),
				Content:    t.Text(decl),
				Range:      sitterutil.RangeOf(decl),
				ParentName: className,
			},
		})
	})
	return raws, nil
}

// --- class-level (static) attributes: `name = value` or `name: T = value`
// directly inside a class body, not inside any method. ---

type classAttrExtractor struct{}

func (classAttrExtractor) Kind() core.ElementKind { return core.KindStaticProperty }

func (classAttrExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "class_definition" {
			return
		}
		body := sitterutil.Child(n, "body")
		if body == nil {
			return
		}
		className := t.Text(sitterutil.Child(n, "name"))
		for i := 0; i < int(body.ChildCount()); i++ {
			stmt := body.Child(i)
			var assign *sitter.Node
			switch stmt.Type() {
			case "expression_statement":
				if c := stmt.Child(0); c != nil && (c.Type() == "assignment" || c.Type() == "annotated_assignment") {
					assign = c
				}
			case "assignment", "annotated_assignment":
				assign = stmt
			}
			if assign == nil {
				continue
			}
			left := sitterutil.Child(assign, "left")
			if left == nil || left.Type() != "identifier" {
				continue
			}
			readonly := false
			valueType := ""
			if typeNode := sitterutil.Child(assign, "type"); typeNode != nil {
				valueType = t.Text(typeNode)
				readonly = strings.Contains(valueType, "Final")
			}
			raws = append(raws, extract.Raw{
				Node: assign,
				Element: &core.Element{
					Kind:       core.KindStaticProperty,
					Name:       t.Text(left),
					Content:    t.Text(stmt),
					Range:      sitterutil.RangeOf(stmt),
					ParentName: className,
					ValueType:  valueType,
					AdditionalData: map[string]any{
						"is_static":   true,
						"is_readonly": readonly,
					},
				},
			})
		}
	})
	return raws, nil
}

// --- instance attributes: `self.name = value` inside __init__. ---

type instanceAttrExtractor struct{}

func (instanceAttrExtractor) Kind() core.ElementKind { return core.KindProperty }

func (instanceAttrExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	seen := map[string]bool{}
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "function_definition" || !isInsideClassBody(n) {
			return
		}
		name := sitterutil.Child(n, "name")
		if t.Text(name) != "__init__" {
			return
		}
		className := enclosingClassName(n, t)
		sitterutil.WalkPreorder(n, func(inner *sitter.Node) {
			if inner.Type() != "assignment" {
				return
			}
			left := sitterutil.Child(inner, "left")
			if left == nil || left.Type() != "attribute" {
				return
			}
			obj := sitterutil.Child(left, "object")
			attr := sitterutil.Child(left, "attribute")
			if obj == nil || attr == nil || t.Text(obj) != "self" {
				return
			}
			key := className + "." + t.Text(attr)
			if seen[key] {
				return
			}
			seen[key] = true
			raws = append(raws, extract.Raw{
				Node: inner,
				Element: &core.Element{
					Kind:       core.KindProperty,
					Name:       t.Text(attr),
					Content:    t.Text(inner),
					Range:      sitterutil.RangeOf(inner),
					ParentName: className,
					AdditionalData: map[string]any{
						"is_static": false,
					},
				},
			})
		})
	})
	return raws, nil
}

// --- decorator ---
//
// Decorators need no structural context beyond their own span, so this is
// the one kind extracted through the generic query path (see
// DecoratorQuery / descriptor.ElementTypeDescriptor) rather than a direct
// AST walk — the pattern-based half of spec.md §4.3.

const DecoratorQuery = `(decorator) @decorator`

type decoratorExtractor struct{}

func (decoratorExtractor) Kind() core.ElementKind { return core.KindDecorator }

func (decoratorExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	captures, err := t.Query(DecoratorQuery)
	if err != nil {
		// Fall back to matching decorator nodes directly.
		captures = nil
		sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
			if n.Type() == "decorator" {
				captures = append(captures, sitterutil.Capture{Node: n, Name: "decorator"})
			}
		})
	}
	var raws []extract.Raw
	for _, c := range captures {
		if c.Name != "decorator" {
			continue
		}
		n := c.Node
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindDecorator,
				Name:    decoratorName(n, t),
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	}
	return raws, nil
}

func decoratorName(n *sitter.Node, t *sitterutil.Tree) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "identifier":
			return t.Text(c)
		case "attribute":
			return t.Text(c)
		case "call":
			if fn := sitterutil.Child(c, "function"); fn != nil {
				return t.Text(fn)
			}
		}
	}
	text := strings.TrimSpace(t.Text(n))
	if m := DecoratorNameRegexp.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimPrefix(text, "@")
}
