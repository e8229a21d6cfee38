// Package tsx implements the shared extractor set (C4) for the
// brace-based TypeScript/JavaScript grammar family. A single Dialect flag
// toggles the TypeScript-only element kinds (interfaces, type aliases,
// enums, namespaces); JavaScript gets the same grammar's
// function/class/method/property extractors with those dialect-only kinds
// disabled. Static/readonly detection from modifier keywords runs in both
// dialects.
package tsx

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
// node children don't resolve to a plain identifier/member/call expression.
var DecoratorNameRegexp = regexp.MustCompile(`^@\s*([\w.]+)`)

// Dialect selects which TypeScript-only constructs the set recognizes.
type Dialect int

const (
	JavaScript Dialect = iota
	TypeScript
)

// NewSet returns the extractor set for dialect.
func NewSet(d Dialect) extract.Set {
	s := extract.Set{
		core.KindImport:         importExtractor{},
		core.KindClass:          classExtractor{},
		core.KindFunction:       functionExtractor{},
		core.KindMethod:         methodExtractor{},
		core.KindProperty:       propertyExtractor{kind: core.KindProperty},
		core.KindStaticProperty: propertyExtractor{kind: core.KindStaticProperty},
		core.KindDecorator:      decoratorExtractor{},
	}
	if d == TypeScript {
		s[core.KindInterface] = interfaceExtractor{}
		s[core.KindTypeAlias] = typeAliasExtractor{}
		s[core.KindEnum] = enumExtractor{}
		s[core.KindNamespace] = namespaceExtractor{}
	}
	return s
}

// declNode returns the node whose range/content should represent a
// class/function declaration: n itself, or its enclosing export_statement
// wrapper when the declaration is exported directly (`export class X {}`,
// `export default function f() {}`). Per spec, an exported element's range
// must include the `export` keyword.
func declNode(n *sitter.Node) *sitter.Node {
	if p := n.Parent(); p != nil && p.Type() == "export_statement" {
		return p
	}
	return n
}

func hasKeywordChild(n *sitter.Node, keyword string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == keyword {
			return true
		}
	}
	return false
}

func enclosingClassName(n *sitter.Node, t *sitterutil.Tree) string {
	classNode := sitterutil.FindAncestor(n, "class_declaration", "class", "interface_declaration")
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
	root := t.Root()
	for i := 0; i < int(root.ChildCount()); i++ {
		n := root.Child(i)
		if n.Type() != "import_statement" {
			continue
		}
		src := sitterutil.Child(n, "source")
		name := strings.Trim(t.Text(src), `"'`)
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindImport,
				Name:    name,
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	}
	return raws, nil
}

// --- class ---

type classExtractor struct{}

func (classExtractor) Kind() core.ElementKind { return core.KindClass }

func (classExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "class_declaration" {
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

// --- interface (TypeScript only) ---

type interfaceExtractor struct{}

func (interfaceExtractor) Kind() core.ElementKind { return core.KindInterface }

func (interfaceExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "interface_declaration" {
			return
		}
		name := sitterutil.Child(n, "name")
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindInterface,
				Name:    t.Text(name),
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	})
	return raws, nil
}

// --- function ---

type functionExtractor struct{}

func (functionExtractor) Kind() core.ElementKind { return core.KindFunction }

func (functionExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	root := t.Root()
	for i := 0; i < int(root.ChildCount()); i++ {
		n := root.Child(i)
		if n.Type() == "export_statement" {
			if d := sitterutil.Child(n, "declaration"); d != nil {
				n = d
			}
		}
		if n.Type() != "function_declaration" && n.Type() != "generator_function_declaration" {
			continue
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
	}
	return raws, nil
}

// --- method, with getter/setter detection from the method_definition's
// "get"/"set" keyword child ---

type methodExtractor struct{}

func (methodExtractor) Kind() core.ElementKind { return core.KindMethod }

func (methodExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "method_definition" && n.Type() != "method_signature" {
			return
		}
		name := sitterutil.Child(n, "name")
		className := enclosingClassName(n, t)
		kind := core.KindMethod
		data := map[string]any{}
		switch {
		case hasKeywordChild(n, "get"):
			kind = core.KindPropertyGetter
		case hasKeywordChild(n, "set"):
			kind = core.KindPropertySetter
		}
		if hasKeywordChild(n, "static") {
			data["is_static"] = true
		}
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:           kind,
				Name:           t.Text(name),
				Content:        t.Text(n),
				Range:          sitterutil.RangeOf(n),
				ParentName:     className,
				AdditionalData: data,
			},
		})
	})
	return raws, nil
}

// --- property (field_definition / public_field_definition /
// property_signature), split into property vs static_property by the
// "static" keyword child. ---

type propertyExtractor struct{ kind core.ElementKind }

func (p propertyExtractor) Kind() core.ElementKind { return p.kind }

func (p propertyExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		switch n.Type() {
		case "public_field_definition", "field_definition", "property_signature":
		default:
			return
		}
		isStatic := hasKeywordChild(n, "static")
		if isStatic != (p.kind == core.KindStaticProperty) {
			return
		}
		name := sitterutil.Child(n, "name")
		className := enclosingClassName(n, t)
		valueType := ""
		if tn := sitterutil.Child(n, "type"); tn != nil {
			valueType = t.Text(tn)
		}
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:       p.kind,
				Name:       t.Text(name),
				Content:    t.Text(n),
				Range:      sitterutil.RangeOf(n),
				ParentName: className,
				ValueType:  valueType,
				AdditionalData: map[string]any{
					"is_static":   isStatic,
					"is_readonly": hasKeywordChild(n, "readonly"),
				},
			},
		})
	})
	return raws, nil
}

// --- type alias (TypeScript only) ---

type typeAliasExtractor struct{}

func (typeAliasExtractor) Kind() core.ElementKind { return core.KindTypeAlias }

func (typeAliasExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "type_alias_declaration" {
			return
		}
		name := sitterutil.Child(n, "name")
		value := sitterutil.Child(n, "value")
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:      core.KindTypeAlias,
				Name:      t.Text(name),
				Content:   t.Text(n),
				Range:     sitterutil.RangeOf(n),
				ValueType: t.Text(value),
			},
		})
	})
	return raws, nil
}

// --- enum (TypeScript only) ---

type enumExtractor struct{}

func (enumExtractor) Kind() core.ElementKind { return core.KindEnum }

func (enumExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "enum_declaration" {
			return
		}
		name := sitterutil.Child(n, "name")
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindEnum,
				Name:    t.Text(name),
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	})
	return raws, nil
}

// --- namespace, i.e. TypeScript's `namespace X { ... }` / `module X { ... }`
// (TypeScript only) ---

type namespaceExtractor struct{}

func (namespaceExtractor) Kind() core.ElementKind { return core.KindNamespace }

func (namespaceExtractor) Extract(t *sitterutil.Tree) ([]extract.Raw, error) {
	var raws []extract.Raw
	sitterutil.WalkPreorder(t.Root(), func(n *sitter.Node) {
		if n.Type() != "internal_module" && n.Type() != "module" {
			return
		}
		name := sitterutil.Child(n, "name")
		if name == nil {
			return
		}
		raws = append(raws, extract.Raw{
			Node: n,
			Element: &core.Element{
				Kind:    core.KindNamespace,
				Name:    t.Text(name),
				Content: t.Text(n),
				Range:   sitterutil.RangeOf(n),
			},
		})
	})
	return raws, nil
}

// --- decorator ---
//
// Extracted through the generic query path (see DecoratorQuery /
// descriptor.ElementTypeDescriptor) since it needs no structural context
// beyond its own span, unlike class/function/method extraction above.

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
		case "member_expression":
			return t.Text(c)
		case "call_expression":
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
