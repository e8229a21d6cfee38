package assemble

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extract"
	"github.com/codehem-go/codehem/internal/sitterutil"
)

// Python assembles Python extraction results into a tree.
type Python struct{}

// NewPython returns the Python post-processor.
func NewPython() Assembler { return Python{} }

func (Python) Assemble(raws []extract.Raw, source []byte) (*core.ElementTree, error) {
	byKind := map[core.ElementKind][]extract.Raw{}
	for _, r := range raws {
		byKind[r.Element.Kind] = append(byKind[r.Element.Kind], r)
	}

	elementByNode := map[*sitter.Node]*core.Element{}
	classByName := map[string]*core.Element{}
	var topLevel []*core.Element

	for _, r := range byKind[core.KindClass] {
		classByName[r.Element.Name] = r.Element
		elementByNode[r.Node] = r.Element
		topLevel = append(topLevel, r.Element)
	}
	for _, r := range byKind[core.KindFunction] {
		elementByNode[r.Node] = r.Element
		topLevel = append(topLevel, r.Element)
	}

	for _, r := range byKind[core.KindMethod] {
		e := r.Element
		elementByNode[r.Node] = e
		reclassifyAccessor(e, r.Node, source)
		if cls, ok := classByName[e.ParentName]; ok {
			cls.Children = append(cls.Children, e)
		}
	}
	for _, kind := range []core.ElementKind{core.KindStaticProperty, core.KindProperty} {
		for _, r := range byKind[kind] {
			if cls, ok := classByName[r.Element.ParentName]; ok {
				cls.Children = append(cls.Children, r.Element)
			}
		}
	}

	// Attach decorators to their owning function/method/class as children.
	for n, owner := range elementByNode {
		decoNodes := sitterutil.PrecedingSiblingsOfType(n, []string{"decorator"}, nil)
		for _, dn := range decoNodes {
			owner.Children = append(owner.Children, &core.Element{
				Kind:       core.KindDecorator,
				Name:       decoratorNameOf(dn, source),
				Content:    string(nodeSlice(dn, source)),
				Range:      sitterutil.RangeOf(dn),
				ParentName: owner.Name,
			})
		}
	}

	// Parameters/return info for functions and methods.
	for _, kind := range []core.ElementKind{core.KindFunction, core.KindMethod, core.KindPropertyGetter, core.KindPropertySetter} {
		for _, r := range byKind[kind] {
			applyCallableSignature(r.Element, r.Node, source)
		}
	}

	if agg := buildImportAggregate(byKind[core.KindImport], source); agg != nil {
		topLevel = append(topLevel, agg)
	}

	for _, cls := range classByName {
		cls.Children = dedupBySpecificity(cls.Children)
		sortByPosition(cls.Children)
	}
	topLevel = dedupBySpecificity(topLevel)
	sortByPosition(topLevel)

	return &core.ElementTree{Elements: topLevel}, nil
}

// reclassifyAccessor turns a plain method into a property getter/setter when
// it carries a `@property` or `@<name>.setter` decorator.
func reclassifyAccessor(e *core.Element, n *sitter.Node, source []byte) {
	for _, dn := range sitterutil.PrecedingSiblingsOfType(n, []string{"decorator"}, nil) {
		name := decoratorNameOf(dn, source)
		switch {
		case name == "property":
			e.Kind = core.KindPropertyGetter
		case strings.HasSuffix(name, ".setter"):
			e.Kind = core.KindPropertySetter
		case strings.HasSuffix(name, ".deleter"):
			// Deleters keep the plain method kind; the engine does not
			// model a fourth accessor kind, matching the closed taxonomy.
		}
	}
}

func decoratorNameOf(n *sitter.Node, source []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "identifier", "attribute":
			return string(nodeSlice(c, source))
		case "call":
			if fn := sitterutil.Child(c, "function"); fn != nil {
				return string(nodeSlice(fn, source))
			}
		}
	}
	return strings.TrimPrefix(strings.TrimSpace(string(nodeSlice(n, source))), "@")
}

func nodeSlice(n *sitter.Node, source []byte) []byte {
	return source[n.StartByte():n.EndByte()]
}

func buildImportAggregate(raws []extract.Raw, source []byte) *core.Element {
	if len(raws) == 0 {
		return nil
	}
	sort.SliceStable(raws, func(i, j int) bool {
		return raws[i].Element.Range.Start.Less(raws[j].Element.Range.Start)
	})
	individual := make([]map[string]any, 0, len(raws))
	for _, r := range raws {
		individual = append(individual, map[string]any{
			"name":  r.Element.Name,
			"range": r.Element.Range,
			"raw":   r.Element.Content,
		})
	}
	return &core.Element{
		Kind:    core.KindImport,
		Name:    "imports",
		Content: string(nodeSlice(raws[0].Node, source)),
		Range: core.Range{
			Start: raws[0].Element.Range.Start,
			End:   raws[len(raws)-1].Element.Range.End,
		},
		AdditionalData: map[string]any{
			"individual_imports": individual,
		},
	}
}

// applyCallableSignature fills in e's parameter list and return info from
// n's `parameters` field and body return statements.
func applyCallableSignature(e *core.Element, n *sitter.Node, source []byte) {
	if e.AdditionalData == nil {
		e.AdditionalData = map[string]any{}
	}
	params := sitterutil.Child(n, "parameters")
	e.AdditionalData["parameters"] = extractParameters(params, source)

	ret := core.ReturnInfo{}
	if rt := sitterutil.Child(n, "return_type"); rt != nil {
		ret.ReturnType = string(nodeSlice(rt, source))
	}
	if body := sitterutil.Child(n, "body"); body != nil {
		ret.ReturnValues = collectReturnValues(body, source)
	}
	e.AdditionalData["return"] = ret
}

func extractParameters(params *sitter.Node, source []byte) []core.Parameter {
	if params == nil {
		return nil
	}
	var out []core.Parameter
	for i := 0; i < int(params.ChildCount()); i++ {
		c := params.Child(i)
		switch c.Type() {
		case "identifier":
			out = append(out, core.Parameter{Name: string(nodeSlice(c, source))})
		case "typed_parameter":
			name := firstIdentifierText(c, source)
			typ := ""
			if tn := sitterutil.Child(c, "type"); tn != nil {
				typ = string(nodeSlice(tn, source))
			}
			out = append(out, core.Parameter{Name: name, Type: typ})
		case "default_parameter":
			name := ""
			if nn := sitterutil.Child(c, "name"); nn != nil {
				name = string(nodeSlice(nn, source))
			}
			val := ""
			if vn := sitterutil.Child(c, "value"); vn != nil {
				val = string(nodeSlice(vn, source))
			}
			out = append(out, core.Parameter{Name: name, Default: val, Optional: true})
		case "typed_default_parameter":
			name := ""
			if nn := sitterutil.Child(c, "name"); nn != nil {
				name = string(nodeSlice(nn, source))
			}
			typ := ""
			if tn := sitterutil.Child(c, "type"); tn != nil {
				typ = string(nodeSlice(tn, source))
			}
			val := ""
			if vn := sitterutil.Child(c, "value"); vn != nil {
				val = string(nodeSlice(vn, source))
			}
			out = append(out, core.Parameter{Name: name, Type: typ, Default: val, Optional: true})
		case "list_splat_pattern":
			out = append(out, core.Parameter{Name: "*" + firstIdentifierText(c, source), Rest: true})
		case "dictionary_splat_pattern":
			out = append(out, core.Parameter{Name: "**" + firstIdentifierText(c, source), Rest: true})
		}
	}
	return out
}

func firstIdentifierText(n *sitter.Node, source []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "identifier" {
			return string(nodeSlice(n.Child(i), source))
		}
	}
	return ""
}

// collectReturnValues walks body for return_statement nodes without
// descending into nested function/class definitions.
func collectReturnValues(body *sitter.Node, source []byte) []string {
	var out []string
	var rec func(*sitter.Node)
	rec = func(n *sitter.Node) {
		if n.Type() == "function_definition" || n.Type() == "class_definition" {
			return
		}
		if n.Type() == "return_statement" {
			expr := returnExpr(n)
			if expr == nil {
				out = appendUnique(out, "None")
			} else {
				text := string(nodeSlice(expr, source))
				if text == "None" {
					out = appendUnique(out, "None")
				} else {
					out = append(out, text)
				}
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			rec(n.Child(i))
		}
	}
	rec(body)
	return out
}

func returnExpr(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() != "return" {
			return c
		}
	}
	return nil
}

func appendUnique(s []string, v string) []string {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}
