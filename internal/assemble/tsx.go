package assemble

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extract"
	"github.com/codehem-go/codehem/internal/sitterutil"
)

// TSX assembles TypeScript/JavaScript extraction results into a tree. The
// same assembler serves both dialects: JavaScript sources simply never
// produce the TS-only raw kinds (interfaces, type aliases, enums,
// namespaces), since tsx.NewSet omits those extractors for that dialect.
type TSX struct{}

// NewTSX returns the TypeScript/JavaScript post-processor.
func NewTSX() Assembler { return TSX{} }

func (TSX) Assemble(raws []extract.Raw, source []byte) (*core.ElementTree, error) {
	byKind := map[core.ElementKind][]extract.Raw{}
	for _, r := range raws {
		byKind[r.Element.Kind] = append(byKind[r.Element.Kind], r)
	}

	elementByNode := map[*sitter.Node]*core.Element{}
	containerByName := map[string]*core.Element{}
	var topLevel []*core.Element

	for _, kind := range []core.ElementKind{core.KindClass, core.KindInterface, core.KindEnum, core.KindTypeAlias, core.KindNamespace, core.KindFunction} {
		for _, r := range byKind[kind] {
			elementByNode[r.Node] = r.Element
			topLevel = append(topLevel, r.Element)
			if kind == core.KindClass || kind == core.KindInterface {
				containerByName[r.Element.Name] = r.Element
			}
		}
	}

	for _, r := range byKind[core.KindMethod] {
		e := r.Element
		elementByNode[r.Node] = e
		if owner, ok := containerByName[e.ParentName]; ok {
			owner.Children = append(owner.Children, e)
		}
	}
	for _, kind := range []core.ElementKind{core.KindPropertyGetter, core.KindPropertySetter, core.KindProperty, core.KindStaticProperty} {
		for _, r := range byKind[kind] {
			e := r.Element
			elementByNode[r.Node] = e
			if owner, ok := containerByName[e.ParentName]; ok {
				owner.Children = append(owner.Children, e)
			}
		}
	}

	for n, owner := range elementByNode {
		for _, dn := range sitterutil.PrecedingSiblingsOfType(n, []string{"decorator"}, nil) {
			owner.Children = append(owner.Children, &core.Element{
				Kind:       core.KindDecorator,
				Name:       decoratorNameOf(dn, source),
				Content:    string(nodeSlice(dn, source)),
				Range:      sitterutil.RangeOf(dn),
				ParentName: owner.Name,
			})
		}
	}

	for _, kind := range []core.ElementKind{core.KindFunction, core.KindMethod, core.KindPropertyGetter, core.KindPropertySetter} {
		for _, r := range byKind[kind] {
			applyTSCallableSignature(r.Element, r.Node, source)
		}
	}

	if agg := buildTSImportAggregate(byKind[core.KindImport], source); agg != nil {
		topLevel = append(topLevel, agg)
	}

	for _, c := range containerByName {
		c.Children = dedupBySpecificity(c.Children)
		sortByPosition(c.Children)
	}
	topLevel = dedupBySpecificity(topLevel)
	sortByPosition(topLevel)

	return &core.ElementTree{Elements: topLevel}, nil
}

func buildTSImportAggregate(raws []extract.Raw, source []byte) *core.Element {
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

func applyTSCallableSignature(e *core.Element, n *sitter.Node, source []byte) {
	if e.AdditionalData == nil {
		e.AdditionalData = map[string]any{}
	}
	params := sitterutil.Child(n, "parameters")
	e.AdditionalData["parameters"] = extractTSParameters(params, source)

	ret := core.ReturnInfo{}
	if rt := sitterutil.Child(n, "return_type"); rt != nil {
		ret.ReturnType = strings.TrimPrefix(string(nodeSlice(rt, source)), ":")
		ret.ReturnType = strings.TrimSpace(ret.ReturnType)
	}
	if body := sitterutil.Child(n, "body"); body != nil {
		ret.ReturnValues = collectTSReturnValues(body, source)
	}
	e.AdditionalData["return"] = ret
}

func extractTSParameters(params *sitter.Node, source []byte) []core.Parameter {
	if params == nil {
		return nil
	}
	var out []core.Parameter
	for i := 0; i < int(params.ChildCount()); i++ {
		c := params.Child(i)
		switch c.Type() {
		case "identifier":
			out = append(out, core.Parameter{Name: string(nodeSlice(c, source))})
		case "required_parameter", "optional_parameter":
			p := core.Parameter{Optional: c.Type() == "optional_parameter"}
			if pat := sitterutil.Child(c, "pattern"); pat != nil {
				p.Name = string(nodeSlice(pat, source))
			}
			if tn := sitterutil.Child(c, "type"); tn != nil {
				p.Type = strings.TrimSpace(strings.TrimPrefix(string(nodeSlice(tn, source)), ":"))
			}
			if vn := sitterutil.Child(c, "value"); vn != nil {
				p.Default = string(nodeSlice(vn, source))
				p.Optional = true
			}
			out = append(out, p)
		case "rest_parameter":
			name := ""
			if pat := sitterutil.Child(c, "pattern"); pat != nil {
				name = string(nodeSlice(pat, source))
			} else {
				name = firstIdentifierText(c, source)
			}
			out = append(out, core.Parameter{Name: "..." + name, Rest: true})
		case "assignment_pattern":
			left := sitterutil.Child(c, "left")
			right := sitterutil.Child(c, "right")
			p := core.Parameter{Optional: true}
			if left != nil {
				p.Name = string(nodeSlice(left, source))
			}
			if right != nil {
				p.Default = string(nodeSlice(right, source))
			}
			out = append(out, p)
		}
	}
	return out
}

func collectTSReturnValues(body *sitter.Node, source []byte) []string {
	var out []string
	var rec func(*sitter.Node)
	rec = func(n *sitter.Node) {
		switch n.Type() {
		case "function_declaration", "function", "arrow_function", "method_definition",
			"generator_function_declaration", "class_declaration", "class":
			return
		case "return_statement":
			expr := tsReturnExpr(n, source)
			if expr == "" || expr == "null" || expr == "undefined" {
				out = appendUnique(out, "None")
			} else {
				out = append(out, expr)
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

func tsReturnExpr(n *sitter.Node, source []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() != "return" && c.Type() != ";" {
			return string(nodeSlice(c, source))
		}
	}
	return ""
}
