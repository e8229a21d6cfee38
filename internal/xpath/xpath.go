// Package xpath implements the XPath Resolver (C7): parsing the dotted
// `Name( '[' Kind ']' )? ( '.' Name( '[' Kind ']' )? )*` address syntax and
// resolving a parsed XPath against an ElementTree.
package xpath

import (
	"strings"

	"github.com/codehem-go/codehem/internal/core"
)

// kindAliases maps the bracketed kind tokens callers may write to the
// closed ElementKind set; both the canonical name and a couple of common
// shorthands are accepted.
var kindAliases = map[string]core.ElementKind{
	"import":          core.KindImport,
	"class":           core.KindClass,
	"interface":       core.KindInterface,
	"function":        core.KindFunction,
	"func":            core.KindFunction,
	"method":          core.KindMethod,
	"property_getter": core.KindPropertyGetter,
	"getter":          core.KindPropertyGetter,
	"property_setter": core.KindPropertySetter,
	"setter":          core.KindPropertySetter,
	"property":        core.KindProperty,
	"static_property": core.KindStaticProperty,
	"decorator":       core.KindDecorator,
	"enum":            core.KindEnum,
	"type_alias":      core.KindTypeAlias,
	"namespace":       core.KindNamespace,
	"parameter":       core.KindParameter,
	"return_value":    core.KindReturnValue,
	"file":            core.KindFile,
}

// Parse parses raw into a core.XPath. An empty string is an error; each
// dotted segment may optionally carry a `[Kind]` suffix naming one of the
// kindAliases.
func Parse(raw string) (core.XPath, error) {
	if strings.TrimSpace(raw) == "" {
		return core.XPath{}, core.NewError(core.ErrMalformedXPath, "empty xpath")
	}
	segments := strings.Split(raw, ".")
	nodes := make([]core.XPathNode, 0, len(segments))
	for _, seg := range segments {
		node, err := parseSegment(seg)
		if err != nil {
			return core.XPath{}, err
		}
		nodes = append(nodes, node)
	}
	x := core.XPath{Raw: raw}
	x.ParentPath = nodes[:len(nodes)-1]
	x.Leaf = nodes[len(nodes)-1]
	return x, nil
}

func parseSegment(seg string) (core.XPathNode, error) {
	seg = strings.TrimSpace(seg)
	if seg == "" {
		return core.XPathNode{}, core.NewError(core.ErrMalformedXPath, "empty path segment in xpath")
	}
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return core.XPathNode{Name: seg}, nil
	}
	if !strings.HasSuffix(seg, "]") {
		return core.XPathNode{}, core.NewError(core.ErrMalformedXPath, "unterminated '[' in xpath segment: "+seg)
	}
	name := seg[:open]
	kindToken := strings.ToLower(strings.TrimSpace(seg[open+1 : len(seg)-1]))
	if name == "" {
		return core.XPathNode{}, core.NewError(core.ErrMalformedXPath, "missing name before '[' in xpath segment: "+seg)
	}
	kind, ok := kindAliases[kindToken]
	if !ok {
		return core.XPathNode{}, core.NewError(core.ErrMalformedXPath, "unknown kind in xpath segment: "+seg)
	}
	return core.XPathNode{Name: name, Kind: kind}, nil
}

// Resolve finds the element in tree addressed by x, applying the
// specificity tie-break from core.Specificity when several elements share
// the leaf's name and the kind was not explicit, and matching ParentName
// against x.ParentName() when the address has ancestor segments.
func Resolve(tree *core.ElementTree, x core.XPath) (*core.Element, bool) {
	candidates := collectCandidates(tree, x)
	if len(candidates) == 0 {
		return nil, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if core.Specificity(c.Kind) < core.Specificity(best.Kind) {
			best = c
		}
	}
	return best, true
}

func collectCandidates(tree *core.ElementTree, x core.XPath) []*core.Element {
	wantParent := x.ParentName()
	var out []*core.Element
	tree.Walk(func(e *core.Element) {
		if e.Name != x.Leaf.Name {
			return
		}
		if x.HasKind() {
			if e.Kind != x.Leaf.Kind {
				if !(x.Leaf.Kind == core.KindProperty && isPropertyFamily(e.Kind)) {
					return
				}
			}
		}
		if wantParent != "" && e.ParentName != wantParent {
			return
		}
		out = append(out, e)
	})
	// A leaf with no ancestor segment matches top-level elements only, when
	// any match; otherwise members are kept so property-family resolution on
	// a bare "name" works without a qualifying prefix.
	if len(x.ParentPath) == 0 {
		var top []*core.Element
		for _, e := range out {
			if e.ParentName == "" {
				top = append(top, e)
			}
		}
		if len(top) > 0 {
			return top
		}
	}
	return out
}

func isPropertyFamily(k core.ElementKind) bool {
	for _, pk := range core.PropertyKinds {
		if pk == k {
			return true
		}
	}
	return false
}
