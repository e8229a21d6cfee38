package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificityOrdering(t *testing.T) {
	assert.Less(t, Specificity(KindPropertySetter), Specificity(KindPropertyGetter))
	assert.Less(t, Specificity(KindPropertyGetter), Specificity(KindStaticProperty))
	assert.Less(t, Specificity(KindStaticProperty), Specificity(KindMethod))
	assert.Less(t, Specificity(KindMethod), Specificity(KindProperty))
	assert.Less(t, Specificity(KindProperty), Specificity(KindClass))
	assert.Less(t, Specificity(KindClass), Specificity(KindFunction))
	assert.Less(t, Specificity(KindFunction), Specificity(KindImport))
}

func TestSpecificityUnrankedKind(t *testing.T) {
	assert.Greater(t, Specificity(KindParameter), Specificity(KindImport))
}

func TestRangeContains(t *testing.T) {
	outer := Range{Start: Position{Line: 1, Column: 0}, End: Position{Line: 10, Column: 0}}
	inner := Range{Start: Position{Line: 2, Column: 0}, End: Position{Line: 5, Column: 0}}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}

func TestRangeWellFormed(t *testing.T) {
	ok := Range{Start: Position{Line: 1, Column: 0}, End: Position{Line: 2, Column: 0}}
	assert.True(t, ok.WellFormed())

	bad := Range{Start: Position{Line: 5, Column: 0}, End: Position{Line: 2, Column: 0}}
	assert.False(t, bad.WellFormed())
}

func TestElementFindChild(t *testing.T) {
	parent := &Element{
		Kind: KindClass,
		Name: "Widget",
		Children: []*Element{
			{Kind: KindMethod, Name: "render"},
			{Kind: KindPropertyGetter, Name: "size"},
		},
	}

	child, ok := parent.FindChild("render", KindMethod)
	assert.True(t, ok)
	assert.Equal(t, "render", child.Name)

	_, ok = parent.FindChild("missing", KindMethod)
	assert.False(t, ok)

	// Kind == "" matches on name alone.
	child, ok = parent.FindChild("size", "")
	assert.True(t, ok)
	assert.Equal(t, KindPropertyGetter, child.Kind)
}

func TestElementTreeWalkOrder(t *testing.T) {
	tree := &ElementTree{Elements: []*Element{
		{Kind: KindClass, Name: "A", Children: []*Element{
			{Kind: KindMethod, Name: "m"},
		}},
		{Kind: KindFunction, Name: "f"},
	}}

	var names []string
	tree.Walk(func(e *Element) { names = append(names, e.Name) })
	assert.Equal(t, []string{"A", "m", "f"}, names)
}
