package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codehem-go/codehem/internal/core"
)

func TestSortByPositionAscending(t *testing.T) {
	els := []*core.Element{
		{Name: "b", Range: core.Range{Start: core.Position{Line: 5}}},
		{Name: "a", Range: core.Range{Start: core.Position{Line: 1}}},
	}
	sortByPosition(els)
	assert.Equal(t, "a", els[0].Name)
	assert.Equal(t, "b", els[1].Name)
}

func TestDedupBySpecificityKeepsMostSpecific(t *testing.T) {
	els := []*core.Element{
		{Name: "label", ParentName: "Widget", Kind: core.KindMethod, Range: core.Range{Start: core.Position{Line: 10}}},
		{Name: "label", ParentName: "Widget", Kind: core.KindPropertyGetter, Range: core.Range{Start: core.Position{Line: 10}}},
	}
	out := dedupBySpecificity(els)
	assert.Len(t, out, 1)
	assert.Equal(t, core.KindPropertyGetter, out[0].Kind)
}

func TestDedupBySpecificityKeepsDistinctElements(t *testing.T) {
	els := []*core.Element{
		{Name: "a", ParentName: "Widget", Kind: core.KindMethod, Range: core.Range{Start: core.Position{Line: 1}}},
		{Name: "b", ParentName: "Widget", Kind: core.KindMethod, Range: core.Range{Start: core.Position{Line: 5}}},
	}
	out := dedupBySpecificity(els)
	assert.Len(t, out, 2)
}
