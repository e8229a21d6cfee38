package sitterutil

import (
	"context"
	"testing"

	python_sitter "github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const querySample = `@decorator
def greet(name):
    return name


class Widget:
    pass
`

func parseSample(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), python_sitter.GetLanguage(), []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestQueryReturnsCapturesInMatchOrder(t *testing.T) {
	tree := parseSample(t, querySample)

	captures, err := tree.Query(`
		(decorated_definition) @decorated
		(class_definition) @class
	`)
	require.NoError(t, err)
	require.Len(t, captures, 2)
	assert.Equal(t, "decorated", captures[0].Name)
	assert.Equal(t, "class", captures[1].Name)
	assert.Equal(t, "class_definition", captures[1].Node.Type())
}

func TestQueryInvalidSyntaxErrors(t *testing.T) {
	tree := parseSample(t, querySample)

	_, err := tree.Query(`(this is not a valid query`)
	assert.Error(t, err)
}

func TestQueryNoMatches(t *testing.T) {
	tree := parseSample(t, querySample)

	captures, err := tree.Query(`(import_statement) @import`)
	require.NoError(t, err)
	assert.Empty(t, captures)
}
