package manipulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codehem-go/codehem/internal/core"
)

func TestLineStarts(t *testing.T) {
	src := []byte("abc\ndef\nghi")
	starts := lineStarts(src)
	// line 1 -> 0, line 2 -> 4, line 3 -> 8
	assert.Equal(t, []int{0, 0, 4, 8}, starts)
}

func TestByteOffset(t *testing.T) {
	src := []byte("abc\ndef\nghi")
	starts := lineStarts(src)
	assert.Equal(t, 4, byteOffset(starts, core.Position{Line: 2, Column: 0}))
	assert.Equal(t, 6, byteOffset(starts, core.Position{Line: 2, Column: 2}))
}

func TestByteOffsetOutOfRange(t *testing.T) {
	src := []byte("abc\ndef")
	starts := lineStarts(src)
	assert.Equal(t, starts[len(starts)-1], byteOffset(starts, core.Position{Line: 99, Column: 0}))
}

func TestLineIndent(t *testing.T) {
	src := []byte("    return 1\n")
	assert.Equal(t, "    ", lineIndent(src, 0))
}

func TestIndentLevel(t *testing.T) {
	src := []byte("        return 1\n")
	assert.Equal(t, 2, indentLevel(src, 0, "    "))
}

func TestIndentLevelNoUnit(t *testing.T) {
	src := []byte("  return 1\n")
	assert.Equal(t, 0, indentLevel(src, 0, ""))
}
