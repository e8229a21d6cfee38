package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentFormatterReindentSingleLine(t *testing.T) {
	f := IndentFormatter{Unit: "    "}
	got := f.Reindent("def foo():", 1)
	assert.Equal(t, "    def foo():", got)
}

func TestIndentFormatterPreservesRelativeNesting(t *testing.T) {
	f := IndentFormatter{Unit: "    "}
	content := "def foo():\n    return 1"
	got := f.Reindent(content, 1)
	assert.Equal(t, "    def foo():\n        return 1", got)
}

func TestIndentFormatterDedentsBeforeReapplying(t *testing.T) {
	f := IndentFormatter{Unit: "    "}
	// content arrives already indented at level 2; reindent to level 0.
	content := "        def foo():\n            return 1"
	got := f.Reindent(content, 0)
	assert.Equal(t, "def foo():\n    return 1", got)
}

func TestIndentFormatterBlankLinesPreserved(t *testing.T) {
	f := IndentFormatter{Unit: "    "}
	content := "def foo():\n\n    return 1"
	got := f.Reindent(content, 1)
	assert.Equal(t, "    def foo():\n\n        return 1", got)
}

func TestBraceFormatterDefaultUnit(t *testing.T) {
	f := BraceFormatter{}
	got := f.Reindent("function f() {}", 1)
	assert.Equal(t, "  function f() {}", got)
}

func TestBlankLineHints(t *testing.T) {
	assert.Equal(t, 2, IndentFormatter{}.BlankLinesBefore())
	assert.Equal(t, 1, IndentFormatter{}.BlankLinesBeforeMember())
	assert.Equal(t, 1, BraceFormatter{}.BlankLinesBefore())
	assert.Equal(t, 0, BraceFormatter{}.BlankLinesBeforeMember())
}
