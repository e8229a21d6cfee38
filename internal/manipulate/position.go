package manipulate

import "github.com/codehem-go/codehem/internal/core"

// lineStarts returns the byte offset at which each 1-based line begins;
// lineStarts()[0] is unused, lineStarts()[1] is the offset of line 1.
func lineStarts(source []byte) []int {
	starts := []int{0, 0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// byteOffset converts a core.Position into a byte offset into source.
func byteOffset(starts []int, pos core.Position) int {
	if pos.Line <= 0 || pos.Line >= len(starts) {
		if len(starts) > 0 {
			return starts[len(starts)-1]
		}
		return 0
	}
	return starts[pos.Line] + pos.Column
}

// lineIndent returns the leading whitespace of the line that begins at
// lineStart.
func lineIndent(source []byte, lineStart int) string {
	i := lineStart
	for i < len(source) && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	return string(source[lineStart:i])
}

// indentLevel estimates the indent level (in units of unit) of the line
// starting at lineStart.
func indentLevel(source []byte, lineStart int, unit string) int {
	indent := lineIndent(source, lineStart)
	if unit == "" {
		return 0
	}
	level := 0
	for len(indent) >= len(unit) && indent[:len(unit)] == unit {
		indent = indent[len(unit):]
		level++
	}
	return level
}
