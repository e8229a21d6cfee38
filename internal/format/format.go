// Package format implements the Formatter (C8): reindenting element text
// that the Manipulation Service inserts or replaces so it lines up with its
// new position, in two variants matching the two block-structure families
// the engine supports — indentation-significant (Python) and brace-
// delimited (TypeScript/JavaScript).
package format

import "strings"

// Formatter reindents a block of source text to sit at indentLevel inside
// its new home.
type Formatter interface {
	Reindent(content string, indentLevel int) string
	// BlankLinesBefore is the number of blank lines the insertion policy
	// wants between a newly inserted top-level element and its
	// predecessor; BlankLinesBeforeMember is the same for members inside a
	// class/interface body.
	BlankLinesBefore() int
	BlankLinesBeforeMember() int
}

// dedent strips the common leading whitespace from every non-blank line.
func dedent(content string) string {
	lines := strings.Split(content, "\n")
	min := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		if min == -1 || indent < min {
			min = indent
		}
	}
	if min <= 0 {
		return content
	}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if len(l) >= min {
			lines[i] = l[min:]
		}
	}
	return strings.Join(lines, "\n")
}

func reindentWith(content, unit string, level int) string {
	content = dedent(content)
	prefix := strings.Repeat(unit, level)
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// IndentFormatter serves Python, where changing indentation changes the
// program's structure: it only reindents whole-line blocks, never touches
// relative indentation of nested lines within content.
type IndentFormatter struct {
	Unit string // e.g. "    "
}

func (f IndentFormatter) Reindent(content string, level int) string {
	unit := f.Unit
	if unit == "" {
		unit = "    "
	}
	return reindentWith(content, unit, level)
}

func (IndentFormatter) BlankLinesBefore() int       { return 2 }
func (IndentFormatter) BlankLinesBeforeMember() int { return 1 }

// BraceFormatter serves TypeScript/JavaScript, where braces (not
// indentation) carry block structure, so reindentation is cosmetic but
// still applied for readability of generated edits.
type BraceFormatter struct {
	Unit string // e.g. "  "
}

func (f BraceFormatter) Reindent(content string, level int) string {
	unit := f.Unit
	if unit == "" {
		unit = "  "
	}
	return reindentWith(content, unit, level)
}

func (BraceFormatter) BlankLinesBefore() int       { return 1 }
func (BraceFormatter) BlankLinesBeforeMember() int { return 0 }
