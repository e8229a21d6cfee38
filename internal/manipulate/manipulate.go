// Package manipulate implements the Manipulators (C9) and the Manipulation
// Service (C10): resolving an XPath target and either replacing it (Found
// state), inserting a new element at a policy-chosen point (NotFound / Add
// state), or removing it, sweeping up its attached decorators and leading
// comment block as it goes.
package manipulate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/format"
	"github.com/codehem-go/codehem/internal/xpath"
)

// Service is the Manipulation Service (C10) for one language: it combines
// that language's Extraction Service with its Formatter and comment
// syntax to answer Upsert/Remove/GetElementHash against raw source bytes.
type Service struct {
	Extraction      extraction.Service
	Formatter       format.Formatter
	IndentUnit      string
	CommentPrefixes []string // e.g. ["#"] for Python, []string{"//"} for TS/JS
}

// UpsertByXPath resolves raw against source's current tree: if the target
// exists it is replaced with newContent (reindented to the target's
// level); otherwise newContent is inserted per the insertion-point policy
// (end of the named container's body, or grouped with same-kind top-level
// elements).
func (s Service) UpsertByXPath(ctx context.Context, source []byte, raw, newContent string) ([]byte, error) {
	x, err := xpath.Parse(raw)
	if err != nil {
		return nil, err
	}
	tree, err := s.Extraction.Extract(ctx, source)
	if err != nil {
		return nil, err
	}
	if existing, ok := xpath.Resolve(tree, x); ok {
		return s.replace(source, existing, newContent)
	}
	return s.add(source, tree, x, newContent)
}

// RemoveByXPath deletes the element raw addresses, together with its
// attached decorators and immediately preceding comment block.
func (s Service) RemoveByXPath(ctx context.Context, source []byte, raw string) ([]byte, error) {
	x, err := xpath.Parse(raw)
	if err != nil {
		return nil, err
	}
	tree, err := s.Extraction.Extract(ctx, source)
	if err != nil {
		return nil, err
	}
	e, ok := xpath.Resolve(tree, x)
	if !ok {
		return nil, core.Wrap(core.ErrTargetNotFound, "no element matched xpath "+raw, nil)
	}
	starts := lineStarts(source)
	start, end := s.sweepRange(source, starts, e)
	out := append([]byte{}, source[:start]...)
	out = append(out, source[end:]...)
	return collapseBlankRun(out, start), nil
}

// GetElementHash returns a stable digest of the target element's content,
// for callers' optimistic concurrency (spec §6): a caller records the hash
// before editing and later confirms nothing else changed the element.
func (s Service) GetElementHash(ctx context.Context, source []byte, raw string) (string, error) {
	x, err := xpath.Parse(raw)
	if err != nil {
		return "", err
	}
	tree, err := s.Extraction.Extract(ctx, source)
	if err != nil {
		return "", err
	}
	e, ok := xpath.Resolve(tree, x)
	if !ok {
		return "", core.Wrap(core.ErrTargetNotFound, "no element matched xpath "+raw, nil)
	}
	sum := sha256.Sum256([]byte(strings.TrimRight(e.Content, "\n")))
	return hex.EncodeToString(sum[:]), nil
}

func (s Service) replace(source []byte, e *core.Element, newContent string) ([]byte, error) {
	starts := lineStarts(source)
	start, end := s.sweepRange(source, starts, e)
	lineStart := starts[e.Range.Start.Line]
	level := indentLevel(source, lineStart, s.IndentUnit)

	rendered := s.Formatter.Reindent(newContent, level)
	rendered = strings.TrimRight(rendered, "\n")
	if end > start && source[end-1] == '\n' {
		rendered += "\n"
	}

	out := append([]byte{}, source[:start]...)
	out = append(out, []byte(rendered)...)
	out = append(out, source[end:]...)
	return out, nil
}

func (s Service) add(source []byte, tree *core.ElementTree, x core.XPath, newContent string) ([]byte, error) {
	starts := lineStarts(source)
	parentName := x.ParentName()

	if parentName == "" {
		return s.addTopLevel(source, starts, tree, x, newContent)
	}

	container := findContainer(tree, parentName)
	if container == nil {
		return nil, core.Wrap(core.ErrTargetNotFound, "container "+parentName+" not found for xpath "+x.Raw, nil)
	}
	return s.addMember(source, starts, container, newContent)
}

func findContainer(tree *core.ElementTree, name string) *core.Element {
	var found *core.Element
	tree.Walk(func(e *core.Element) {
		if found != nil {
			return
		}
		if e.Name == name && (e.Kind == core.KindClass || e.Kind == core.KindInterface) {
			found = e
		}
	})
	return found
}

// addTopLevel inserts newContent after the last existing top-level element
// of the same kind, or at end of file if none exists.
func (s Service) addTopLevel(source []byte, starts []int, tree *core.ElementTree, x core.XPath, newContent string) ([]byte, error) {
	var lastSameKind *core.Element
	for _, e := range tree.Elements {
		if e.Kind == x.Leaf.Kind {
			lastSameKind = e
		}
	}

	rendered := s.Formatter.Reindent(newContent, 0)
	rendered = strings.TrimRight(rendered, "\n")
	blank := strings.Repeat("\n", s.Formatter.BlankLinesBefore())

	if lastSameKind == nil {
		out := append([]byte{}, bytes.TrimRight(source, "\n")...)
		out = append(out, []byte("\n"+blank+rendered+"\n")...)
		return out, nil
	}

	insertAt := byteOffset(starts, lastSameKind.Range.End)
	insertAt = skipToLineEnd(source, insertAt)
	prefix := ""
	if insertAt > 0 && source[insertAt-1] != '\n' {
		prefix = "\n"
	}
	out := append([]byte{}, source[:insertAt]...)
	out = append(out, []byte(prefix+blank+rendered+"\n")...)
	out = append(out, source[insertAt:]...)
	return out, nil
}

// addMember inserts newContent as the last member of container's body.
func (s Service) addMember(source []byte, starts []int, container *core.Element, newContent string) ([]byte, error) {
	level := indentLevel(source, starts[container.Range.Start.Line], s.IndentUnit) + 1
	rendered := s.Formatter.Reindent(newContent, level)
	rendered = strings.TrimRight(rendered, "\n")
	blank := strings.Repeat("\n", s.Formatter.BlankLinesBeforeMember())

	var insertAt int
	if len(container.Children) > 0 {
		last := container.Children[len(container.Children)-1]
		insertAt = skipToLineEnd(source, byteOffset(starts, last.Range.End))
	} else {
		// Empty body: insert right before the container's own closing line.
		insertAt = byteOffset(starts, container.Range.End)
		insertAt = lineStartBefore(source, insertAt)
	}

	prefix := ""
	if insertAt > 0 && source[insertAt-1] != '\n' {
		prefix = "\n"
	}
	out := append([]byte{}, source[:insertAt]...)
	out = append(out, []byte(prefix+blank+rendered+"\n")...)
	out = append(out, source[insertAt:]...)
	return out, nil
}

// sweepRange extends e's [start,end) byte span to also cover its decorator
// children, the indentation before its first line, and any contiguous
// comment lines immediately preceding it, per the decorator/comment sweep
// step of the manipulation pipeline.
func (s Service) sweepRange(source []byte, starts []int, e *core.Element) (int, int) {
	start := byteOffset(starts, e.Range.Start)
	end := byteOffset(starts, e.Range.End)

	for _, c := range e.Children {
		if c.Kind != core.KindDecorator {
			continue
		}
		ds := byteOffset(starts, c.Range.Start)
		if ds < start {
			start = ds
		}
	}
	if ls := lineStartBefore(source, start); strings.TrimSpace(string(source[ls:start])) == "" {
		start = ls
	}

	start = sweepCommentLines(source, starts, start, s.CommentPrefixes)
	end = skipToLineEnd(source, end)
	return start, end
}

func sweepCommentLines(source []byte, starts []int, start int, prefixes []string) int {
	if len(prefixes) == 0 {
		return start
	}
	line := lineOf(starts, start)
	for line > 1 {
		prevStart := starts[line-1]
		prevEnd := start - 1 // byte before current start, i.e. end of previous line incl newline
		text := strings.TrimSpace(string(source[prevStart:clampEnd(prevEnd, len(source))]))
		if text == "" || !hasAnyPrefix(text, prefixes) {
			break
		}
		start = prevStart
		line--
	}
	return start
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func lineOf(starts []int, offset int) int {
	for line := len(starts) - 1; line >= 1; line-- {
		if starts[line] <= offset {
			return line
		}
	}
	return 1
}

func clampEnd(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

// skipToLineEnd advances offset past the rest of its line, including the
// trailing newline, so a deletion/insertion doesn't leave a dangling blank
// line's worth of trailing whitespace.
func skipToLineEnd(source []byte, offset int) int {
	i := offset
	for i < len(source) && source[i] != '\n' {
		i++
	}
	if i < len(source) {
		i++
	}
	return i
}

// lineStartBefore returns the byte offset of the start of the line
// containing offset.
func lineStartBefore(source []byte, offset int) int {
	i := offset
	for i > 0 && source[i-1] != '\n' {
		i--
	}
	return i
}

// collapseBlankRun removes one extra blank line left behind at the removal
// point, keeping removal from accumulating blank runs over repeated edits.
func collapseBlankRun(source []byte, at int) []byte {
	if at >= len(source) || at == 0 {
		return source
	}
	if source[at] == '\n' && at > 0 && source[at-1] == '\n' {
		return append(source[:at], source[at+1:]...)
	}
	return source
}
