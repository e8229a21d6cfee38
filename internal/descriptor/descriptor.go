// Package descriptor holds the static, per-language capability table (C2,
// the Element Type Descriptor): which tree-sitter grammar a language uses,
// what its file extensions and aliases are, whether its block structure is
// indent-based or brace-based, and its default glob ignore patterns. It has
// no knowledge of extraction or assembly logic.
package descriptor

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codehem-go/codehem/internal/core"
)

// BlockStyle distinguishes the two source-formatting families the engine
// supports: indentation carries block structure (Python) or braces do
// (TypeScript/JavaScript), which the Formatter (C8) branches on.
type BlockStyle int

const (
	BlockStyleIndent BlockStyle = iota
	BlockStyleBrace
)

// Descriptor is the static capability record for one language.
type Descriptor struct {
	Lang       string
	Aliases    []string
	Extensions []string
	Sitter     *sitter.Language
	Style      BlockStyle
	// IndentUnit is the string one indentation level renders as for this
	// language when the Formatter must synthesize new indentation (e.g.
	// inserting a method into an empty class body).
	IndentUnit string
	// DefaultIgnore lists glob patterns internal/walk excludes by default
	// when discovering files of this language.
	DefaultIgnore []string
	// Templates is the per-kind extraction strategy table, spec.md §4.3's
	// Element Type Descriptor: which kinds the generic query/regexp path
	// can handle directly, and which require a hand-written AST walk.
	// Extractor sets are free to ignore it and walk the AST themselves;
	// it exists so a language's extraction strategy is declared data, not
	// just implicit in which extractor type each kind maps to.
	Templates map[core.ElementKind]ElementTypeDescriptor
}

// ElementTypeDescriptor records how one element kind is extracted for one
// language, per spec.md §4.3: either a tree-sitter query or a regexp
// pattern drives the generic, pattern-based extractor, or CustomExtract is
// set and the kind's Extractor implements its own AST-walking logic because
// the construct needs structural context (parent attachment, decorator or
// export-wrapper unwrapping) a single query or regex cannot express.
type ElementTypeDescriptor struct {
	ElementType core.ElementKind
	// TreeSitterQuery is a tree-sitter query string (see sitterutil.Query)
	// capturing the nodes this kind matches. "" when RegexpPattern or
	// CustomExtract is used instead.
	TreeSitterQuery string
	// RegexpPattern matches this kind directly against source text for
	// grammars or constructs a tree-sitter query can't isolate cleanly.
	// nil when TreeSitterQuery or CustomExtract is used instead.
	RegexpPattern *regexp.Regexp
	// CustomExtract, when true, means this kind's Extractor does not run
	// through the generic query/regexp path at all and instead walks the
	// AST directly (see each extract/<lang> package's kind comment for why).
	CustomExtract bool
}
