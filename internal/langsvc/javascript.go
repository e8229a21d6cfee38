package langsvc

import (
	javascript_sitter "github.com/smacker/go-tree-sitter/javascript"

	"github.com/codehem-go/codehem/internal/assemble"
	"github.com/codehem-go/codehem/internal/descriptor"
	"github.com/codehem-go/codehem/internal/extract/tsx"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/format"
	"github.com/codehem-go/codehem/internal/logx"
	"github.com/codehem-go/codehem/internal/manipulate"
	"github.com/codehem-go/codehem/internal/registry"
)

// NewJavaScript builds the JavaScript Language Service. It reuses the same
// tsx extractor/assembler pair as TypeScript, parameterized to the
// JavaScript dialect, which disables the TypeScript-only element kinds.
func NewJavaScript() Service {
	lang := javascript_sitter.GetLanguage()
	desc := descriptor.Descriptor{
		Lang:          "javascript",
		Aliases:       []string{"javascript", "js"},
		Extensions:    []string{".js", ".mjs", ".cjs", ".jsx"},
		Sitter:        lang,
		Style:         descriptor.BlockStyleBrace,
		IndentUnit:    "  ",
		DefaultIgnore: []string{"**/node_modules/**", "**/dist/**"},
		Templates:     tsxElementTemplates(),
	}
	extractors := tsx.NewSet(tsx.JavaScript)
	assembler := assemble.NewTSX()
	return Service{
		Desc: desc,
		Extraction: extraction.Service{
			Sitter:     lang,
			Extractors: extractors,
			Assembler:  assembler,
		},
		Manipulate: manipulate.Service{
			Extraction: extraction.Service{
				Sitter:     lang,
				Extractors: extractors,
				Assembler:  assembler,
			},
			Formatter:       format.BraceFormatter{Unit: desc.IndentUnit},
			IndentUnit:      desc.IndentUnit,
			CommentPrefixes: []string{"//"},
		},
	}
}

func init() {
	if err := registry.Default.Register(NewJavaScript()); err != nil {
		logx.Warn("registering javascript language service: %v", err)
	}
}
