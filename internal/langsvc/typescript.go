package langsvc

import (
	typescript_sitter "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/codehem-go/codehem/internal/assemble"
	"github.com/codehem-go/codehem/internal/descriptor"
	"github.com/codehem-go/codehem/internal/extract/tsx"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/format"
	"github.com/codehem-go/codehem/internal/logx"
	"github.com/codehem-go/codehem/internal/manipulate"
	"github.com/codehem-go/codehem/internal/registry"
)

// NewTypeScript builds the TypeScript Language Service.
func NewTypeScript() Service {
	lang := typescript_sitter.GetLanguage()
	desc := descriptor.Descriptor{
		Lang:          "typescript",
		Aliases:       []string{"typescript", "ts"},
		Extensions:    []string{".ts", ".mts", ".cts"},
		Sitter:        lang,
		Style:         descriptor.BlockStyleBrace,
		IndentUnit:    "  ",
		DefaultIgnore: []string{"**/node_modules/**", "**/dist/**", "**/*.d.ts"},
		Templates:     tsxDialectElementTemplates(),
	}
	extractors := tsx.NewSet(tsx.TypeScript)
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
	if err := registry.Default.Register(NewTypeScript()); err != nil {
		logx.Warn("registering typescript language service: %v", err)
	}
}
