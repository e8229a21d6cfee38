package langsvc

import (
	python_sitter "github.com/smacker/go-tree-sitter/python"

	"github.com/codehem-go/codehem/internal/assemble"
	"github.com/codehem-go/codehem/internal/descriptor"
	"github.com/codehem-go/codehem/internal/extract/python"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/format"
	"github.com/codehem-go/codehem/internal/logx"
	"github.com/codehem-go/codehem/internal/manipulate"
	"github.com/codehem-go/codehem/internal/registry"
)

// NewPython builds the Python Language Service.
func NewPython() Service {
	lang := python_sitter.GetLanguage()
	desc := descriptor.Descriptor{
		Lang:          "python",
		Aliases:       []string{"python", "py", "python3", "py3"},
		Extensions:    []string{".py", ".pyw", ".pyi"},
		Sitter:        lang,
		Style:         descriptor.BlockStyleIndent,
		IndentUnit:    "    ",
		DefaultIgnore: []string{"**/__pycache__/**", "**/*.pyc", "**/.venv/**", "**/venv/**"},
		Templates:     pythonElementTemplates(),
	}
	return Service{
		Desc: desc,
		Extraction: extraction.Service{
			Sitter:     lang,
			Extractors: python.NewSet(),
			Assembler:  assemble.NewPython(),
		},
		Manipulate: manipulate.Service{
			Extraction: extraction.Service{
				Sitter:     lang,
				Extractors: python.NewSet(),
				Assembler:  assemble.NewPython(),
			},
			Formatter:       format.IndentFormatter{Unit: desc.IndentUnit},
			IndentUnit:      desc.IndentUnit,
			CommentPrefixes: []string{"#"},
		},
	}
}

func init() {
	if err := registry.Default.Register(NewPython()); err != nil {
		logx.Warn("registering python language service: %v", err)
	}
}
