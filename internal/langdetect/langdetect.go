// Package langdetect implements the language-detection heuristic
// collaborator (§1): when a caller has source bytes but no reliable file
// extension, Detect guesses the language from a shebang line and simple
// keyword-density scoring. The core engine depends only on the Detector
// interface; the public API wires this concrete implementation.
package langdetect

import (
	"strings"
)

// Detector guesses the language of code, returning a canonical language
// name and a 0..1 confidence score.
type Detector interface {
	Detect(code []byte, filename string) (lang string, confidence float64)
}

// Heuristic is the default Detector: extension first, then a shebang line,
// then keyword-density scoring between Python and the TypeScript/
// JavaScript family.
type Heuristic struct{}

var extByLang = map[string]string{
	".py": "python", ".pyw": "python", ".pyi": "python",
	".ts": "typescript", ".mts": "typescript", ".cts": "typescript",
	".js": "javascript", ".mjs": "javascript", ".cjs": "javascript", ".jsx": "javascript",
}

func (Heuristic) Detect(code []byte, filename string) (string, float64) {
	if filename != "" {
		for ext, lang := range extByLang {
			if strings.HasSuffix(filename, ext) {
				return lang, 1.0
			}
		}
	}

	text := string(code)
	if strings.HasPrefix(text, "#!") {
		first := strings.SplitN(text, "\n", 2)[0]
		if strings.Contains(first, "python") {
			return "python", 0.9
		}
		if strings.Contains(first, "node") {
			return "javascript", 0.9
		}
	}

	pyScore := density(text, []string{"def ", "import ", "self.", "elif ", "    def"})
	tsScore := density(text, []string{"function ", "const ", "interface ", "=>", "export "})

	switch {
	case pyScore == 0 && tsScore == 0:
		return "", 0
	case pyScore >= tsScore:
		return "python", normalizeConfidence(pyScore, tsScore)
	default:
		return "typescript", normalizeConfidence(tsScore, pyScore)
	}
}

func density(text string, tokens []string) int {
	count := 0
	for _, tok := range tokens {
		count += strings.Count(text, tok)
	}
	return count
}

func normalizeConfidence(winner, loser int) float64 {
	total := winner + loser
	if total == 0 {
		return 0
	}
	return float64(winner) / float64(total)
}
