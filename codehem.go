// Package codehem is structured code surgery: extract a hierarchical
// inventory of the classes, functions, methods, properties, and other
// elements in a source file, address any one of them with a dotted XPath,
// and upsert or remove it while leaving the rest of the file untouched.
//
// Extraction and manipulation never invoke a type checker and never
// resolve symbols across files; they operate purely on what a single
// file's syntax tree shows.
package codehem

import (
	"context"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/langdetect"
	"github.com/codehem-go/codehem/internal/langsvc"
	"github.com/codehem-go/codehem/internal/registry"
	"github.com/codehem-go/codehem/internal/xpath"
)

// Re-exported element kinds and data types, so callers never need to
// import the internal packages directly.
type (
	ElementKind = core.ElementKind
	Element     = core.Element
	ElementTree = core.ElementTree
	Position    = core.Position
	Range       = core.Range
	Parameter   = core.Parameter
	ReturnInfo  = core.ReturnInfo
)

const (
	KindImport         = core.KindImport
	KindClass          = core.KindClass
	KindInterface      = core.KindInterface
	KindFunction       = core.KindFunction
	KindMethod         = core.KindMethod
	KindPropertyGetter = core.KindPropertyGetter
	KindPropertySetter = core.KindPropertySetter
	KindProperty       = core.KindProperty
	KindStaticProperty = core.KindStaticProperty
	KindDecorator      = core.KindDecorator
	KindEnum           = core.KindEnum
	KindTypeAlias      = core.KindTypeAlias
	KindNamespace      = core.KindNamespace
	KindParameter      = core.KindParameter
	KindReturnValue    = core.KindReturnValue
	KindFile           = core.KindFile
)

// Error codes, re-exported for errors.Is / switch-on-Code callers.
const (
	ErrUnsupportedLanguage = core.ErrUnsupportedLanguage
	ErrParseFailure        = core.ErrParseFailure
	ErrExtractorFailure    = core.ErrExtractorFailure
	ErrMalformedXPath      = core.ErrMalformedXPath
	ErrTargetNotFound      = core.ErrTargetNotFound
	ErrFormatterFailure    = core.ErrFormatterFailure
	ErrHashMismatch        = core.ErrHashMismatch
)

var detector langdetect.Detector = langdetect.Heuristic{}

// DetectLanguage guesses the language of code when the caller has no
// reliable file extension to go on.
func DetectLanguage(code []byte, filename string) (lang string, confidence float64) {
	return detector.Detect(code, filename)
}

func resolve(lang string) (langsvc.Service, error) {
	svc, ok := registry.Default.Get(lang)
	if !ok {
		return langsvc.Service{}, core.Wrap(core.ErrUnsupportedLanguage, "unsupported language or extension: "+lang, nil)
	}
	s, ok := svc.(langsvc.Service)
	if !ok {
		return langsvc.Service{}, core.Wrap(core.ErrUnsupportedLanguage, "registry entry for "+lang+" is not a language service", nil)
	}
	return s, nil
}

// Extract parses source (identified by lang, a language name, alias, or
// file extension) into its hierarchical element tree.
func Extract(ctx context.Context, lang string, source []byte) (*ElementTree, error) {
	svc, err := resolve(lang)
	if err != nil {
		return nil, err
	}
	return svc.Extract(ctx, source)
}

// FindElement finds the first element in tree matching name and kind; pass
// kind == "" to let specificity ordering pick the best match.
func FindElement(tree *ElementTree, name string, kind ElementKind) (*Element, bool) {
	return extraction.FindElement(tree, name, kind)
}

// FindByXPath resolves a dotted XPath address against tree.
func FindByXPath(tree *ElementTree, address string) (*Element, error) {
	x, err := xpath.Parse(address)
	if err != nil {
		return nil, err
	}
	e, ok := xpath.Resolve(tree, x)
	if !ok {
		return nil, core.Wrap(core.ErrTargetNotFound, "no element matched xpath "+address, nil)
	}
	return e, nil
}

// UpsertElementByXPath replaces the element xpath addresses with content,
// or inserts content as a new element at that address if none exists yet.
func UpsertElementByXPath(ctx context.Context, lang string, source []byte, xpath, content string) ([]byte, error) {
	svc, err := resolve(lang)
	if err != nil {
		return nil, err
	}
	return svc.UpsertElementByXPath(ctx, source, xpath, content)
}

// RemoveElementByXPath deletes the element xpath addresses, including its
// attached decorators and leading comment block.
func RemoveElementByXPath(ctx context.Context, lang string, source []byte, xpath string) ([]byte, error) {
	svc, err := resolve(lang)
	if err != nil {
		return nil, err
	}
	return svc.RemoveElementByXPath(ctx, source, xpath)
}

// GetElementHash returns a stable digest of the xpath-addressed element's
// content, for callers' optimistic concurrency.
func GetElementHash(ctx context.Context, lang string, source []byte, xpath string) (string, error) {
	svc, err := resolve(lang)
	if err != nil {
		return "", err
	}
	return svc.GetElementHash(ctx, source, xpath)
}

// SupportedLanguages lists every language name currently registered.
func SupportedLanguages() []string {
	return registry.Default.List()
}
