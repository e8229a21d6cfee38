// Package langsvc implements the Language Service (C11): for one language,
// it binds together the static descriptor, the Extraction Service, and the
// Manipulation Service into the single object the public API and the CLI
// actually call.
package langsvc

import (
	"context"

	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/descriptor"
	"github.com/codehem-go/codehem/internal/extraction"
	"github.com/codehem-go/codehem/internal/manipulate"
)

// Service is one language's complete, ready-to-use engine.
type Service struct {
	Desc       descriptor.Descriptor
	Extraction extraction.Service
	Manipulate manipulate.Service
}

func (s Service) Lang() string             { return s.Desc.Lang }
func (s Service) Aliases() []string        { return s.Desc.Aliases }
func (s Service) Extensions() []string     { return s.Desc.Extensions }
func (s Service) DefaultIgnore() []string  { return s.Desc.DefaultIgnore }

// Extract parses source into its hierarchical element tree.
func (s Service) Extract(ctx context.Context, source []byte) (*core.ElementTree, error) {
	return s.Extraction.Extract(ctx, source)
}

// FindByXPath resolves raw against tree.
func (s Service) FindByXPath(tree *core.ElementTree, raw string) (*core.Element, error) {
	return s.Extraction.FindByXPath(tree, raw)
}

// UpsertElementByXPath replaces or inserts the element raw addresses.
func (s Service) UpsertElementByXPath(ctx context.Context, source []byte, raw, content string) ([]byte, error) {
	return s.Manipulate.UpsertByXPath(ctx, source, raw, content)
}

// RemoveElementByXPath deletes the element raw addresses.
func (s Service) RemoveElementByXPath(ctx context.Context, source []byte, raw string) ([]byte, error) {
	return s.Manipulate.RemoveByXPath(ctx, source, raw)
}

// GetElementHash returns the target element's content digest.
func (s Service) GetElementHash(ctx context.Context, source []byte, raw string) (string, error) {
	return s.Manipulate.GetElementHash(ctx, source, raw)
}
