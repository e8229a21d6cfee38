// Package registry is the two-phase build/serve lookup table mapping a
// language name, alias, or file extension to its Language Service. Adding a
// language means registering one more entry here; no other package branches
// on language name.
package registry

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/codehem-go/codehem/internal/logx"
)

// LanguageService is the subset of internal/langsvc.Service the registry
// needs to index entries; declared locally so this package never imports
// langsvc (langsvc imports registry, not the reverse).
type LanguageService interface {
	Lang() string
	Aliases() []string
	Extensions() []string
}

// Registry maps language identifiers to services, built once at process
// start-up and read concurrently afterward.
type Registry struct {
	mu         sync.RWMutex
	services   map[string]LanguageService
	aliases    map[string]string
	extensions map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		services:   make(map[string]LanguageService),
		aliases:    make(map[string]string),
		extensions: make(map[string]string),
	}
}

// Register adds a language service, indexing its canonical name, aliases,
// and extensions. Re-registering an existing canonical name, alias, or
// extension logs a warning and overwrites the existing mapping rather than
// failing, so a later Register call always wins.
func (r *Registry) Register(svc LanguageService) error {
	if svc == nil {
		return fmt.Errorf("registry: service cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	lang := svc.Lang()
	if lang == "" {
		return fmt.Errorf("registry: service must have a non-empty language name")
	}
	if _, exists := r.services[lang]; exists {
		logx.Warn("registry: language %q already registered, overwriting", lang)
	}
	r.services[lang] = svc

	for _, alias := range svc.Aliases() {
		if alias == "" {
			continue
		}
		if existing, exists := r.aliases[alias]; exists && existing != lang {
			logx.Warn("registry: alias %q already maps to %q, overwriting with %q", alias, existing, lang)
		}
		r.aliases[alias] = lang
	}

	for _, ext := range svc.Extensions() {
		ext = normalizeExt(ext)
		if existing, exists := r.extensions[ext]; exists && existing != lang {
			logx.Warn("registry: extension %q already maps to %q, overwriting with %q", ext, existing, lang)
		}
		r.extensions[ext] = lang
	}

	return nil
}

// Get resolves identifier (canonical name, alias, or extension with or
// without a leading dot) to a registered service.
func (r *Registry) Get(identifier string) (LanguageService, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if svc, ok := r.services[identifier]; ok {
		return svc, true
	}
	if lang, ok := r.aliases[identifier]; ok {
		svc, ok := r.services[lang]
		return svc, ok
	}
	if lang, ok := r.extensions[normalizeExt(identifier)]; ok {
		svc, ok := r.services[lang]
		return svc, ok
	}
	return nil, false
}

// GetForFile resolves a service from filename's extension.
func (r *Registry) GetForFile(filename string) (LanguageService, bool) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return nil, false
	}
	return r.Get(ext)
}

// List returns every registered canonical language name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	return names
}

func normalizeExt(ext string) string {
	if ext != "" && ext[0] != '.' {
		return "." + ext
	}
	return ext
}

// Default is the process-wide registry that internal/langsvc populates at
// init time and the public codehem package reads from.
var Default = New()
