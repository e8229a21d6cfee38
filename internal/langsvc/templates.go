package langsvc

import (
	"github.com/codehem-go/codehem/internal/core"
	"github.com/codehem-go/codehem/internal/descriptor"
	"github.com/codehem-go/codehem/internal/extract/python"
	"github.com/codehem-go/codehem/internal/extract/tsx"
)

// customExtract builds the entry for a kind whose Extractor walks the AST
// directly because the construct needs structural context a single query or
// regexp can't express on its own: parent/class attachment (method,
// property, static_property), or decorator/export-wrapper unwrapping
// (class, function).
func customExtract(kind core.ElementKind) descriptor.ElementTypeDescriptor {
	return descriptor.ElementTypeDescriptor{ElementType: kind, CustomExtract: true}
}

// pythonElementTemplates declares python.NewSet's per-kind extraction
// strategy: decorator is pattern-based (tree-sitter query plus a regexp
// fallback for its name), everything else needs structural context and
// stays a custom AST walk.
func pythonElementTemplates() map[core.ElementKind]descriptor.ElementTypeDescriptor {
	return map[core.ElementKind]descriptor.ElementTypeDescriptor{
		core.KindDecorator: {
			ElementType:     core.KindDecorator,
			TreeSitterQuery: python.DecoratorQuery,
			RegexpPattern:   python.DecoratorNameRegexp,
		},
		core.KindImport:         customExtract(core.KindImport),
		core.KindClass:          customExtract(core.KindClass),
		core.KindFunction:       customExtract(core.KindFunction),
		core.KindMethod:         customExtract(core.KindMethod),
		core.KindStaticProperty: customExtract(core.KindStaticProperty),
		core.KindProperty:       customExtract(core.KindProperty),
	}
}

// tsxElementTemplates declares tsx.NewSet's per-kind extraction strategy,
// shared by JavaScript and TypeScript; dialect-only kinds (interface, type
// alias, enum, namespace) are appended by the caller when present.
func tsxElementTemplates() map[core.ElementKind]descriptor.ElementTypeDescriptor {
	return map[core.ElementKind]descriptor.ElementTypeDescriptor{
		core.KindDecorator: {
			ElementType:     core.KindDecorator,
			TreeSitterQuery: tsx.DecoratorQuery,
			RegexpPattern:   tsx.DecoratorNameRegexp,
		},
		core.KindImport:         customExtract(core.KindImport),
		core.KindClass:          customExtract(core.KindClass),
		core.KindFunction:       customExtract(core.KindFunction),
		core.KindMethod:         customExtract(core.KindMethod),
		core.KindProperty:       customExtract(core.KindProperty),
		core.KindStaticProperty: customExtract(core.KindStaticProperty),
	}
}

// tsxDialectElementTemplates adds the TypeScript-only kinds' strategy
// entries on top of the shared brace-family table.
func tsxDialectElementTemplates() map[core.ElementKind]descriptor.ElementTypeDescriptor {
	m := tsxElementTemplates()
	m[core.KindInterface] = customExtract(core.KindInterface)
	m[core.KindTypeAlias] = customExtract(core.KindTypeAlias)
	m[core.KindEnum] = customExtract(core.KindEnum)
	m[core.KindNamespace] = customExtract(core.KindNamespace)
	return m
}
