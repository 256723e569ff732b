package mapfishjson

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/mapstyle/pjson"
	"github.com/npillmayer/mapstyle/style"
)

const (
	jsonVersion       = "version"
	jsonStyleProperty = "styleProperty"
)

// DocumentLoader fetches the bytes behind a style reference (a URL or
// a file path). See package loader for the provided implementation.
type DocumentLoader interface {
	Load(ref string) ([]byte, error)
}

// Resolver resolves a non-URL graphic reference against a configured
// base directory, rejecting references escaping it.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// Plugin is a style parser for the Mapfish JSON dialects. A Plugin
// holds no per-document state and is safe for concurrent use; every
// call to ParseStyle compiles independently.
type Plugin struct {
	loader   DocumentLoader
	resolver Resolver
}

// New creates a parser plugin. loader is used to fetch style documents
// referenced by URI instead of given inline; resolver resolves
// externalGraphic file references. Either may be nil, disabling the
// respective capability.
func New(loader DocumentLoader, resolver Resolver) *Plugin {
	return &Plugin{loader: loader, resolver: resolver}
}

// compiler compiles one parsed style document.
type compiler func(*Plugin, *pjson.Obj) (*style.Style, error)

// Dialect dispatch: the version string of a document, compared by
// exact equality, selects the compiler. Versions are never mixed
// within one document.
var dialects = map[string]compiler{
	"1": compileVersion1,
	"2": compileVersion2,
}

// ParseStyle compiles a style from a string. The string is first
// tried as inline JSON; if it is not brace-wrapped, or declares a
// version this plugin does not know, ParseStyle returns Nothing and
// the input is retried as a document reference through the loader.
// Loaded bytes run through the same inline path.
//
// Nothing with a nil error means the input is not a Mapfish JSON
// style at all; errors mean the input was recognized but is broken.
func (p *Plugin) ParseStyle(styleRef string) (maybe.Maybe[*style.Style], error) {
	parsed, err := p.tryInline(styleRef)
	if err != nil {
		return parsed, err
	}
	if isJust(parsed) {
		return parsed, nil
	}
	if p.loader == nil {
		return maybe.Nothing[*style.Style](), nil
	}
	tracer().Debugf("style is not inline JSON, trying as document reference")
	data, err := p.loader.Load(styleRef)
	if err != nil {
		return maybe.Nothing[*style.Style](), fmt.Errorf("style document %q: %w", styleRef, err)
	}
	return p.tryInline(string(data))
}

// tryInline attempts text as an inline JSON style document. Input not
// wrapped in braces, and documents of unknown version, yield Nothing.
func (p *Plugin) tryInline(text string) (maybe.Maybe[*style.Style], error) {
	none := maybe.Nothing[*style.Style]()
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return none, nil
	}
	doc, err := pjson.Parse(trimmed)
	if err != nil {
		return none, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	version := doc.StringOr(jsonVersion, "1")
	compile, known := dialects[version]
	if !known {
		tracer().Infof("style document declares unsupported version %q", version)
		return none, nil
	}
	compiled, err := compile(p, doc)
	if err != nil {
		return none, err
	}
	return maybe.Just(compiled), nil
}

func isJust(m maybe.Maybe[*style.Style]) bool {
	var s *style.Style
	switch mm := m.Match(); mm {
	case mm.Just(&s):
		return true
	case mm.Nothing():
	}
	return false
}
