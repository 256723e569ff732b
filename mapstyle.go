/*
Package mapstyle compiles declarative map-style descriptions into a
typed style model for map renderers.

The module is organized around a small plugin mechanism: a StyleParser
takes a style string and either produces a compiled style, or reports
that the string is not in its format so that the next parser may try.
Package mapfishjson provides the parser for the Mapfish JSON dialects
(versions 1 and 2); package builder converts compiled styles into
renderable values.

Status

This is an early draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mapstyle

import (
	"errors"
	"sync"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/mapstyle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle")
}

// StyleParser is a parser plugin for one style format. ParseStyle
// returns Nothing, without an error, when the input is not in the
// parser's format; errors mean the input was recognized but invalid.
type StyleParser interface {
	ParseStyle(styleRef string) (maybe.Maybe[*style.Style], error)
}

// ErrNoStyleParser flags a style string no registered parser accepts.
var ErrNoStyleParser = errors.New("no style parser accepts the given style")

// Registry tries registered parsers in order and caches compiled
// styles by their source string. Independent print jobs share one
// registry; all methods are safe for concurrent use.
type Registry struct {
	parsers []StyleParser

	mu    sync.RWMutex
	cache map[string]*style.Style
}

// NewRegistry creates a registry over the given parsers. Order is
// significant: the first parser accepting an input wins.
func NewRegistry(parsers ...StyleParser) *Registry {
	return &Registry{
		parsers: parsers,
		cache:   make(map[string]*style.Style),
	}
}

// LoadStyle compiles a style string with the first accepting parser.
// Results are cached; compiled styles are read-only and may be shared.
func (r *Registry) LoadStyle(styleRef string) (*style.Style, error) {
	r.mu.RLock()
	cached, ok := r.cache[styleRef]
	r.mu.RUnlock()
	if ok {
		tracer().Debugf("style cache hit")
		return cached, nil
	}
	for _, p := range r.parsers {
		parsed, err := p.ParseStyle(styleRef)
		if err != nil {
			return nil, err
		}
		var compiled *style.Style
		switch m := parsed.Match(); m {
		case m.Just(&compiled):
			r.mu.Lock()
			r.cache[styleRef] = compiled
			r.mu.Unlock()
			return compiled, nil
		case m.Nothing():
		}
	}
	return nil, ErrNoStyleParser
}
