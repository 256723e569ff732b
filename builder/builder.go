/*
Package builder converts compiled styles into renderable values.

The style model (package style) carries resolved but raw string
properties. This package is the sink turning property bags into typed
strokes, fills, fonts and halos, applying the built-in defaults for
properties absent at every document layer. A Builder is stateless and
safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/mapstyle/ecql"
	"github.com/npillmayer/mapstyle/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// tracer traces with key 'mapstyle.builder'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.builder")
}

// Builder builds renderable styles. parser compiles filter and label
// expressions; a nil parser leaves Predicate/LabelValuer fields nil
// and renderers deal with the expression text themselves.
type Builder struct {
	parser ecql.Parser
}

// New creates a builder with an optional expression parser.
func New(parser ecql.Parser) *Builder {
	return &Builder{parser: parser}
}

// Build converts a compiled style into a renderable one. Rule and
// symbolizer order is preserved.
func (b *Builder) Build(s *style.Style) (*Style, error) {
	out := &Style{StyleProperty: s.StyleProperty}
	for i, r := range s.Rules() {
		rule, err := b.buildRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out.Rules = append(out.Rules, rule)
	}
	tracer().Debugf("built renderable style with %d rule(s)", len(out.Rules))
	return out, nil
}

func (b *Builder) buildRule(r style.Rule) (Rule, error) {
	rule := Rule{
		Filter:   r.Filter,
		MinScale: r.MinScale,
		MaxScale: r.MaxScale,
	}
	var expr ecql.Expr
	switch m := r.Filter.Match(); m {
	case m.Expression(&expr):
		if b.parser != nil {
			pred, err := b.parser.CompileFilter(expr)
			if err != nil {
				return Rule{}, err
			}
			rule.Predicate = pred
		}
	case m.MatchAll():
	}
	for _, sym := range r.Symbolizers {
		built, err := b.buildSymbolizer(sym)
		if err != nil {
			return Rule{}, err
		}
		rule.Symbolizers = append(rule.Symbolizers, built)
	}
	return rule, nil
}

func (b *Builder) buildSymbolizer(sym style.Symbolizer) (Symbolizer, error) {
	var props *style.PropertyBag
	var label style.Label
	switch m := sym.Match(); m {
	case m.Point(&props):
		return PointSymbolizer{
			Graphic: Graphic{
				ExternalGraphic: prop(sym, "externalGraphic").String(),
				Name:            prop(sym, "graphicName").String(),
				Opacity:         opacity(prop(sym, "graphicOpacity")),
				Radius:          number(prop(sym, "pointRadius")),
				Rotation:        number(prop(sym, "rotation")),
			},
			Fill:   fill(sym),
			Stroke: stroke(sym),
		}, nil
	case m.Line(&props):
		return LineSymbolizer{Stroke: stroke(sym)}, nil
	case m.Polygon(&props):
		return PolygonSymbolizer{Fill: fill(sym), Stroke: stroke(sym)}, nil
	case m.Text(&props, &label):
		text := TextSymbolizer{
			Label: label,
			Font: Font{
				Color:  colorOf(prop(sym, "fontColor")),
				Family: prop(sym, "fontFamily").String(),
				Size:   points(prop(sym, "fontSize")),
				Style:  prop(sym, "fontStyle").String(),
				Weight: prop(sym, "fontWeight").String(),
			},
			Halo: Halo{
				Color:   colorOf(prop(sym, "haloColor")),
				Opacity: opacity(prop(sym, "haloOpacity")),
				Radius:  number(prop(sym, "haloRadius")),
			},
			Fill:     fill(sym),
			Align:    prop(sym, "labelAlign").String(),
			Rotation: number(prop(sym, "labelRotation")),
			Offset: Offset{
				X: points(prop(sym, "labelXOffset")),
				Y: points(prop(sym, "labelYOffset")),
			},
		}
		var expr ecql.Expr
		switch lm := label.Match(); lm {
		case lm.Expression(&expr):
			if b.parser != nil {
				valuer, err := b.parser.CompileExpression(expr)
				if err != nil {
					return nil, err
				}
				text.LabelValuer = valuer
			}
		case lm.Literal(nil):
		}
		return text, nil
	}
	return nil, fmt.Errorf("symbolizer of unknown kind %v", sym.Kind())
}

// prop resolves a property against the built-in defaults of the
// symbolizer's kind.
func prop(sym style.Symbolizer, key string) style.Property {
	if p, ok := sym.Property(key); ok {
		return p
	}
	return style.BuiltinDefault(sym.Kind(), key)
}

func stroke(sym style.Symbolizer) Stroke {
	return Stroke{
		Color:     colorOf(prop(sym, "strokeColor")),
		Opacity:   opacity(prop(sym, "strokeOpacity")),
		Width:     number(prop(sym, "strokeWidth")),
		Linecap:   prop(sym, "strokeLinecap").String(),
		DashArray: sym.DashArray(),
	}
}

func fill(sym style.Symbolizer) Fill {
	return Fill{
		Color:   colorOf(prop(sym, "fillColor")),
		Opacity: opacity(prop(sym, "fillOpacity")),
	}
}

func colorOf(p style.Property) color.Color {
	if c, ok := p.Color(); ok {
		return c
	}
	return color.Black
}

// opacity converts a 0…1 property value into a percentage.
func opacity(p style.Property) percent.Percent {
	f, ok := p.Float()
	if !ok {
		f = 1
	}
	return percent.FromInt(int(f*100 + 0.5))
}

func number(p style.Property) float64 {
	f, _ := p.Float()
	return f
}

// points converts a numeric property, optionally suffixed with a
// unit as in "12px", into print points.
func points(p style.Property) dimen.DU {
	f, _ := p.Float()
	return dimen.DU(f) * dimen.PT
}
