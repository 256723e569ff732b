package builder

import (
	"image/color"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/mapstyle/ecql"
	"github.com/npillmayer/mapstyle/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Style is a renderable map style: the property bags of a compiled
// style.Style converted into typed values, with built-in defaults
// filled in. Renderers consume this and draw features.
type Style struct {
	StyleProperty string
	Rules         []Rule
}

// Rule is a renderable rule. Predicate is the compiled feature filter,
// nil for match-all rules or when no expression parser is configured.
type Rule struct {
	Filter      style.Filter
	Predicate   ecql.Predicate
	MinScale    maybe.Maybe[float64]
	MaxScale    maybe.Maybe[float64]
	Symbolizers []Symbolizer
}

// Symbolizer is one of PointSymbolizer, LineSymbolizer,
// PolygonSymbolizer or TextSymbolizer.
type Symbolizer interface {
	isSymbolizer()
}

// Stroke carries line drawing values.
type Stroke struct {
	Color     color.Color
	Opacity   percent.Percent
	Width     float64
	Linecap   string
	DashArray []float64
}

// Fill carries area/glyph filling values.
type Fill struct {
	Color   color.Color
	Opacity percent.Percent
}

// Graphic carries the point graphic: either an external graphic file
// or a well-known mark name.
type Graphic struct {
	ExternalGraphic string
	Name            string
	Opacity         percent.Percent
	Radius          float64
	Rotation        float64
}

// Font carries text drawing values. Size is in print points.
type Font struct {
	Color  color.Color
	Family string
	Size   dimen.DU
	Style  string
	Weight string
}

// Halo is the glow around label text.
type Halo struct {
	Color   color.Color
	Opacity percent.Percent
	Radius  float64
}

// Offset displaces a label from the geometric center, in print
// points. Negative X offsets to the left, negative Y to the top.
type Offset struct {
	X dimen.DU
	Y dimen.DU
}

type PointSymbolizer struct {
	Graphic Graphic
	Fill    Fill
	Stroke  Stroke
}

type LineSymbolizer struct {
	Stroke Stroke
}

type PolygonSymbolizer struct {
	Fill   Fill
	Stroke Stroke
}

// TextSymbolizer draws labels. LabelValuer is the compiled dynamic
// label, nil for literal labels or when no expression parser is
// configured.
type TextSymbolizer struct {
	Label       style.Label
	LabelValuer ecql.Valuer
	Font        Font
	Halo        Halo
	Fill        Fill
	Align       string
	Rotation    float64
	Offset      Offset
}

func (PointSymbolizer) isSymbolizer()   {}
func (LineSymbolizer) isSymbolizer()    {}
func (PolygonSymbolizer) isSymbolizer() {}
func (TextSymbolizer) isSymbolizer()    {}
