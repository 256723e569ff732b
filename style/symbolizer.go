package style

import (
	"errors"
)

// Kind is an enum type for the four symbolizer types.
type Kind uint8

const (
	NoKind Kind = iota
	Point
	Line
	Polygon
	Text
)

var kindStringMap map[Kind]string = map[Kind]string{
	Point:   "point",
	Line:    "line",
	Polygon: "polygon",
	Text:    "text",
}

var stringKindMap map[string]Kind = map[string]Kind{
	"point":   Point,
	"line":    Line,
	"polygon": Polygon,
	"text":    Text,
}

func (k Kind) String() string {
	return kindStringMap[k]
}

// KindOf returns the symbolizer kind for a type discriminator string,
// e.g. "polygon". The boolean return is false for unknown types.
func KindOf(typ string) (Kind, bool) {
	k, ok := stringKindMap[typ]
	return k, ok
}

// ErrTextWithoutLabel flags construction of a text symbolizer without
// a label, which the model does not permit.
var ErrTextWithoutLabel = errors.New("text symbolizer requires a label")

// Symbolizer is a typed rendering directive. Every symbolizer carries
// a bag of fully resolved properties: default layering and `${name}`
// interpolation have already happened, values contain no unresolved
// references.
//
// Symbolizers of a rule are ordered; later symbolizers render on top
// of earlier ones.
type Symbolizer struct {
	kind  Kind
	props *PropertyBag
	label Label     // text symbolizers only
	dash  []float64 // compiled dash array, nil if no dash style set
}

// PointSymbolizer creates a point symbolizer from resolved properties.
func PointSymbolizer(props *PropertyBag) Symbolizer {
	return Symbolizer{kind: Point, props: props}
}

// LineSymbolizer creates a line symbolizer from resolved properties.
func LineSymbolizer(props *PropertyBag) Symbolizer {
	return Symbolizer{kind: Line, props: props}
}

// PolygonSymbolizer creates a polygon symbolizer from resolved
// properties.
func PolygonSymbolizer(props *PropertyBag) Symbolizer {
	return Symbolizer{kind: Polygon, props: props}
}

// TextSymbolizer creates a text symbolizer from resolved properties
// and a label. The label is required.
func TextSymbolizer(props *PropertyBag, label Label) (Symbolizer, error) {
	if label.IsUnset() {
		return Symbolizer{}, ErrTextWithoutLabel
	}
	return Symbolizer{kind: Text, props: props, label: label}, nil
}

// Kind returns the symbolizer type.
func (s Symbolizer) Kind() Kind {
	return s.kind
}

// Property returns a resolved property value of this symbolizer.
func (s Symbolizer) Property(key string) (Property, bool) {
	return s.props.Get(key)
}

// Properties returns all resolved properties, in resolution order.
func (s Symbolizer) Properties() []KeyValue {
	return s.props.Properties()
}

// Label returns the label of a text symbolizer. For the other kinds
// the returned label is unset.
func (s Symbolizer) Label() Label {
	return s.label
}

// DashArray returns the compiled stroke dash array, or nil if the
// symbolizer has no dash style.
func (s Symbolizer) DashArray() []float64 {
	return s.dash
}

// WithDashArray returns a copy of the symbolizer carrying a compiled
// dash array. The receiver is left unchanged.
func (s Symbolizer) WithDashArray(dash []float64) Symbolizer {
	s.dash = dash
	return s
}

// ---------------------------------------------------------------------------

func (s Symbolizer) Match() *SymbolizerMatcher {
	return &SymbolizerMatcher{sym: s}
}

type SymbolizerMatcher struct {
	sym Symbolizer
}

func (m *SymbolizerMatcher) Point(props **PropertyBag) *SymbolizerMatcher {
	return m.match(Point, props)
}

func (m *SymbolizerMatcher) Line(props **PropertyBag) *SymbolizerMatcher {
	return m.match(Line, props)
}

func (m *SymbolizerMatcher) Polygon(props **PropertyBag) *SymbolizerMatcher {
	return m.match(Polygon, props)
}

func (m *SymbolizerMatcher) Text(props **PropertyBag, label *Label) *SymbolizerMatcher {
	if m.sym.kind != Text {
		return nil
	}
	if label != nil {
		*label = m.sym.label
	}
	return m.match(Text, props)
}

func (m *SymbolizerMatcher) match(k Kind, props **PropertyBag) *SymbolizerMatcher {
	if m.sym.kind != k {
		return nil
	}
	if props != nil {
		*props = m.sym.props
	}
	return m
}

// --- Property vocabulary ----------------------------------------------

// Property names shared by all stroked symbolizer kinds.
var strokeProperties = []string{
	"strokeColor",
	"strokeOpacity",
	"strokeWidth",
	"strokeLinecap",
	"strokeDashstyle",
}

var fillProperties = []string{
	"fillColor",
	"fillOpacity",
}

var pointProperties = append(append([]string{
	"rotation",
	"externalGraphic",
	"graphicName",
	"graphicOpacity",
	"pointRadius",
}, fillProperties...), strokeProperties...)

var lineProperties = strokeProperties

var polygonProperties = append(append([]string{}, fillProperties...), strokeProperties...)

var textProperties = append([]string{
	"label",
	"fontColor",
	"fontFamily",
	"fontSize",
	"fontStyle",
	"fontWeight",
	"haloColor",
	"haloOpacity",
	"haloRadius",
	"labelAlign",
	"labelRotation",
	"labelXOffset",
	"labelYOffset",
}, fillProperties...)

var propertiesForKind = map[Kind][]string{
	Point:   pointProperties,
	Line:    lineProperties,
	Polygon: polygonProperties,
	Text:    textProperties,
}

// PropertiesFor returns the property vocabulary of a symbolizer kind.
// Compilers resolve exactly these names through the default layers.
func PropertiesFor(k Kind) []string {
	return propertiesForKind[k]
}
