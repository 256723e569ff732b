package mapfishjson

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mapstyle/style"
)

// resolveSymbolizer resolves one symbolizer of a given kind. layers is
// the head of a property-bag chain (symbolizer values → rule defaults
// → style defaults); resolution walks the chain per property, for the
// property vocabulary of the kind. Every resolved value passes through
// the value dictionary's single interpolation pass; dict is nil for
// the version-1 dialect, which has no value substitution.
//
// Derived values are computed here as well: the stroke dash array from
// strokeDashstyle and strokeWidth, the label classification for text
// symbolizers, and the resolution of non-URL externalGraphic
// references through the file-resolver collaborator.
func resolveSymbolizer(kind style.Kind, layers *style.PropertyBag, dict *valueDictionary,
	resolver Resolver) (style.Symbolizer, error) {
	//
	resolved := style.NewPropertyBag()
	for _, key := range style.PropertiesFor(kind) {
		raw, ok := layers.Cascade(key)
		if !ok {
			continue
		}
		value := raw.String()
		if dict != nil {
			v, err := dict.interpolate(value)
			if err != nil {
				return style.Symbolizer{}, fmt.Errorf("property %s: %w", key, err)
			}
			value = v
		}
		resolved.Set(key, style.Property(value))
	}
	if resolver != nil {
		if graphic, ok := resolved.Get("externalGraphic"); ok && !isURL(graphic.String()) {
			path, err := resolver.Resolve(graphic.String())
			if err != nil {
				return style.Symbolizer{}, fmt.Errorf("externalGraphic %q: %w", graphic, err)
			}
			resolved.Set("externalGraphic", style.Property(path))
		}
	}
	sym, err := newSymbolizer(kind, resolved)
	if err != nil {
		return style.Symbolizer{}, err
	}
	if dashStyle, ok := resolved.Get("strokeDashstyle"); ok {
		width := 1.0
		if sw, isSet := resolved.Get("strokeWidth"); isSet {
			if f, isNum := sw.Float(); isNum {
				width = f
			}
		}
		dash, err := compileDashArray(dashStyle.String(), width)
		if err != nil {
			return style.Symbolizer{}, err
		}
		sym = sym.WithDashArray(dash)
	}
	tracer().Debugf("resolved %s symbolizer with %d propert(ies)", kind, resolved.Size())
	return sym, nil
}

func newSymbolizer(kind style.Kind, resolved *style.PropertyBag) (style.Symbolizer, error) {
	switch kind {
	case style.Point:
		return style.PointSymbolizer(resolved), nil
	case style.Line:
		return style.LineSymbolizer(resolved), nil
	case style.Polygon:
		return style.PolygonSymbolizer(resolved), nil
	case style.Text:
		raw, ok := resolved.Get("label")
		if !ok {
			return style.Symbolizer{}, fmt.Errorf("%w: text symbolizer has no label", ErrMissingRequiredProperty)
		}
		label, err := classifyLabel(raw.String())
		if err != nil {
			return style.Symbolizer{}, err
		}
		return style.TextSymbolizer(resolved, label)
	}
	return style.Symbolizer{}, fmt.Errorf("%w: %d", ErrUnknownSymbolizerType, kind)
}

func isURL(ref string) bool {
	return strings.Contains(ref, "://")
}
