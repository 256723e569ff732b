package mapfishjson

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/npillmayer/mapstyle/pjson"
	"github.com/npillmayer/mapstyle/style"
)

// Bundle properties deciding which symbolizer kinds a version-1 rule
// emits. The flat rule object mixes all four vocabularies; a kind is
// emitted when one of its signature properties is present.
var pointSignature = []string{"externalGraphic", "graphicName", "graphicOpacity", "pointRadius", "rotation"}
var lineSignature = []string{"strokeColor", "strokeOpacity", "strokeWidth", "strokeLinecap", "strokeDashstyle"}
var polygonSignature = []string{"fillColor", "fillOpacity"}
var textSignature = []string{"label"}

// Emission follows paint order: area fills below lines below point
// graphics below labels.
var v1Emission = []struct {
	kind      style.Kind
	signature []string
}{
	{style.Polygon, polygonSignature},
	{style.Line, lineSignature},
	{style.Point, pointSignature},
	{style.Text, textSignature},
}

// compileVersion1 compiles the flat, OpenLayers-2 compatible dialect.
// Every top-level key other than "version" and "styleProperty" is one
// rule matching all features. The source format leaves rule-key order
// undefined; keys are ordered ascending numerically, with keys that do
// not parse as integers sorting lexically after all numeric ones.
func compileVersion1(p *Plugin, doc *pjson.Obj) (*style.Style, error) {
	compiled := style.NewStyle()
	compiled.StyleProperty = doc.StringOr(jsonStyleProperty, "")
	var ruleKeys []string
	for _, key := range doc.Keys() {
		if key == jsonVersion || key == jsonStyleProperty {
			continue
		}
		ruleKeys = append(ruleKeys, key)
	}
	sort.SliceStable(ruleKeys, func(i, j int) bool {
		return v1KeyLess(ruleKeys[i], ruleKeys[j])
	})
	for _, key := range ruleKeys {
		sub, ok := doc.Object(key)
		if !ok {
			return nil, fmt.Errorf("%w: rule %q is not an object", ErrMalformedDocument, key)
		}
		bundle, err := bagFromObject(sub, nil)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", key, err)
		}
		rule := style.NewRule(style.MatchAll())
		for _, emit := range v1Emission {
			if !anySet(bundle, emit.signature) {
				continue
			}
			sym, err := resolveSymbolizer(emit.kind, bundle, nil, p.resolver)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", key, err)
			}
			rule.Symbolizers = append(rule.Symbolizers, sym)
		}
		compiled.AppendRule(rule)
	}
	tracer().Debugf("version-1 style compiled with %d rule(s)", compiled.Len())
	return compiled, nil
}

func v1KeyLess(a, b string) bool {
	na, erra := strconv.Atoi(a)
	nb, errb := strconv.Atoi(b)
	switch {
	case erra == nil && errb == nil:
		return na < nb
	case erra == nil:
		return true
	case errb == nil:
		return false
	}
	return a < b
}

func anySet(bag *style.PropertyBag, keys []string) bool {
	for _, k := range keys {
		if bag.IsSet(k) {
			return true
		}
	}
	return false
}

// bagFromObject collects the scalar fields of a JSON object into a
// property bag, skipping the given keys. Non-scalar fields are
// malformed; the dialects keep nesting to well-known places.
func bagFromObject(obj *pjson.Obj, skip map[string]bool) (*style.PropertyBag, error) {
	bag := style.NewPropertyBag()
	for _, key := range obj.Keys() {
		if skip[key] {
			continue
		}
		v, _ := obj.Field(key)
		if !v.IsScalar() {
			return nil, fmt.Errorf("%w: property %q is not a scalar", ErrMalformedDocument, key)
		}
		bag.Set(key, style.Property(v.Text()))
	}
	return bag, nil
}
