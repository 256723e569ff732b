package mapfishjson

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/mapstyle/pjson"
	"github.com/npillmayer/mapstyle/style"
)

const (
	jsonMinScale    = "minScale"
	jsonMaxScale    = "maxScale"
	jsonSymbolizers = "symbolizers"
	jsonType        = "type"
)

// compileVersion2 compiles the rule-based dialect. Top-level keys
// partition into scalar shared-value/default keys and filter-shaped
// rule keys; rules compile in document order.
func compileVersion2(p *Plugin, doc *pjson.Obj) (*style.Style, error) {
	dict, styleDefaults, err := collectValues(doc)
	if err != nil {
		return nil, err
	}
	compiled := style.NewStyle()
	for _, key := range doc.Keys() {
		if key == jsonVersion {
			continue
		}
		v, _ := doc.Field(key)
		if v.IsScalar() {
			continue // a shared value or style default, collected above
		}
		rule, err := compileRule(p, key, v, dict, styleDefaults)
		if err != nil {
			return nil, err
		}
		compiled.AppendRule(rule)
	}
	if compiled.Len() == 0 {
		return nil, fmt.Errorf("%w: style has no rules", ErrMissingRequiredProperty)
	}
	tracer().Debugf("version-2 style compiled with %d rule(s)", compiled.Len())
	return compiled, nil
}

// collectValues builds the value dictionary and, identically keyed,
// the style-default layer from top-level scalar keys. The source
// format does not distinguish shared values from style defaults: both
// live in the same namespace, differing only in whether a key is
// referenced via ${name} or relied upon as a default.
func collectValues(doc *pjson.Obj) (*valueDictionary, *style.PropertyBag, error) {
	dict := newValueDictionary()
	defaults := style.NewPropertyBag()
	for _, key := range doc.Keys() {
		if key == jsonVersion {
			continue
		}
		v, _ := doc.Field(key)
		if !v.IsScalar() {
			continue
		}
		name := strings.TrimSpace(key)
		if isFilterKey(name) {
			return nil, nil, fmt.Errorf("%w: rule %q must map to an object", ErrMalformedDocument, key)
		}
		if !valueNamePattern.MatchString(name) {
			return nil, nil, fmt.Errorf("%w: invalid value name %q", ErrMalformedDocument, key)
		}
		dict.set(name, v.Text())
		defaults.Set(name, style.Property(v.Text()))
	}
	tracer().Debugf("value dictionary has %d entr(ies)", len(dict.names))
	return dict, defaults, nil
}

func compileRule(p *Plugin, key string, v pjson.Value, dict *valueDictionary,
	styleDefaults *style.PropertyBag) (style.Rule, error) {
	//
	obj, ok := v.Object()
	if !ok {
		return style.Rule{}, fmt.Errorf("%w: rule %q is not an object", ErrMalformedDocument, key)
	}
	filter, err := parseFilterKey(key)
	if err != nil {
		return style.Rule{}, err
	}
	rule := style.NewRule(filter)
	if rule.MinScale, err = scaleBound(obj, jsonMinScale); err != nil {
		return style.Rule{}, fmt.Errorf("rule %q: %w", key, err)
	}
	if rule.MaxScale, err = scaleBound(obj, jsonMaxScale); err != nil {
		return style.Rule{}, fmt.Errorf("rule %q: %w", key, err)
	}
	ruleDefaults, err := bagFromObject(obj, map[string]bool{
		jsonMinScale:    true,
		jsonMaxScale:    true,
		jsonSymbolizers: true,
	})
	if err != nil {
		return style.Rule{}, fmt.Errorf("rule %q: %w", key, err)
	}
	ruleDefaults.Parent = styleDefaults
	symbolizers, ok := obj.Array(jsonSymbolizers)
	if !ok || len(symbolizers) == 0 {
		return style.Rule{}, fmt.Errorf("%w: rule %q has no symbolizers", ErrMissingRequiredProperty, key)
	}
	for i, symValue := range symbolizers {
		symObj, isObj := symValue.Object()
		if !isObj {
			return style.Rule{}, fmt.Errorf("%w: symbolizer %d of rule %q is not an object",
				ErrMalformedDocument, i, key)
		}
		typ := symObj.StringOr(jsonType, "")
		kind, known := style.KindOf(typ)
		if !known {
			return style.Rule{}, fmt.Errorf("%w: %q in rule %q", ErrUnknownSymbolizerType, typ, key)
		}
		values, err := bagFromObject(symObj, map[string]bool{jsonType: true})
		if err != nil {
			return style.Rule{}, fmt.Errorf("rule %q: %w", key, err)
		}
		values.Parent = ruleDefaults
		sym, err := resolveSymbolizer(kind, values, dict, p.resolver)
		if err != nil {
			return style.Rule{}, fmt.Errorf("rule %q: %w", key, err)
		}
		rule.Symbolizers = append(rule.Symbolizers, sym)
	}
	return rule, nil
}

// scaleBound reads an optional scale denominator. Bounds are numbers
// (or numeric strings); they are not validated against each other.
func scaleBound(obj *pjson.Obj, key string) (maybe.Maybe[float64], error) {
	if !obj.Has(key) {
		return maybe.Nothing[float64](), nil
	}
	f, ok := obj.Number(key)
	if !ok {
		return maybe.Nothing[float64](), fmt.Errorf("%w: %s is not a number", ErrMalformedDocument, key)
	}
	return maybe.Just(f), nil
}
