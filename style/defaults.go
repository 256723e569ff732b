package style

// Built-in property defaults per symbolizer kind. These apply when a
// property is absent at all three document layers (symbolizer, rule
// default, style default). The values follow the OpenLayers-2 lineage
// of the version-1 dialect.

var strokeDefaults = map[string]Property{
	"strokeColor":   "#ee9900",
	"strokeOpacity": "1",
	"strokeWidth":   "1",
	"strokeLinecap": "butt",
}

var fillDefaults = map[string]Property{
	"fillColor":   "#ee9900",
	"fillOpacity": "0.4",
}

var pointDefaults = merge(map[string]Property{
	"graphicName":    "circle",
	"graphicOpacity": "1",
	"pointRadius":    "4",
	"rotation":       "0",
}, fillDefaults, strokeDefaults)

var lineDefaults = merge(nil, strokeDefaults)

var polygonDefaults = merge(nil, fillDefaults, strokeDefaults)

var textDefaults = merge(map[string]Property{
	"fontColor":     "#000000",
	"fontFamily":    "sans-serif",
	"fontSize":      "10",
	"fontStyle":     "normal",
	"fontWeight":    "normal",
	"haloColor":     "#ffffff",
	"haloOpacity":   "1",
	"haloRadius":    "1",
	"labelAlign":    "cm",
	"labelRotation": "0",
	"labelXOffset":  "0",
	"labelYOffset":  "0",
}, fillDefaults)

var defaultsForKind = map[Kind]map[string]Property{
	Point:   pointDefaults,
	Line:    lineDefaults,
	Polygon: polygonDefaults,
	Text:    textDefaults,
}

func merge(dst map[string]Property, more ...map[string]Property) map[string]Property {
	if dst == nil {
		dst = make(map[string]Property)
	}
	for _, m := range more {
		for k, v := range m {
			dst[k] = v
		}
	}
	return dst
}

// BuiltinDefault returns the built-in default value of a property for
// a symbolizer kind, or NullProperty if the kind has no default for
// the key.
func BuiltinDefault(k Kind, key string) Property {
	return defaultsForKind[k][key]
}
