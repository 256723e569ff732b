/*
Package mapfishjson compiles JSON-encoded map styles into the style
model of package style.

Two dialects share one property vocabulary (colors, opacities, stroke
and label attributes) but differ in structure.

Version 1 is the flat, OpenLayers-2 compatible format. Every top-level
key besides "version" and "styleProperty" names one rule; each rule is
a single flat object mixing point, line, polygon and text properties:

	{
	  "version": "1",
	  "styleProperty": "_gx_style",
	  "1": {
	    "fillColor": "#FF0000",
	    "strokeColor": "#FFA829",
	    "strokeWidth": 5,
	    "label": "${name}"
	  }
	}

There is no value dictionary and no default inheritance in version 1;
property values are taken literally.

Version 2 supports multiple filtered rules, shared named values and
layered defaults:

	{
	  "version": "2",
	  "val1": "#FFA829",
	  "strokeDashstyle": "dot",
	  "[population > 300]": {
	    "rotation": "30",
	    "minScale": 100000,
	    "maxScale": 1000000,
	    "symbolizers": [
	      { "type": "polygon", "strokeColor": "${val1}" },
	      { "type": "text", "label": "[name]" }
	    ]
	  }
	}

Top-level scalar keys are shared values, referenced as ${name} inside
property values, and at the same time style-level defaults: the only
difference between a value and a default is that a default has a
well-known property name. Rule keys are either "*" (match every
feature) or an ECQL expression in square brackets. Rule-level scalar
keys other than minScale, maxScale and symbolizers are rule defaults,
overriding style defaults and overridden by symbolizer values.

A "text" symbolizer requires a label; all other properties of all
types have built-in defaults (see package style). A label value in
square brackets is a dynamic ECQL expression, anything else a literal.

The entry point first tries the input as inline JSON; input that is
not brace-wrapped, or declares an unknown version, yields Nothing so
that a caller may retry the string as a document reference through a
loader (see package loader).

Status

This is an early draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mapfishjson

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.mapfishjson'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.mapfishjson")
}
