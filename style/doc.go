/*
Package style holds the compiled style model for map rendering.

A style is an ordered sequence of rules. Each rule binds a feature
filter to an ordered list of symbolizers, optionally bounded by scale
denominators. A symbolizer is a typed rendering directive (point,
line, polygon or text) carrying a map of resolved properties. Property
values are raw strings; package builder converts them into renderable
values.

The model is produced by a dialect compiler (see package mapfishjson)
and handed to a renderer. It is immutable in spirit: once compiled,
nothing in this module mutates it.

Status

This is an early draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.style")
}
