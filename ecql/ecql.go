/*
Package ecql carries ECQL expressions as opaque text.

ECQL is the filter- and expression-language of the GeoServer/GeoTools
world. This module never interprets ECQL semantics: expressions are
validated for mere presence, transported verbatim, and handed to an
external parser at render time. The Parser interface below is the seam
for that collaborator; see package builder for where it is consumed.

Status

This is an early draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ecql

import (
	"errors"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.ecql'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.ecql")
}

// Expr is a single ECQL expression, e.g. "population > 300" or
// "centroid(geomAtt)". The text between the brackets of a rule key or
// a dynamic label becomes an Expr, unmodified.
type Expr string

// ErrEmptyExpression flags an expression without any content.
var ErrEmptyExpression = errors.New("ECQL expression is empty")

// Parse wraps expression text into an Expr. Parsing is purely
// syntactic delegation: the only requirement is non-blank content.
func Parse(text string) (Expr, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyExpression
	}
	tracer().Debugf("ECQL expression %q accepted verbatim", text)
	return Expr(text), nil
}

func (e Expr) String() string {
	return string(e)
}

// Predicate decides whether a feature matches a compiled filter
// expression. Implementations come from the external ECQL parser.
type Predicate interface {
	Matches(feature map[string]interface{}) (bool, error)
}

// Valuer computes a value for a feature, e.g. a dynamic label.
type Valuer interface {
	Value(feature map[string]interface{}) (interface{}, error)
}

// Parser is the collaborator interface for an external ECQL
// implementation. Errors from a Parser are surfaced unchanged.
//
// Having this interface imposes a small indirection, but it keeps the
// style compiler independent of any concrete expression engine.
// Clients plug in whatever their renderer understands.
type Parser interface {
	CompileFilter(Expr) (Predicate, error)
	CompileExpression(Expr) (Valuer, error)
}
