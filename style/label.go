package style

import (
	"github.com/npillmayer/mapstyle/ecql"
)

// labelKind is an enum type for text symbolizer labels.
type labelKind uint8

const (
	labelUnset labelKind = iota
	labelLiteral
	labelExpression
)

// Label is an option type for the label of a text symbolizer.
//
//	type Label
//	    = Literal string
//	    | Expression ecql.Expr
//
// A label property value wrapped in brackets, e.g. "[name]", is a
// dynamic label computed per feature by the external expression
// parser; any other value is a hardcoded literal.
type Label struct {
	kind labelKind
	text string
	expr ecql.Expr
}

// LiteralLabel creates a constant label.
func LiteralLabel(text string) Label {
	return Label{kind: labelLiteral, text: text}
}

// ExpressionLabel creates a dynamic label from an ECQL expression.
func ExpressionLabel(e ecql.Expr) Label {
	return Label{kind: labelExpression, expr: e}
}

// IsUnset is true for the zero Label.
func (l Label) IsUnset() bool {
	return l.kind == labelUnset
}

func (l Label) String() string {
	switch l.kind {
	case labelLiteral:
		return l.text
	case labelExpression:
		return "[" + l.expr.String() + "]"
	}
	return ""
}

// ---------------------------------------------------------------------------

func (l Label) Match() *LabelMatcher {
	return &LabelMatcher{label: l}
}

type LabelMatcher struct {
	label Label
}

func (m *LabelMatcher) Literal(text *string) *LabelMatcher {
	if m.label.kind == labelLiteral {
		if text != nil {
			*text = m.label.text
		}
		return m
	}
	return nil
}

func (m *LabelMatcher) Expression(e *ecql.Expr) *LabelMatcher {
	if m.label.kind == labelExpression {
		if e != nil {
			*e = m.label.expr
		}
		return m
	}
	return nil
}
