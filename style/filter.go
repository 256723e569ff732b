package style

import (
	"github.com/npillmayer/mapstyle/ecql"
)

// filterKind is an enum type for rule filters.
type filterKind uint8

const (
	filterUnset filterKind = iota
	filterMatchAll
	filterExpression
)

// Filter is an option type for the feature filter of a rule.
//
//	type Filter
//	    = MatchAll
//	    | Expression ecql.Expr
//
// A filter originates from a rule key in a style document: "*" selects
// every feature, "[<expr>]" selects features matching an ECQL
// expression.
type Filter struct {
	kind filterKind
	expr ecql.Expr
}

// MatchAll creates a filter selecting every feature.
func MatchAll() Filter {
	return Filter{kind: filterMatchAll}
}

// FilterExpression creates a filter selecting features matching an
// ECQL expression.
func FilterExpression(e ecql.Expr) Filter {
	return Filter{kind: filterExpression, expr: e}
}

// String reproduces the rule-key form of a filter: "*" for MatchAll,
// "[<expr>]" otherwise. The output re-parses to an equal Filter.
func (f Filter) String() string {
	if f.kind == filterExpression {
		return "[" + f.expr.String() + "]"
	}
	return "*"
}

// ---------------------------------------------------------------------------

func (f Filter) Match() *FilterMatcher {
	return &FilterMatcher{filter: f}
}

type FilterMatcher struct {
	filter Filter
}

func (m *FilterMatcher) MatchAll() *FilterMatcher {
	if m.filter.kind == filterMatchAll {
		return m
	}
	return nil
}

func (m *FilterMatcher) Expression(e *ecql.Expr) *FilterMatcher {
	if m.filter.kind == filterExpression {
		if e != nil {
			*e = m.filter.expr
		}
		return m
	}
	return nil
}
