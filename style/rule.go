package style

import (
	"github.com/npillmayer/fp/maybe"
)

// Rule binds a feature filter to an ordered list of symbolizers,
// optionally bounded by scale denominators. Scale bounds are not
// validated against each other.
type Rule struct {
	Filter      Filter
	MinScale    maybe.Maybe[float64]
	MaxScale    maybe.Maybe[float64]
	Symbolizers []Symbolizer
}

// NewRule creates a rule for a filter, without scale bounds and
// without symbolizers.
func NewRule(f Filter) Rule {
	return Rule{
		Filter:   f,
		MinScale: maybe.Nothing[float64](),
		MaxScale: maybe.Nothing[float64](),
	}
}

// Style is a compiled map style: an ordered sequence of rules.
// Rule order is document order for the version-2 dialect and the
// documented key order for version 1. Styles are built once by a
// dialect compiler and are read-only afterwards; a Style value may be
// shared between concurrent print jobs.
type Style struct {
	// StyleProperty is the feature attribute holding per-feature style
	// references (version-1 metadata, empty if absent).
	StyleProperty string

	rules []Rule
}

// NewStyle creates an empty style.
func NewStyle() *Style {
	return &Style{}
}

// AppendRule appends a rule; later rules render on top.
func (s *Style) AppendRule(r Rule) *Style {
	s.rules = append(s.rules, r)
	tracer().Debugf("style: appended rule %s with %d symbolizer(s)", r.Filter, len(r.Symbolizers))
	return s
}

// Rules returns the ordered rules of the style.
func (s *Style) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}
