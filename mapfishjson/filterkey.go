package mapfishjson

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mapstyle/ecql"
	"github.com/npillmayer/mapstyle/style"
)

// isFilterKey is a predicate wether a top-level key has the shape of
// a rule filter. It decides the partitioning of version-2 documents;
// parseFilterKey then validates the key for real.
func isFilterKey(key string) bool {
	t := strings.TrimSpace(key)
	if t == "*" {
		return true
	}
	return strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]")
}

// parseFilterKey parses a rule key: "*" selects every feature, a key
// of the exact form [<expr>] carries an ECQL expression, handed over
// verbatim. Leading and trailing whitespace around the key is
// ignored. Any other form is an error.
func parseFilterKey(key string) (style.Filter, error) {
	t := strings.TrimSpace(key)
	if t == "*" {
		return style.MatchAll(), nil
	}
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") && len(t) >= 2 {
		expr, err := ecql.Parse(t[1 : len(t)-1])
		if err != nil {
			return style.Filter{}, fmt.Errorf("%w: %q: %v", ErrInvalidFilterKey, key, err)
		}
		return style.FilterExpression(expr), nil
	}
	return style.Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilterKey, key)
}
