package mapfishjson

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mapstyle/ecql"
	"github.com/npillmayer/mapstyle/style"
)

// classifyLabel decides whether a label property value is a literal
// string or a dynamic expression. A trimmed value wrapped in square
// brackets carries an ECQL expression, mirroring the filter-key
// convention; anything else is a constant label. The caller passes
// the value already interpolated.
func classifyLabel(value string) (style.Label, error) {
	t := strings.TrimSpace(value)
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") && len(t) >= 2 {
		expr, err := ecql.Parse(t[1 : len(t)-1])
		if err != nil {
			return style.Label{}, fmt.Errorf("label expression %q: %w", value, err)
		}
		return style.ExpressionLabel(expr), nil
	}
	return style.LiteralLabel(value), nil
}
