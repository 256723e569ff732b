package mapfishjson

import (
	"fmt"
	"strconv"
	"strings"
)

// minDashLength is an absolute minimum dash length. It is not scaled
// by the stroke width; the "dot" of a dash pattern stays a dot.
const minDashLength = 0.1

// compileDashArray maps a strokeDashstyle value to a dash array: an
// alternating sequence of "on" and "off" segment lengths. The named
// styles scale with the stroke width w:
//
//	dot         [0.1, 2w]
//	dash        [2w, 2w]
//	dashdot     [3w, 2w, 0.1, 2w]
//	longdash    [4w, 2w]
//	longdashdot [5w, 2w, 0.1, 2w]
//
// A space-delimited sequence of numbers is taken literally, unscaled.
// Anything else is an error.
func compileDashArray(token string, strokeWidth float64) ([]float64, error) {
	w := strokeWidth
	switch strings.TrimSpace(token) {
	case "dot":
		return []float64{minDashLength, 2 * w}, nil
	case "dash":
		return []float64{2 * w, 2 * w}, nil
	case "dashdot":
		return []float64{3 * w, 2 * w, minDashLength, 2 * w}, nil
	case "longdash":
		return []float64{4 * w, 2 * w}, nil
	case "longdashdot":
		return []float64{5 * w, 2 * w, minDashLength, 2 * w}, nil
	}
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDashToken, token)
	}
	dash := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDashToken, token)
		}
		dash[i] = v
	}
	return dash, nil
}
