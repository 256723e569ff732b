package style

import (
	"image/color"
	"strconv"
	"strings"
)

// A small table of named colors; style documents in the wild mostly
// use hex notation.
var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0, 0, 0xff},
	"green":  {0, 0xff, 0, 0xff},
	"blue":   {0, 0, 0xff, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"orange": {0xff, 0xa5, 0, 0xff},
	"yellow": {0xff, 0xff, 0, 0xff},
}

// Color converts a property value into a color. Accepted notations
// are "#RGB", "#RRGGBB" and a handful of well-known color names. The
// boolean return is false if the value is not a color.
func (p Property) Color() (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okr := hexNibble(hex[0])
		g, okg := hexNibble(hex[1])
		b, okb := hexNibble(hex[2])
		if !okr || !okg || !okb {
			return nil, false
		}
		return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}, true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
	}
	return nil, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// Float converts a property value into a number. Trailing unit
// suffixes, as in "12px", are ignored.
func (p Property) Float() (float64, bool) {
	s := strings.TrimSpace(string(p))
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		end--
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
