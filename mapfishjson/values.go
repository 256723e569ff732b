package mapfishjson

import (
	"fmt"
	"regexp"
	"strings"
)

// Value names may contain numbers, characters, _ or -.
var valueNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// A well-formed reference inside a property value.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z0-9_-]+)\}`)

// valueDictionary maps shared value names to their raw string values.
// It is built once per version-2 document, from top-level scalar keys
// in document order, and is read-only afterwards.
type valueDictionary struct {
	names []string
	dict  map[string]string
}

func newValueDictionary() *valueDictionary {
	return &valueDictionary{dict: make(map[string]string)}
}

func (d *valueDictionary) set(name string, raw string) {
	if _, exists := d.dict[name]; !exists {
		d.names = append(d.names, name)
	}
	d.dict[name] = raw
}

func (d *valueDictionary) lookup(name string) (string, bool) {
	v, ok := d.dict[name]
	return v, ok
}

// interpolate substitutes every ${name} reference in raw with its
// dictionary value. Substitution is a single pass: dictionary values
// are not re-interpolated, and a substituted value that still carries
// a reference is rejected rather than left partially resolved. A
// reference without a dictionary entry is an error, as is unbalanced
// token syntax.
func (d *valueDictionary) interpolate(raw string) (string, error) {
	if !strings.Contains(raw, "${") {
		return raw, nil
	}
	var missing error
	out := referencePattern.ReplaceAllStringFunc(raw, func(token string) string {
		name := token[2 : len(token)-1]
		v, ok := d.lookup(name)
		if !ok {
			missing = fmt.Errorf("%w: ${%s}", ErrUnresolvedValueReference, name)
			return token
		}
		return v
	})
	if missing != nil {
		return "", missing
	}
	if strings.Contains(out, "${") {
		return "", fmt.Errorf("%w in %q", ErrMalformedInterpolationToken, raw)
	}
	tracer().Debugf("interpolated %q -> %q", raw, out)
	return out, nil
}
