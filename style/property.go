package style

import (
	"fmt"
)

// Property is a raw value for a style property. For example, with
//
//	strokeColor: #FFA829
//
// a property value of "#FFA829" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullProperty is an empty property value.
const NullProperty Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Bags ----------------------------------------------------

// PropertyBag is an ordered collection of style properties. Bags form
// the three default layers of the version-2 dialect: a symbolizer's
// bag links to the rule-default bag, which links to the style-default
// bag. Lookup along the chain is done with Cascade.
//
// Insertion order of keys is preserved; the value dictionary of a
// style document relies on it.
type PropertyBag struct {
	Parent    *PropertyBag
	keys      []string
	propsDict map[string]Property
}

// NewPropertyBag creates a new empty property bag.
func NewPropertyBag() *PropertyBag {
	return &PropertyBag{}
}

// Stringer for property bags; used for debugging.
func (pb *PropertyBag) String() string {
	s := "[bag] =\n"
	for _, k := range pb.keys {
		s += fmt.Sprintf("  %s = %s\n", k, pb.propsDict[k])
	}
	return s
}

// Keys returns the property keys of this bag (no cascading), in
// insertion order.
func (pb *PropertyBag) Keys() []string {
	if pb == nil {
		return nil
	}
	k := make([]string, len(pb.keys))
	copy(k, pb.keys)
	return k
}

// Properties returns all properties of this bag, in insertion order.
func (pb *PropertyBag) Properties() []KeyValue {
	if pb == nil {
		return nil
	}
	r := make([]KeyValue, len(pb.keys))
	for i, k := range pb.keys {
		r[i] = KeyValue{k, pb.propsDict[k]}
	}
	return r
}

// IsSet is a predicate wether a property is set within this bag.
// No cascading is performed.
func (pb *PropertyBag) IsSet(key string) bool {
	if pb == nil || pb.propsDict == nil {
		return false
	}
	v, ok := pb.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value from this bag. No cascading is performed.
func (pb *PropertyBag) Get(key string) (Property, bool) {
	if pb == nil || pb.propsDict == nil {
		return NullProperty, false
	}
	p, ok := pb.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
// Unlike CSS, map style property values are case-significant (labels,
// colors, file references) and are stored verbatim.
func (pb *PropertyBag) Set(key string, p Property) {
	if pb.propsDict == nil {
		pb.propsDict = make(map[string]Property)
	}
	if _, exists := pb.propsDict[key]; !exists {
		pb.keys = append(pb.keys, key)
	}
	pb.propsDict[key] = p
}

// Size returns the number of properties in this bag, without parents.
func (pb *PropertyBag) Size() int {
	if pb == nil {
		return 0
	}
	return len(pb.keys)
}

// Cascade resolves a property along the chain of parent bags: the
// receiving bag is consulted first, then its parent, and so on. The
// first bag with the key set wins. This realizes the default layering
// symbolizer → rule default → style default.
func (pb *PropertyBag) Cascade(key string) (Property, bool) {
	for it := pb; it != nil; it = it.Parent {
		if p, ok := it.Get(key); ok {
			return p, true
		}
	}
	return NullProperty, false
}
