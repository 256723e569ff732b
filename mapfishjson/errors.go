package mapfishjson

import (
	"errors"
)

// Error kinds of the style compiler. All are surfaced wrapped, with
// detail appended, and respond to errors.Is. An unsupported dialect
// version is not among them: it is an absence signal (Nothing), not
// an error, so that callers can fall back to loading the input as a
// document reference.
var (
	// ErrMalformedDocument flags input that was attempted as inline
	// JSON but is not a well-formed style document.
	ErrMalformedDocument = errors.New("malformed style document")

	// ErrUnresolvedValueReference flags a ${name} token without a
	// dictionary entry.
	ErrUnresolvedValueReference = errors.New("unresolved value reference")

	// ErrMalformedInterpolationToken flags an unbalanced ${, or a
	// substituted value still containing a reference after the single
	// interpolation pass.
	ErrMalformedInterpolationToken = errors.New("malformed value reference")

	// ErrInvalidFilterKey flags a rule key that is neither "*" nor a
	// bracketed expression.
	ErrInvalidFilterKey = errors.New("invalid rule filter key")

	// ErrInvalidDashToken flags an unrecognized strokeDashstyle value.
	ErrInvalidDashToken = errors.New("invalid stroke dash style")

	// ErrMissingRequiredProperty flags a missing required element,
	// e.g. a text symbolizer without label or a rule without
	// symbolizers.
	ErrMissingRequiredProperty = errors.New("required property is missing")

	// ErrUnknownSymbolizerType flags a symbolizer type discriminator
	// outside point|line|polygon|text.
	ErrUnknownSymbolizerType = errors.New("unknown symbolizer type")
)
