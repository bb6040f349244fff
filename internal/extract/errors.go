package extract

import "errors"

var (
	// ErrUnnamedCapture is returned when a rule pattern contains a capture
	// group without a name. Rules address captures by name only.
	ErrUnnamedCapture = errors.New("capture groups must be named")

	// ErrEmptyMarker is returned when a product extractor is built with an
	// empty class marker, which would match every anchor.
	ErrEmptyMarker = errors.New("product class marker must not be empty")
)
