package formdata

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrKeyConflict          = errors.New("key is both a value and a group")
	ErrEmptySeparator       = errors.New("separator must not be empty")
)
