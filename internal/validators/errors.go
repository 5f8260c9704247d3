package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyImage      = errors.New("image is required")
	ErrEmptyMessage    = errors.New("message is required")
	ErrInvalidMessage  = errors.New("message must be valid UTF-8")
	ErrEmptyPassphrase = errors.New("key is required")
)
