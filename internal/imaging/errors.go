package imaging

import "errors"

var (
	// ErrEmptyImage is returned when no image bytes were supplied.
	ErrEmptyImage = errors.New("empty image")

	// ErrUnsupportedFormat is returned when the bytes are not in any
	// registered image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrCorruptImage is returned when the header was recognised but the
	// pixel data could not be decoded.
	ErrCorruptImage = errors.New("corrupt image data")

	// ErrImageTooLarge is returned when the declared dimensions exceed the
	// configured pixel limit. The check happens before pixel data is
	// decoded.
	ErrImageTooLarge = errors.New("image is too large")
)
