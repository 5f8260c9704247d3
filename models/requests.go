package models

// HideRequest carries everything needed to hide a message in a carrier.
type HideRequest struct {
	// Image is the encoded carrier image (PNG, JPEG, GIF, BMP, TIFF or WebP).
	Image []byte

	// Message is the text to hide. Must be non-empty.
	Message string

	// Passphrase is normalized into the 32-byte cipher key. Must be non-empty.
	Passphrase string
}

// RevealRequest carries everything needed to recover a hidden message.
type RevealRequest struct {
	// Image is the encoded image produced by a previous hide operation.
	Image []byte

	// Passphrase must match the one used to hide the message; a different
	// one yields unrelated text rather than an error.
	Passphrase string
}
