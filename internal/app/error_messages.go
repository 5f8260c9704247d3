// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-stego-keeper server handlers and the browser UI.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies. Keeping them in one place keeps the wording identical across
// the API, the UI and the CLI output.
package app

const (
	// MsgCapacity is returned when the carrier has fewer channel slots than
	// the frame needs.
	MsgCapacity = "Image is too small for this message."

	// MsgDecryptFailed is returned when no plausible frame was found in the
	// carrier. A wrong key usually produces garbage text instead; this
	// message covers both causes because they cannot be told apart.
	MsgDecryptFailed = "Decryption failed. The key may be wrong or the image is corrupt."

	// MsgBadImage is returned when the upload is not a decodable image.
	MsgBadImage = "unsupported or corrupt image"

	// MsgImageTooLarge is returned when the upload exceeds the byte limit
	// or its declared dimensions exceed the pixel limit.
	MsgImageTooLarge = "image is too large"

	// MsgInvalidGzip is returned when a request claims gzip encoding but the
	// body is not a gzip stream.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
