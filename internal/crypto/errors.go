// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Contract violations. They are never coerced: a wrong size is always an
// error, never silently padded or truncated.
var (
	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("key must be exactly 32 bytes")

	// ErrInvalidNonceSize is returned when a nonce is not exactly NonceSize bytes.
	ErrInvalidNonceSize = errors.New("nonce must be exactly 12 bytes")

	// ErrEmptyPassphrase is returned by key normalization for an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")
)
