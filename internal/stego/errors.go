// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "errors"

var (
	// ErrCapacity is returned by Embed when the frame does not fit into the
	// carrier. Nothing is written in that case.
	ErrCapacity = errors.New("image is too small for this message")

	// ErrFormat is returned by Extract when the length header is zero or
	// declares a frame larger than the carrier. A wrong key and a corrupt
	// image are indistinguishable here.
	ErrFormat = errors.New("invalid frame length: wrong key or corrupt image")

	// ErrEmptyMessage is returned by Embed for an empty plaintext, which
	// would produce a frame Extract refuses to read.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrInvalidGrid is returned when a grid's pixel buffer does not match
	// its dimensions.
	ErrInvalidGrid = errors.New("pixel buffer does not match grid dimensions")
)
