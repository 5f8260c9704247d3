// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading multipart requests. Callers can
// match against them with [errors.Is].
var (
	// ErrRequestTooLarge is returned when the request body exceeds the
	// configured upload limit.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrInvalidForm is returned when the body is not a readable
	// multipart form.
	ErrInvalidForm = errors.New("invalid multipart form")
)
