// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to a
// running go-stego-keeper server.
//
// [ServerAdapter] mirrors the server's form endpoints so that the CLI can
// use a remote server wherever it would use the in-process stego service.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, so callers can use [errors.Is] regardless of the message
// the server attached (e.g. [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stego-keeper/models"
)

// ServerAdapter defines communication with the go-stego-keeper server.
type ServerAdapter interface {
	// Hide uploads the carrier, message and key to POST /encrypt and
	// returns the PNG the server produced.
	Hide(ctx context.Context, request models.HideRequest) ([]byte, error)

	// Reveal uploads the carrier and key to POST /decrypt and returns the
	// recovered message.
	Reveal(ctx context.Context, request models.RevealRequest) (string, error)

	// Version returns the server's build version from GET /api/version/.
	Version(ctx context.Context) (string, error)
}
