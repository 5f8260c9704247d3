// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the operations exposed by the command-line client.
type Client interface {
	// Hide embeds a message into the carrier at opts.ImagePath and writes
	// the PNG to opts.OutPath.
	Hide(ctx context.Context, opts HideOptions) error

	// Reveal extracts the message from the PNG at opts.ImagePath and prints
	// it.
	Reveal(ctx context.Context, opts RevealOptions) error
}
