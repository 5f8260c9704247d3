// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stego hides an encrypted text message in the least-significant
// bits of a pixel grid and recovers it.
//
// The embedded frame is
//
//	offset(bits)  field                size
//	0             ciphertext length L  32 bits, little-endian
//	32            nonce                96 bits
//	128           ciphertext           L*8 bits
//
// Frame bits are written MSB-first within each byte into channel LSBs,
// visiting pixels in row-major order and channels 0, 1, 2 within a pixel
// (see [VisitOrder]). The layout and bit order are a compatibility contract
// with every image produced by earlier versions of the tool.
//
// The cipher is not authenticated. Extracting with the wrong key yields
// garbage text rather than an error; only malformed framing is reported
// ([ErrFormat]).
package stego
