// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
)

// NonceSource supplies a fresh nonce for every embedded message.
// Implementations must be safe for concurrent use.
type NonceSource interface {
	GenerateNonce() ([]byte, error)
}

// Codec embeds and extracts encrypted frames. It holds no per-call state,
// so a single Codec may serve any number of concurrent calls.
type Codec struct {
	nonces NonceSource
}

// NewCodec returns a Codec drawing embed nonces from nonces.
func NewCodec(nonces NonceSource) *Codec {
	return &Codec{nonces: nonces}
}

// Embed encrypts plaintext with key and a fresh nonce, and returns a copy of
// grid whose channel LSBs carry the resulting frame. grid itself is never
// modified.
//
// If the frame needs more bits than the grid has slots, Embed returns
// [ErrCapacity] and writes nothing.
func (c *Codec) Embed(grid PixelGrid, plaintext, key []byte) (PixelGrid, error) {
	if err := grid.Validate(); err != nil {
		return PixelGrid{}, err
	}
	if len(key) != crypto.KeySize {
		return PixelGrid{}, crypto.ErrInvalidKeySize
	}
	if len(plaintext) == 0 {
		return PixelGrid{}, ErrEmptyMessage
	}

	nonce, err := c.nonces.GenerateNonce()
	if err != nil {
		return PixelGrid{}, fmt.Errorf("embed: %w", err)
	}
	if len(nonce) != crypto.NonceSize {
		return PixelGrid{}, crypto.ErrInvalidNonceSize
	}

	ciphertext, err := crypto.Transform(plaintext, key, nonce)
	if err != nil {
		return PixelGrid{}, fmt.Errorf("embed: %w", err)
	}

	frame := Frame{Ciphertext: ciphertext}
	copy(frame.Nonce[:], nonce)

	payload, err := frame.MarshalBinary()
	if err != nil {
		return PixelGrid{}, fmt.Errorf("embed: %w", err)
	}

	required := frame.BitLen()
	if available := uint64(grid.Capacity()); available < required {
		return PixelGrid{}, fmt.Errorf("%w: need %d bits, have %d", ErrCapacity, required, available)
	}

	out := grid.Clone()
	writeLSBs(out, payload)
	return out, nil
}

// writeLSBs stores every bit of payload in successive slots of g, starting
// at Pix[0]. The caller guarantees the payload fits.
func writeLSBs(g PixelGrid, payload []byte) {
	i := 0
	for bit := range bitsOf(payload) {
		g.Pix[i] = g.Pix[i]&0xFE | bit
		i++
	}
}

// Extract reads a frame from the channel LSBs of grid and decrypts it with
// key. Bytes of the plaintext that are not valid UTF-8 are dropped.
//
// A zero length header, or one declaring more bits than the grid holds,
// yields [ErrFormat]. A wrong key is not detected: it produces garbage text
// of the right length.
func (c *Codec) Extract(grid PixelGrid, key []byte) (string, error) {
	if err := grid.Validate(); err != nil {
		return "", err
	}
	if len(key) != crypto.KeySize {
		return "", crypto.ErrInvalidKeySize
	}

	r := newLSBReader(grid)

	header, ok := r.readBytes(lengthSize)
	if !ok {
		return "", fmt.Errorf("%w: carrier holds only %d bits", ErrFormat, grid.Capacity())
	}

	l := binary.LittleEndian.Uint32(header)
	required := frameBits(uint64(l))
	if l == 0 || required > uint64(grid.Capacity()) {
		return "", fmt.Errorf("%w: declared length %d needs %d bits, carrier holds %d",
			ErrFormat, l, required, grid.Capacity())
	}

	// required <= capacity was checked above, so the body always fits.
	body, ok := r.readBytes(crypto.NonceSize + int(l))
	if !ok {
		return "", fmt.Errorf("%w: carrier ended after %d bits", ErrFormat, r.bitsRead())
	}

	var frame Frame
	if err := frame.UnmarshalBinary(append(header, body...)); err != nil {
		return "", err
	}

	plaintext, err := crypto.Transform(frame.Ciphertext, key, frame.Nonce[:])
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	return strings.ToValidUTF8(string(plaintext), ""), nil
}
