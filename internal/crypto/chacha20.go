// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the exact key length accepted by the stream cipher.
	KeySize = 32
	// NonceSize is the exact nonce length accepted by the stream cipher.
	NonceSize = 12
	// BlockSize is the length of one keystream block.
	BlockSize = 64

	// initialCounter is the block counter of the first keystream block.
	initialCounter uint32 = 1
	doubleRounds          = 10
)

// "expand 32-byte k"
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

var _ cipher.Stream = (*Stream)(nil)

// quarterRound mixes four state words. All additions wrap mod 2^32.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = bits.RotateLeft32(d^a, 16)
	c += d
	b = bits.RotateLeft32(b^c, 12)
	a += b
	d = bits.RotateLeft32(d^a, 8)
	c += d
	b = bits.RotateLeft32(b^c, 7)
	return a, b, c, d
}

// Block produces the 64-byte keystream block for (key, nonce, counter).
// It is a pure function: identical inputs always give identical output.
func Block(key [8]uint32, nonce [3]uint32, counter uint32) [BlockSize]byte {
	initial := [16]uint32{
		constants[0], constants[1], constants[2], constants[3],
		key[0], key[1], key[2], key[3],
		key[4], key[5], key[6], key[7],
		counter, nonce[0], nonce[1], nonce[2],
	}
	s := initial

	for range doubleRounds {
		// columns
		s[0], s[4], s[8], s[12] = quarterRound(s[0], s[4], s[8], s[12])
		s[1], s[5], s[9], s[13] = quarterRound(s[1], s[5], s[9], s[13])
		s[2], s[6], s[10], s[14] = quarterRound(s[2], s[6], s[10], s[14])
		s[3], s[7], s[11], s[15] = quarterRound(s[3], s[7], s[11], s[15])
		// diagonals
		s[0], s[5], s[10], s[15] = quarterRound(s[0], s[5], s[10], s[15])
		s[1], s[6], s[11], s[12] = quarterRound(s[1], s[6], s[11], s[12])
		s[2], s[7], s[8], s[13] = quarterRound(s[2], s[7], s[8], s[13])
		s[3], s[4], s[9], s[14] = quarterRound(s[3], s[4], s[9], s[14])
	}

	var out [BlockSize]byte
	for i := range s {
		binary.LittleEndian.PutUint32(out[i*4:], s[i]+initial[i])
	}
	return out
}

// KeyWords splits a 32-byte key into eight little-endian words.
func KeyWords(key []byte) ([8]uint32, error) {
	var words [8]uint32
	if len(key) != KeySize {
		return words, ErrInvalidKeySize
	}
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return words, nil
}

// NonceWords splits a 12-byte nonce into three little-endian words.
func NonceWords(nonce []byte) ([3]uint32, error) {
	var words [3]uint32
	if len(nonce) != NonceSize {
		return words, ErrInvalidNonceSize
	}
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(nonce[i*4:])
	}
	return words, nil
}

// Stream is a keystream generator implementing [cipher.Stream].
// The counter starts at 1 and wraps at 2^32.
type Stream struct {
	key     [8]uint32
	nonce   [3]uint32
	counter uint32

	// buf holds the current block; buf[pos:] is still unused.
	buf [BlockSize]byte
	pos int
}

// NewStream returns a keystream positioned at the start of block 1.
// It rejects keys that are not [KeySize] bytes and nonces that are not
// [NonceSize] bytes.
func NewStream(key, nonce []byte) (*Stream, error) {
	k, err := KeyWords(key)
	if err != nil {
		return nil, err
	}
	n, err := NonceWords(nonce)
	if err != nil {
		return nil, err
	}

	return &Stream{
		key:     k,
		nonce:   n,
		counter: initialCounter,
		pos:     BlockSize,
	}, nil
}

// XORKeyStream XORs each byte of src with the next keystream byte and
// writes the result to dst. dst must be at least as long as src.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("crypto: output smaller than input")
	}

	for i := range src {
		if s.pos == BlockSize {
			s.buf = Block(s.key, s.nonce, s.counter)
			s.counter++
			s.pos = 0
		}
		dst[i] = src[i] ^ s.buf[s.pos]
		s.pos++
	}
}

// Transform encrypts or decrypts message with key and nonce. Applying it
// twice with the same key and nonce returns the original message.
func Transform(message, key, nonce []byte) ([]byte, error) {
	stream, err := NewStream(key, nonce)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(message))
	stream.XORKeyStream(out, message)
	return out, nil
}
