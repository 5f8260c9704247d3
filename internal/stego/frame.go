// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
)

const (
	// lengthSize is the size of the little-endian ciphertext length header.
	lengthSize = 4
	// frameOverhead is the number of frame bytes preceding the ciphertext.
	frameOverhead = lengthSize + crypto.NonceSize
)

// Frame is the unit actually embedded into a carrier.
type Frame struct {
	Nonce      [crypto.NonceSize]byte
	Ciphertext []byte
}

// frameBits is the total bit length of a frame carrying l ciphertext bytes.
// l may come straight from a corrupt header, hence uint64.
func frameBits(l uint64) uint64 {
	return (frameOverhead + l) * 8
}

// BitLen is the number of carrier slots the frame occupies.
func (f Frame) BitLen() uint64 {
	return frameBits(uint64(len(f.Ciphertext)))
}

// MarshalBinary encodes the frame as length ‖ nonce ‖ ciphertext.
func (f Frame) MarshalBinary() ([]byte, error) {
	if uint64(len(f.Ciphertext)) > math.MaxUint32 {
		return nil, fmt.Errorf("ciphertext of %d bytes does not fit a 32-bit length header", len(f.Ciphertext))
	}

	out := make([]byte, frameOverhead+len(f.Ciphertext))
	binary.LittleEndian.PutUint32(out, uint32(len(f.Ciphertext)))
	copy(out[lengthSize:], f.Nonce[:])
	copy(out[frameOverhead:], f.Ciphertext)
	return out, nil
}

// UnmarshalBinary decodes a frame produced by MarshalBinary. The length
// header must be non-zero and match the remaining bytes exactly.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < frameOverhead {
		return fmt.Errorf("%w: frame of %d bytes is shorter than its header", ErrFormat, len(data))
	}

	l := binary.LittleEndian.Uint32(data)
	if l == 0 || uint64(len(data)-frameOverhead) != uint64(l) {
		return fmt.Errorf("%w: header declares %d ciphertext bytes, frame has %d",
			ErrFormat, l, len(data)-frameOverhead)
	}

	copy(f.Nonce[:], data[lengthSize:frameOverhead])
	f.Ciphertext = append([]byte(nil), data[frameOverhead:]...)
	return nil
}
