// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"iter"
)

// bitsOf yields the bits of b, most significant bit of each byte first.
func bitsOf(b []byte) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for _, v := range b {
			for shift := 7; shift >= 0; shift-- {
				if !yield((v >> shift) & 1) {
					return
				}
			}
		}
	}
}

// lsbReader reads channel LSBs of a grid in visit order and packs them into
// bytes, MSB first. The n-th visited slot is Pix[n], so it walks Pix
// directly.
type lsbReader struct {
	pix []uint8
	pos int
}

func newLSBReader(g PixelGrid) *lsbReader {
	return &lsbReader{pix: g.Pix}
}

// readBytes consumes n*8 slots. ok is false if the grid ran out first, in
// which case nothing is consumed.
func (r *lsbReader) readBytes(n int) ([]byte, bool) {
	if n < 0 || n > (len(r.pix)-r.pos)/8 {
		return nil, false
	}

	out := make([]byte, n)
	for i := range out {
		var acc byte
		for _, v := range r.pix[r.pos : r.pos+8] {
			acc = acc<<1 | v&1
		}
		out[i] = acc
		r.pos += 8
	}
	return out, true
}

// bitsRead is the number of slots consumed so far.
func (r *lsbReader) bitsRead() int {
	return r.pos
}
