// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "fmt"

// Channels is the number of channel values per pixel.
const Channels = 3

// PixelGrid is a rows × cols × 3 raster of 8-bit channel values.
//
// Pix is laid out row-major and channel-minor: the value of channel ch of the
// pixel at (row, col) is Pix[(row*Cols+col)*Channels+ch]. This is exactly the
// order in which [VisitOrder] walks the grid, so the n-th visited slot is
// Pix[n].
type PixelGrid struct {
	Rows int
	Cols int
	Pix  []uint8
}

// NewPixelGrid returns an all-zero grid of the given dimensions.
func NewPixelGrid(rows, cols int) PixelGrid {
	return PixelGrid{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols*Channels),
	}
}

// Capacity is the number of payload bits the grid can carry, one per
// channel value.
func (g PixelGrid) Capacity() int {
	return g.Rows * g.Cols * Channels
}

// Offset returns the index into Pix of the given slot.
func (g PixelGrid) Offset(s Slot) int {
	return (s.Row*g.Cols+s.Col)*Channels + s.Channel
}

// At returns the value of channel ch of the pixel at (row, col).
func (g PixelGrid) At(row, col, ch int) uint8 {
	return g.Pix[g.Offset(Slot{Row: row, Col: col, Channel: ch})]
}

// Set stores v as channel ch of the pixel at (row, col).
func (g PixelGrid) Set(row, col, ch int, v uint8) {
	g.Pix[g.Offset(Slot{Row: row, Col: col, Channel: ch})] = v
}

// Clone returns a deep copy; writes to the copy never reach g.
func (g PixelGrid) Clone() PixelGrid {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return PixelGrid{Rows: g.Rows, Cols: g.Cols, Pix: pix}
}

// Validate reports whether the dimensions are non-negative and agree with
// the length of Pix.
func (g PixelGrid) Validate() error {
	if g.Rows < 0 || g.Cols < 0 || len(g.Pix) != g.Capacity() {
		return fmt.Errorf("%w: %dx%dx%d vs %d values",
			ErrInvalidGrid, g.Rows, g.Cols, Channels, len(g.Pix))
	}
	return nil
}
