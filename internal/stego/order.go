// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import "iter"

// Slot addresses one channel value of one pixel.
type Slot struct {
	Row     int
	Col     int
	Channel int
}

// VisitOrder yields every slot of a rows × cols grid in embedding order
// (row 0..rows-1, then column, then channel 0..2) together with its linear
// position in that order. It knows nothing about payloads; consumers stop
// pulling once they have what they need.
func VisitOrder(rows, cols int) iter.Seq2[int, Slot] {
	return func(yield func(int, Slot) bool) {
		n := 0
		for row := range rows {
			for col := range cols {
				for ch := range Channels {
					if !yield(n, Slot{Row: row, Col: col, Channel: ch}) {
						return
					}
					n++
				}
			}
		}
	}
}
