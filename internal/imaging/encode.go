// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/MKhiriev/go-stego-keeper/internal/stego"
)

// FromGrid builds an opaque image from a BGR pixel grid.
func FromGrid(g stego.PixelGrid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for row := range g.Rows {
		line := img.Pix[row*img.Stride:]
		for col := range g.Cols {
			px := line[col*4 : col*4+4]
			px[0] = g.At(row, col, ChannelRed)
			px[1] = g.At(row, col, ChannelGreen)
			px[2] = g.At(row, col, ChannelBlue)
			px[3] = 0xFF
		}
	}
	return img
}

// EncodePNG serialises g as a lossless PNG.
func EncodePNG(g stego.PixelGrid) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, FromGrid(g)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
