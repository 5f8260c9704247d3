// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Channel positions inside a grid pixel.
const (
	ChannelBlue  = 0
	ChannelGreen = 1
	ChannelRed   = 2
)

// DefaultMaxPixels bounds width*height when no limit is configured.
const DefaultMaxPixels = 40_000_000

// Decoder turns encoded image bytes into pixel grids.
type Decoder struct {
	maxPixels int
}

// NewDecoder returns a Decoder rejecting images with more than maxPixels
// pixels. A non-positive maxPixels selects [DefaultMaxPixels].
func NewDecoder(maxPixels int) *Decoder {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Decoder{maxPixels: maxPixels}
}

// Decode parses data and returns its pixels as a BGR grid together with the
// name of the detected format.
func (d *Decoder) Decode(data []byte) (stego.PixelGrid, string, error) {
	if len(data) == 0 {
		return stego.PixelGrid{}, "", ErrEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return stego.PixelGrid{}, "", ErrUnsupportedFormat
		}
		return stego.PixelGrid{}, "", fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return stego.PixelGrid{}, format, fmt.Errorf("%w: %dx%d", ErrCorruptImage, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(d.maxPixels) {
		return stego.PixelGrid{}, format, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrImageTooLarge, cfg.Width, cfg.Height, d.maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return stego.PixelGrid{}, format, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	return ToGrid(img), format, nil
}

// ToGrid copies img into a BGR pixel grid. Colors are converted to
// non-premultiplied 8-bit values and alpha is dropped.
func ToGrid(img image.Image) stego.PixelGrid {
	b := img.Bounds()
	g := stego.NewPixelGrid(b.Dy(), b.Dx())

	// Fast path for the common decoder outputs.
	if src, ok := img.(*image.NRGBA); ok {
		for row := range g.Rows {
			line := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+row):]
			for col := range g.Cols {
				setBGR(g, row, col, line[col*4], line[col*4+1], line[col*4+2])
			}
		}
		return g
	}

	for row := range g.Rows {
		for col := range g.Cols {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.NRGBA)
			setBGR(g, row, col, c.R, c.G, c.B)
		}
	}
	return g
}

func setBGR(g stego.PixelGrid, row, col int, r, gr, b uint8) {
	g.Set(row, col, ChannelBlue, b)
	g.Set(row, col, ChannelGreen, gr)
	g.Set(row, col, ChannelRed, r)
}
