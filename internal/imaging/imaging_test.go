package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x + y), A: 0xFF})
		}
	}
	return img
}

func encodeWith(t *testing.T, img image.Image, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func pngBytes(t *testing.T, img image.Image) []byte {
	return encodeWith(t, img, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
}

// ── Decode ───────────────────────────────────────────────────────────────────

func TestDecode_PNGChannelOrderIsBGR(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 0xFF})

	g, format, err := NewDecoder(0).Decode(pngBytes(t, img))
	require.NoError(t, err)

	assert.Equal(t, "png", format)
	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 2, g.Cols)
	assert.Equal(t, []uint8{30, 20, 10, 60, 50, 40}, g.Pix)
}

func TestDecode_BMP(t *testing.T) {
	src := gradient(5, 4)
	data := encodeWith(t, src, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) })

	g, format, err := NewDecoder(0).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "bmp", format)
	assert.Equal(t, ToGrid(src), g)
}

func TestDecode_JPEGDimensions(t *testing.T) {
	data := encodeWith(t, gradient(9, 6), func(b *bytes.Buffer, i image.Image) error {
		return jpeg.Encode(b, i, &jpeg.Options{Quality: 90})
	})

	g, format, err := NewDecoder(0).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 9, g.Cols)
	assert.NoError(t, g.Validate())
}

func TestDecode_Errors(t *testing.T) {
	valid := pngBytes(t, gradient(32, 32))

	tests := []struct {
		name    string
		data    []byte
		max     int
		wantErr error
	}{
		{"empty", nil, 0, ErrEmptyImage},
		{"not an image", []byte("definitely not an image"), 0, ErrUnsupportedFormat},
		{"truncated png", valid[:len(valid)/2], 0, ErrCorruptImage},
		{"too many pixels", valid, 1023, ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewDecoder(tt.max).Decode(tt.data)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDecode_PixelLimitIsInclusive(t *testing.T) {
	_, _, err := NewDecoder(16).Decode(pngBytes(t, gradient(4, 4)))

	assert.NoError(t, err)
}

func TestNewDecoder_Default(t *testing.T) {
	assert.Equal(t, DefaultMaxPixels, NewDecoder(-1).maxPixels)
}

func TestToGrid_NonZeroOrigin(t *testing.T) {
	full := gradient(6, 6)
	sub := full.SubImage(image.Rect(2, 3, 5, 6)).(*image.NRGBA)

	g := ToGrid(sub)

	require.Equal(t, 3, g.Rows)
	require.Equal(t, 3, g.Cols)
	c := full.NRGBAAt(2, 3)
	assert.Equal(t, []uint8{c.B, c.G, c.R}, g.Pix[:3])
}

func TestToGrid_GenericImageDropsAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xFF})

	g := ToGrid(img)

	assert.Equal(t, []uint8{3, 2, 1}, g.Pix)
}

// ── Encode ───────────────────────────────────────────────────────────────────

func TestEncodePNG_RoundTripIsLossless(t *testing.T) {
	g := stego.NewPixelGrid(7, 5)
	for i := range g.Pix {
		g.Pix[i] = uint8(i * 31)
	}

	data, err := EncodePNG(g)
	require.NoError(t, err)

	back, format, err := NewDecoder(0).Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, g, back)
}

func TestEncodePNG_IsOpaque(t *testing.T) {
	data, err := EncodePNG(stego.NewPixelGrid(2, 2))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	_, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestEncodePNG_InvalidGrid(t *testing.T) {
	_, err := EncodePNG(stego.PixelGrid{Rows: 2, Cols: 2})

	assert.True(t, errors.Is(err, stego.ErrInvalidGrid))
}

// Hidden messages survive the trip through a PNG file.
func TestStegoThroughPNG(t *testing.T) {
	key, err := crypto.NormalizeKey("afternoon")
	require.NoError(t, err)
	codec := stego.NewCodec(crypto.NewKeyChain())

	carrier, _, err := NewDecoder(0).Decode(pngBytes(t, gradient(16, 16)))
	require.NoError(t, err)

	hidden, err := codec.Embed(carrier, []byte("HELLO"), key)
	require.NoError(t, err)

	data, err := EncodePNG(hidden)
	require.NoError(t, err)

	reread, _, err := NewDecoder(0).Decode(data)
	require.NoError(t, err)

	msg, err := codec.Extract(reread, key)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", msg)
}
