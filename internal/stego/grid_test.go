package stego

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixelGrid(t *testing.T) {
	g := NewPixelGrid(16, 16)

	assert.Equal(t, 16, g.Rows)
	assert.Equal(t, 16, g.Cols)
	assert.Len(t, g.Pix, 768)
	assert.Equal(t, 768, g.Capacity())
	assert.NoError(t, g.Validate())
}

func TestPixelGrid_AtSet(t *testing.T) {
	g := NewPixelGrid(2, 3)
	g.Set(1, 2, 1, 200)

	assert.Equal(t, uint8(200), g.At(1, 2, 1))
	assert.Equal(t, uint8(200), g.Pix[(1*3+2)*3+1])
}

func TestPixelGrid_CloneIsIndependent(t *testing.T) {
	g := NewPixelGrid(2, 2)
	c := g.Clone()
	c.Pix[0] = 9

	assert.Equal(t, uint8(0), g.Pix[0])
	assert.Equal(t, g.Rows, c.Rows)
	assert.Equal(t, g.Cols, c.Cols)
}

func TestPixelGrid_Validate(t *testing.T) {
	tests := []struct {
		name    string
		grid    PixelGrid
		wantErr bool
	}{
		{"consistent", NewPixelGrid(4, 4), false},
		{"empty", PixelGrid{}, false},
		{"short buffer", PixelGrid{Rows: 2, Cols: 2, Pix: make([]uint8, 11)}, true},
		{"long buffer", PixelGrid{Rows: 2, Cols: 2, Pix: make([]uint8, 13)}, true},
		{"negative rows", PixelGrid{Rows: -1, Cols: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGrid))
				return
			}
			assert.NoError(t, err)
		})
	}
}
