package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelsRowMajor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(y*3 + x), A: 255})
		}
	}

	got := Pixels(src)
	require.Len(t, got, 6)
	for i, p := range got {
		assert.Equal(t, uint8(i), p.R)
	}
}

func TestPixelsGeneric(t *testing.T) {
	src := image.NewGray(image.Rect(10, 10, 12, 11))
	src.SetGray(10, 10, color.Gray{Y: 7})
	src.SetGray(11, 10, color.Gray{Y: 9})

	assert.Equal(t, []color.NRGBA{
		{R: 7, G: 7, B: 7, A: 255},
		{R: 9, G: 9, B: 9, A: 255},
	}, Pixels(src))
}

func TestPixelsEmpty(t *testing.T) {
	assert.Empty(t, Pixels(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}

func TestFlip(t *testing.T) {
	pixels := []color.NRGBA{{R: 1}, {R: 2}, {R: 3}, {R: 4}, {R: 5}, {R: 6}}

	assert.Equal(t, []color.NRGBA{{R: 5}, {R: 6}, {R: 3}, {R: 4}, {R: 1}, {R: 2}}, Flip(pixels, 2, 3))
	assert.Equal(t, color.NRGBA{R: 1}, pixels[0], "source untouched")
}

func TestPackUnpack(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	pixels, err := Unpack(pix)
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}, pixels)
	assert.Equal(t, pix, Pack(pixels))

	_, err = Unpack([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrPackedLength)
}
