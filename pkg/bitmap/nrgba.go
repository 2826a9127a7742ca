package bitmap

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrPackedLength = errors.New("packed pixels length is not a multiple of 4")

// Flip returns a copy of pixels with the row order reversed, for sources
// that hand out the bottom row first (GL readbacks, BMP).
func Flip(pixels []color.NRGBA, width, height int) []color.NRGBA {
	if width*height != len(pixels) {
		return append([]color.NRGBA(nil), pixels...)
	}

	dst := make([]color.NRGBA, 0, len(pixels))
	for y := height - 1; y >= 0; y-- {
		dst = append(dst, pixels[y*width:(y+1)*width]...)
	}
	return dst
}

// Unpack reads packed R,G,B,A bytes.
func Unpack(pix []byte) ([]color.NRGBA, error) {
	if len(pix)%4 != 0 {
		return nil, errors.Wrapf(ErrPackedLength, "got %d bytes", len(pix))
	}

	return lo.Map(lo.Chunk(pix, 4), func(p []byte, _ int) color.NRGBA {
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}), nil
}

// Pack is the inverse of Unpack.
func Pack(pixels []color.NRGBA) []byte {
	pix := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		pix = append(pix, p.R, p.G, p.B, p.A)
	}
	return pix
}
