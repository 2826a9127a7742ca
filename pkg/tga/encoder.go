// Package tga writes uncompressed 32-bit true-color TGA images.
//
// Pixels are accepted in the common straight-alpha RGBA order (color.NRGBA),
// row-major from the top-left corner, and stored as BGRA with the top-left
// origin flag set, so no row reversal happens. Nothing but the 18 byte header
// and the pixel payload is written: no image ID, no color map, no footer.
package tga

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"tgadump/pkg/bitmap"
)

const (
	MaxDimension  = 0xFFFF
	BytesPerPixel = 4
)

// Size returns the encoded length of a width x height image.
func Size(width, height int) int64 {
	return HeaderSize + BytesPerPixel*int64(width)*int64(height)
}

// Validate checks the dimensions and pixel count without writing anything.
func Validate(width, height, count int) error {
	if width < 0 || width > MaxDimension {
		return errors.Wrapf(ErrDimensionTooLarge, "width %d", width)
	}
	if height < 0 || height > MaxDimension {
		return errors.Wrapf(ErrDimensionTooLarge, "height %d", height)
	}
	if need := int64(width) * int64(height); int64(count) != need {
		return errors.Wrapf(ErrPixelCountMismatch, "%dx%d needs %d pixels, got %d", width, height, need, count)
	}
	return nil
}

// Encode writes pixels as a TGA image to w and returns the number of bytes written.
// Validation happens before the first write; a failing w yields a *WriteError.
func Encode(w io.Writer, width, height int, pixels []color.NRGBA) (int64, error) {
	if err := Validate(width, height, len(pixels)); err != nil {
		return 0, err
	}

	sw := &sinkWriter{w: w}
	sw.write(newHeader(uint16(width), uint16(height)).bytes())

	if width > 0 {
		row := make([]byte, width*BytesPerPixel)
		for y := 0; y < height && sw.err == nil; y++ {
			off := 0
			for _, p := range pixels[y*width : (y+1)*width] {
				row[off+0] = p.B
				row[off+1] = p.G
				row[off+2] = p.R
				row[off+3] = p.A
				off += BytesPerPixel
			}
			sw.write(row)
		}
	}

	if sw.err != nil {
		return sw.n, &WriteError{Written: sw.n, Err: sw.err}
	}
	return sw.n, nil
}

// EncodeImage writes any image.Image, its bounds moved to the origin.
func EncodeImage(w io.Writer, img image.Image) (int64, error) {
	b := img.Bounds()
	return Encode(w, b.Dx(), b.Dy(), bitmap.Pixels(img))
}

// Marshal encodes into a new byte slice.
func Marshal(width, height int, pixels []color.NRGBA) ([]byte, error) {
	if err := Validate(width, height, len(pixels)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(int(Size(width, height)))
	if _, err := Encode(&buf, width, height, pixels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sinkWriter latches the first error of w.
type sinkWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sinkWriter) write(p []byte) {
	if s.err != nil {
		return
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	s.err = err
}
