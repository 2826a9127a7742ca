package bitmap

import (
	"image"
	"image/color"
)

// Pixels returns the straight-alpha pixels of src in row-major order,
// top-to-bottom and left-to-right.
func Pixels(src image.Image) []color.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := make([]color.NRGBA, 0, w*h)

	if m, ok := src.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			for x := 0; x < w; x++ {
				p := m.Pix[i : i+4 : i+4]
				dst = append(dst, color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
				i += 4
			}
		}
		return dst
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst = append(dst, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}

	return dst
}
