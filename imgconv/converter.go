// Package imgconv converts arbitrary image.Image values into the
// concrete pixel representation the QOI codec needs: non-premultiplied
// RGBA, one byte per channel.
package imgconv

import (
	"image"
	"image/color"
)

// ToNRGBA converts m into an *image.NRGBA, which is the pixel layout
// EncodeImage feeds to the QOI encoder. If m is already an *image.NRGBA
// it is returned unchanged; otherwise every pixel is converted through
// color.NRGBAModel, which may be lossy for color models QOI has no
// concept of (CMYK, premultiplied alpha, and so on).
func ToNRGBA(m image.Image) *image.NRGBA {
	if nrgba, ok := m.(*image.NRGBA); ok {
		return nrgba
	}

	bounds := m.Bounds()
	dst := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, color.NRGBAModel.Convert(m.At(x, y)))
		}
	}

	return dst
}
