package qoi

import (
	"image"
	"image/color"
)

// Image is the result of decoding a QOI stream: a materialized pixel
// buffer plus the header metadata that produced it. Pixels holds
// Width*Height*Channels bytes, channel-interleaved, row-major; when
// Channels == 3 no alpha byte is present.
type Image struct {
	Pixels     []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

// nrgbaImage adapts an *Image to the standard library's image.Image
// interface so QOI streams can flow through anything that consumes one.
type nrgbaImage struct {
	img *Image
}

func (n *nrgbaImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (n *nrgbaImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, n.img.Width, n.img.Height)
}

func (n *nrgbaImage) At(x, y int) color.Color {
	idx := y*n.img.Width + x
	p := readPixel(n.img.Pixels, idx, n.img.Channels)
	return color.NRGBA{R: p.r, G: p.g, B: p.b, A: p.a}
}

// AsImage returns img as a standard library image.Image, useful for
// passing decoded QOI data to anything in the image/* ecosystem (PNG
// re-encoding, resizing libraries, and so on).
func (img *Image) AsImage() image.Image {
	return &nrgbaImage{img: img}
}
