// Package qoi implements the Quite OK Image format: a lossless codec that
// converts a raster pixel buffer into a compact, tagged byte stream and
// back. The wire format is fixed by the QOI v1.0 specification; this
// package aims for byte-exact interoperability with any conforming
// encoder or decoder.
package qoi

import "image"

const (
	// magic is the 4-byte signature every QOI stream starts with.
	magic = "qoif"

	headerSize = 14

	// maxPixels guards against pathological width*height products; 400
	// million pixels ought to be enough for anybody.
	maxPixels = 400_000_000

	indexSize = 64
	maxRun    = 62
)

// endMarker terminates every QOI stream.
var endMarker = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Chunk tags. RGB and RGBA occupy the two 8-bit values that would
// otherwise collide with the top two bits of RUN; a decoder must test
// for them before falling through to the 2-bit dispatch.
const (
	opIndex uint8 = 0b00_000000
	opDiff  uint8 = 0b01_000000
	opLuma  uint8 = 0b10_000000
	opRun   uint8 = 0b11_000000
	opRGB   uint8 = 0b1111_1110
	opRGBA  uint8 = 0b1111_1111

	opTagMask uint8 = 0b11_000000
	op6Mask   uint8 = 0b0011_1111
)

// Colorspace is the QOI header's colorspace byte, carried verbatim
// through the codec: it never affects chunk selection or pixel
// reconstruction.
type Colorspace uint8

const (
	// SRGB is sRGB with linear alpha.
	SRGB Colorspace = 0
	// Linear is all-channels-linear.
	Linear Colorspace = 1
)

func (cs Colorspace) String() string {
	switch cs {
	case SRGB:
		return "sRGB"
	case Linear:
		return "linear"
	default:
		return "invalid"
	}
}

func (cs Colorspace) valid() bool {
	return cs == SRGB || cs == Linear
}

func init() {
	image.RegisterFormat("qoi", magic, DecodeImage, DecodeConfig)
}
