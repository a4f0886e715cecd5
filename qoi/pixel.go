package qoi

// pixel is an (R, G, B, A) tuple. The wire format never transmits a
// packed representation; a struct of four bytes is used throughout this
// package instead of the packed-uint32 convention some QOI
// implementations use internally.
type pixel struct {
	r, g, b, a byte
}

var initialPixel = pixel{0, 0, 0, 255}

// hash computes the index-table slot for p. Arithmetic is carried out in
// at least 32-bit width to match the reference formula exactly.
func hash(p pixel) uint8 {
	return uint8((uint32(p.r)*3 + uint32(p.g)*5 + uint32(p.b)*7 + uint32(p.a)*11) % indexSize)
}

func (p pixel) equal(o pixel) bool {
	return p.r == o.r && p.g == o.g && p.b == o.b && p.a == o.a
}

// readPixel extracts the pixel at position idx from a channels-per-pixel
// buffer. When channels == 3 alpha is synthesized as opaque, matching the
// QOI specification's decode-to-memory and chunk-selection rules.
func readPixel(buf []byte, idx int, channels uint8) pixel {
	off := idx * int(channels)
	p := pixel{r: buf[off], g: buf[off+1], b: buf[off+2], a: 255}
	if channels == 4 {
		p.a = buf[off+3]
	}
	return p
}

// writePixel stores p into a channels-per-pixel buffer at position idx.
// When channels == 3 the alpha channel is dropped.
func writePixel(buf []byte, idx int, channels uint8, p pixel) {
	off := idx * int(channels)
	buf[off] = p.r
	buf[off+1] = p.g
	buf[off+2] = p.b
	if channels == 4 {
		buf[off+3] = p.a
	}
}
