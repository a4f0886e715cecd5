package qoi

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/lachlanhurst/goqoi/qoi/internal/invariant"
)

type header struct {
	width      uint32
	height     uint32
	channels   uint8
	colorspace Colorspace
}

// parseHeader reads and validates the 14-byte QOI header. It is shared by
// the core decoder and by DecodeConfig, which only needs the header.
func parseHeader(data []byte) (header, error) {
	var h header
	if len(data) < headerSize {
		return h, ErrTooShort
	}
	if !bytes.Equal(data[:4], []byte(magic)) {
		return h, ErrBadMagic
	}
	h.width = binary.BigEndian.Uint32(data[4:8])
	h.height = binary.BigEndian.Uint32(data[8:12])
	h.channels = data[12]
	h.colorspace = Colorspace(data[13])

	if h.channels != 3 && h.channels != 4 {
		return h, fmt.Errorf("%w: %d", ErrBadChannels, h.channels)
	}
	if !h.colorspace.valid() {
		return h, ErrBadColorspace
	}
	// Multiply in 64-bit width: two uint32s can overflow a 32-bit
	// int on some platforms, and even where int is 64-bit an
	// attacker-declared width*height must be rejected before it drives
	// an allocation.
	if uint64(h.width)*uint64(h.height) > maxPixels {
		return h, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, h.width, h.height)
	}
	return h, nil
}

// cursor is a bounds-checked reader over a decode buffer: every read
// either succeeds or reports ErrUnexpectedEOF, so a malformed stream can
// never cause an out-of-bounds slice access.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, ErrUnexpectedEOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readN(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, ErrUnexpectedEOF
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// Decode parses a complete QOI byte stream into a materialized pixel
// buffer plus header metadata. The decoder is strict: it verifies the
// end marker follows immediately after the last pixel and that no
// trailing data remains.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize+len(endMarker) {
		return nil, ErrTooShort
	}

	h, err := parseHeader(data[:headerSize])
	if err != nil {
		return nil, err
	}

	numPixels := int(h.width) * int(h.height)
	pixels := make([]byte, numPixels*int(h.channels))

	c := &cursor{data: data[headerSize:]}

	var (
		idx    index
		prev   = initialPixel
		outPos int
	)

	for outPos < numPixels {
		tag, err := c.readByte()
		if err != nil {
			return nil, err
		}

		var cur pixel

		switch {
		case tag == opRGB:
			rgb, err := c.readN(3)
			if err != nil {
				return nil, err
			}
			cur = pixel{r: rgb[0], g: rgb[1], b: rgb[2], a: prev.a}
			writePixel(pixels, outPos, h.channels, cur)
			idx.store(cur)
			prev = cur
			outPos++

		case tag == opRGBA:
			rgba, err := c.readN(4)
			if err != nil {
				return nil, err
			}
			cur = pixel{r: rgba[0], g: rgba[1], b: rgba[2], a: rgba[3]}
			writePixel(pixels, outPos, h.channels, cur)
			idx.store(cur)
			prev = cur
			outPos++

		case tag&opTagMask == opIndex:
			cur = idx.at(tag & op6Mask)
			writePixel(pixels, outPos, h.channels, cur)
			prev = cur
			outPos++

		case tag&opTagMask == opDiff:
			dr := int((tag>>4)&0b11) - 2
			dg := int((tag>>2)&0b11) - 2
			db := int((tag>>0)&0b11) - 2
			cur = pixel{
				r: byte(int(prev.r) + dr),
				g: byte(int(prev.g) + dg),
				b: byte(int(prev.b) + db),
				a: prev.a,
			}
			writePixel(pixels, outPos, h.channels, cur)
			idx.store(cur)
			prev = cur
			outPos++

		case tag&opTagMask == opLuma:
			b2, err := c.readByte()
			if err != nil {
				return nil, err
			}
			dg := int(tag&op6Mask) - 32
			dr := int((b2>>4)&0b1111) - 8 + dg
			db := int((b2>>0)&0b1111) - 8 + dg
			cur = pixel{
				r: byte(int(prev.r) + dr),
				g: byte(int(prev.g) + dg),
				b: byte(int(prev.b) + db),
				a: prev.a,
			}
			writePixel(pixels, outPos, h.channels, cur)
			idx.store(cur)
			prev = cur
			outPos++

		default: // tag&opTagMask == opRun
			payload := tag & op6Mask
			if payload == 0b111110 || payload == 0b111111 {
				// Unreachable given the tag dispatch above (those bytes
				// are caught by the RGB/RGBA cases first), kept as a
				// defensive check against a malformed or hostile stream.
				return nil, ErrIllegalRun
			}
			count := int(payload) + 1
			if outPos+count > numPixels {
				return nil, ErrPixelCountMismatch
			}
			for i := 0; i < count; i++ {
				writePixel(pixels, outPos, h.channels, prev)
				outPos++
			}
			idx.store(prev)
		}
	}

	invariant.Check(idx.lookup(prev), "index[h(prev)] != prev after final chunk")

	end, err := c.readN(len(endMarker))
	if err != nil {
		return nil, ErrUnexpectedEOF
	}
	if !bytes.Equal(end, endMarker[:]) {
		return nil, ErrUnexpectedEOF
	}
	if c.remaining() != 0 {
		return nil, ErrTrailingData
	}

	return &Image{
		Pixels:     pixels,
		Width:      int(h.width),
		Height:     int(h.height),
		Channels:   h.channels,
		Colorspace: h.colorspace,
	}, nil
}
