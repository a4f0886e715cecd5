package qoi

import (
	"encoding/binary"
	"fmt"

	"github.com/lachlanhurst/goqoi/qoi/internal/invariant"
)

// Encode converts a raw pixel buffer into a QOI byte stream. pixels must
// contain exactly width*height*channels bytes, channel-interleaved,
// row-major, top-to-bottom, left-to-right. channels must be 3 or 4;
// colorspace is carried verbatim and never affects encoding.
func Encode(pixels []byte, width, height int, channels uint8, colorspace Colorspace) ([]byte, error) {
	if err := validateEncodeArgs(pixels, width, height, channels, colorspace); err != nil {
		return nil, err
	}

	numPixels := width * height

	// Worst case: every pixel emits an RGBA chunk (5 bytes).
	out := make([]byte, 0, headerSize+numPixels*5+len(endMarker))
	out = appendHeader(out, width, height, channels, colorspace)

	var (
		idx     index
		prev    = initialPixel
		runOpen bool
		runLen  int
	)

	for i := 0; i < numPixels; i++ {
		cur := readPixel(pixels, i, channels)

		switch {
		case cur.equal(prev):
			switch {
			case !runOpen:
				out = append(out, opRun)
				runOpen = true
				runLen = 1
			case runLen == maxRun:
				out = append(out, opRun)
				runLen = 1
			default:
				runLen++
				out[len(out)-1] = opRun | byte(runLen-1)
			}

		default:
			runOpen = false

			switch {
			case idx.lookup(cur):
				out = append(out, opIndex|hash(cur))

			case cur.a == prev.a && smallDiff(cur, prev):
				dr := int(cur.r) - int(prev.r)
				dg := int(cur.g) - int(prev.g)
				db := int(cur.b) - int(prev.b)
				out = append(out, opDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))

			case cur.a == prev.a && lumaDiff(cur, prev):
				dg := int(cur.g) - int(prev.g)
				drg := int(cur.r) - int(prev.r) - dg
				dbg := int(cur.b) - int(prev.b) - dg
				out = append(out, opLuma|byte(dg+32), byte(drg+8)<<4|byte(dbg+8))

			case cur.a == prev.a:
				out = append(out, opRGB, cur.r, cur.g, cur.b)

			default:
				out = append(out, opRGBA, cur.r, cur.g, cur.b, cur.a)
			}
		}

		idx.store(cur)
		prev = cur
		invariant.Check(idx.lookup(cur), "index[h(p)] != p at pixel %d", i)
	}

	out = append(out, endMarker[:]...)
	return out, nil
}

// smallDiff reports whether cur can be reached from prev with a
// QOI_OP_DIFF chunk: each of dr, dg, db lies in [-2, 1].
func smallDiff(cur, prev pixel) bool {
	dr := int(cur.r) - int(prev.r)
	dg := int(cur.g) - int(prev.g)
	db := int(cur.b) - int(prev.b)
	return inRange(dr, -2, 1) && inRange(dg, -2, 1) && inRange(db, -2, 1)
}

// lumaDiff reports whether cur can be reached from prev with a
// QOI_OP_LUMA chunk: dg lies in [-32, 31] and (dr-dg), (db-dg) lie in
// [-8, 7].
func lumaDiff(cur, prev pixel) bool {
	dg := int(cur.g) - int(prev.g)
	if !inRange(dg, -32, 31) {
		return false
	}
	dr := int(cur.r) - int(prev.r)
	db := int(cur.b) - int(prev.b)
	return inRange(dr-dg, -8, 7) && inRange(db-dg, -8, 7)
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func validateEncodeArgs(pixels []byte, width, height int, channels uint8, colorspace Colorspace) error {
	if channels != 3 && channels != 4 {
		return fmt.Errorf("%w: channels must be 3 or 4, got %d", ErrBadArguments, channels)
	}
	if !colorspace.valid() {
		return fmt.Errorf("%w: colorspace must be 0 or 1, got %d", ErrBadArguments, colorspace)
	}
	if width < 0 || height < 0 || width*height > maxPixels {
		return fmt.Errorf("%w: invalid image dimensions %dx%d", ErrBadArguments, width, height)
	}
	want := width * height * int(channels)
	if len(pixels) != want {
		return fmt.Errorf("%w: pixel buffer length %d, want %d", ErrBadArguments, len(pixels), want)
	}
	return nil
}

func appendHeader(out []byte, width, height int, channels uint8, colorspace Colorspace) []byte {
	out = append(out, magic...)
	var wh [8]byte
	binary.BigEndian.PutUint32(wh[0:4], uint32(width))
	binary.BigEndian.PutUint32(wh[4:8], uint32(height))
	out = append(out, wh[:]...)
	out = append(out, channels, byte(colorspace))
	return out
}
