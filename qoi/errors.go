package qoi

import "errors"

// Sentinel errors form the codec's closed error taxonomy. Callers can
// test for a specific kind with errors.Is; wrapped context (offsets,
// values) is added with fmt.Errorf("...: %w", ...).
var (
	// ErrTooShort is returned when a decode buffer is shorter than the
	// minimum possible stream (header + end marker).
	ErrTooShort = errors.New("qoi: buffer too short")

	// ErrBadMagic is returned when the header does not start with "qoif".
	ErrBadMagic = errors.New("qoi: bad magic")

	// ErrBadColorspace is returned when the colorspace byte is > 1.
	ErrBadColorspace = errors.New("qoi: bad colorspace")

	// ErrBadChannels is returned when the header's channel byte is
	// neither 3 nor 4: a channel count outside {3,4} would otherwise
	// misalign every subsequent pixel offset.
	ErrBadChannels = errors.New("qoi: bad channel count")

	// ErrImageTooLarge is returned when the header's width*height exceeds
	// maxPixels, before any pixel buffer is allocated.
	ErrImageTooLarge = errors.New("qoi: image dimensions too large")

	// ErrUnexpectedEOF is returned when a chunk's payload runs past the
	// end of the buffer.
	ErrUnexpectedEOF = errors.New("qoi: unexpected end of buffer")

	// ErrIllegalRun is returned when a RUN chunk's payload is 62 or 63,
	// which would collide with the RGB/RGBA tags.
	ErrIllegalRun = errors.New("qoi: illegal run length")

	// ErrPixelCountMismatch is returned in strict mode when the number of
	// pixels decoded does not equal width*height.
	ErrPixelCountMismatch = errors.New("qoi: pixel count mismatch")

	// ErrTrailingData is returned in strict mode when bytes remain after
	// the end marker.
	ErrTrailingData = errors.New("qoi: trailing data after end marker")

	// ErrBadArguments is returned by the encoder for invalid inputs:
	// channels not in {3,4}, colorspace > 1, or a pixel buffer whose
	// length doesn't match width*height*channels.
	ErrBadArguments = errors.New("qoi: bad arguments")

	// ErrIoFailure is returned by the file and stream wrappers when the
	// underlying read or write fails.
	ErrIoFailure = errors.New("qoi: i/o failure")
)
