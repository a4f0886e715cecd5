package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/lachlanhurst/goqoi/imgconv"
)

// EncodeImage writes m to w in QOI format, always as 4-channel sRGB.
// Any image.Image may be passed; images that are not already
// image.NRGBA are converted first (see imgconv.ToNRGBA), which may be
// lossy for exotic color models.
func EncodeImage(w io.Writer, m image.Image) error {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := imgconv.ToNRGBA(m)
	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			off := (y*width + x) * 4
			pixels[off] = c.R
			pixels[off+1] = c.G
			pixels[off+2] = c.B
			pixels[off+3] = c.A
		}
	}

	data, err := Encode(pixels, width, height, 4, SRGB)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("qoi: writing stream: %w: %w", ErrIoFailure, err)
	}
	return nil
}

// DecodeImage reads a complete QOI stream from r and returns it as a
// standard library image.Image.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading stream: %w: %w", ErrIoFailure, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return img.AsImage(), nil
}

// DecodeConfig reads only the QOI header from r, without decoding pixel
// data, matching the image.RegisterFormat convention used by every
// codec in the standard library.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return image.Config{}, ErrTooShort
		}
		return image.Config{}, fmt.Errorf("qoi: reading stream: %w: %w", ErrIoFailure, err)
	}
	h, err := parseHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.width),
		Height:     int(h.height),
	}, nil
}
