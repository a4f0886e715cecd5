package qoi

import (
	"fmt"
	"os"
)

// EncodeFile encodes pixels with Encode and writes the result to path,
// creating or truncating it. It is a thin wrapper: all wire-format logic
// lives in Encode.
func EncodeFile(pixels []byte, width, height int, channels uint8, colorspace Colorspace, path string) error {
	data, err := Encode(pixels, width, height, channels, colorspace)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("qoi: writing %s: %w: %w", path, ErrIoFailure, err)
	}
	return nil
}

// DecodeFile reads path fully into memory and decodes it with Decode.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading %s: %w: %w", path, ErrIoFailure, err)
	}
	return Decode(data)
}
