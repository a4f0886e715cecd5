// Command qoi is the reference driver for the codec: it converts a
// PNG/JPEG image to QOI, and reports the metadata of an existing QOI
// file. It does not render images; the viewer described in the
// original tool is a separate, out-of-scope collaborator.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/lachlanhurst/goqoi/qoi"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("qoi", flag.ContinueOnError)
	encodeInput := fs.String("e", "", "encode `input` (PNG/JPEG) to QOI")
	output := fs.String("o", "", "output file `path`")
	viewInput := fs.String("v", "", "print metadata for QOI `input` (no rendering; see package doc)")
	verbose := fs.Bool("verbose", false, "log metadata to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: verboseLevel(*verbose),
	}))

	switch {
	case *viewInput != "":
		return runView(logger, *viewInput)
	case *encodeInput != "":
		return runEncode(logger, *encodeInput, *output)
	default:
		fmt.Fprintln(os.Stderr, "usage: qoi -e <input> -o <output> | -v <input> [--verbose]")
		return 1
	}
}

func verboseLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func runEncode(logger *slog.Logger, input, output string) int {
	if output == "" {
		fmt.Fprintln(os.Stderr, "no output file specified")
		return 1
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot read input image file:", err)
		return 1
	}

	if bytes.HasPrefix(raw, []byte("qoif")) {
		fmt.Fprintln(os.Stderr, "input image file is already in QOI format")
		return 1
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot decode input image file:", err)
		return 1
	}
	logger.Info("decoded source image", "format", format, "bounds", src.Bounds())

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot create output file:", err)
		return 1
	}
	defer f.Close()

	if err := qoi.EncodeImage(f, src); err != nil {
		fmt.Fprintln(os.Stderr, "cannot encode image:", err)
		return 1
	}

	logger.Info("wrote QOI file", "path", output)
	return 0
}

func runView(logger *slog.Logger, input string) int {
	img, err := qoi.DecodeFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot decode QOI file:", err)
		return 1
	}

	logger.Info("qoi metadata",
		"path", input,
		"width", img.Width,
		"height", img.Height,
		"channels", img.Channels,
		"colorspace", img.Colorspace,
	)
	fmt.Printf("%s: %dx%d, %d channels, %s\n", input, img.Width, img.Height, img.Channels, img.Colorspace)
	fmt.Println("(rendering is out of scope for this driver; use the image viewer collaborator)")
	return 0
}
