package qoi

import (
	"bytes"
	"math/rand"
	"os"
	"testing"

	"github.com/lachlanhurst/goqoi/qoi/internal/invariant"
)

func TestMain(m *testing.M) {
	invariant.Enabled = true
	os.Exit(m.Run())
}

func randomPixels(rng *rand.Rand, width, height int, channels uint8) []byte {
	buf := make([]byte, width*height*int(channels))
	rng.Read(buf)
	return buf
}

func TestRoundTripIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	sizes := [][2]int{{1, 1}, {2, 3}, {7, 5}, {16, 16}, {33, 1}, {1, 40}}
	for _, size := range sizes {
		for _, channels := range []uint8{3, 4} {
			for _, cs := range []Colorspace{SRGB, Linear} {
				w, h := size[0], size[1]
				pixels := randomPixels(rng, w, h, channels)

				encoded, err := Encode(pixels, w, h, channels, cs)
				if err != nil {
					t.Fatalf("Encode(%dx%d, c=%d) error = %v", w, h, channels, err)
				}

				img, err := Decode(encoded)
				if err != nil {
					t.Fatalf("Decode(%dx%d, c=%d) error = %v", w, h, channels, err)
				}

				if img.Width != w || img.Height != h || img.Channels != channels || img.Colorspace != cs {
					t.Fatalf("Decode() metadata = %+v, want w=%d h=%d c=%d cs=%d", img, w, h, channels, cs)
				}
				if !bytes.Equal(img.Pixels, pixels) {
					t.Fatalf("Decode(Encode(p)) != p for %dx%d channels=%d", w, h, channels)
				}
			}
		}
	}
}

func TestRoundTripLowEntropyImages(t *testing.T) {
	// Low-entropy, highly repetitive images exercise runs, index hits,
	// and small diffs far more than uniform random noise does.
	rng := rand.New(rand.NewSource(2))
	w, h := 20, 20
	palette := []pixel{
		{0, 0, 0, 255},
		{0, 0, 0, 255},
		{10, 10, 10, 255},
		{255, 255, 255, 255},
		{1, 0, 0, 255},
	}

	pixels := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		p := palette[rng.Intn(len(palette))]
		writePixel(pixels, i, 4, p)
	}

	encoded, err := Encode(pixels, w, h, 4, SRGB)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(img.Pixels, pixels) {
		t.Fatal("Decode(Encode(p)) != p for low-entropy image")
	}
}

func TestRunCapNeverExceeded(t *testing.T) {
	pixels := make([]byte, 500*4)
	for i := range pixels {
		if i%4 == 3 {
			pixels[i] = 255
		}
	}

	encoded, err := Encode(pixels, 500, 1, 4, SRGB)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	body := encoded[headerSize : len(encoded)-len(endMarker)]
	// Every pixel equals the initial prev, so the body must consist of run
	// chunks only; a 0xFE/0xFF byte here would be an over-long run.
	for _, b := range body {
		if b&opTagMask != opRun || b > 0xFD {
			t.Fatalf("byte %#x is not a run chunk with encoded payload <= 61", b)
		}
	}
}

func TestIdempotentReencode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pixels := randomPixels(rng, 12, 9, 4)

	encoded, err := Encode(pixels, 12, 9, 4, SRGB)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	reencoded, err := Encode(img.Pixels, img.Width, img.Height, img.Channels, img.Colorspace)
	if err != nil {
		t.Fatalf("re-Encode() error = %v", err)
	}

	if !bytes.Equal(encoded, reencoded) {
		t.Fatal("encode(decode(stream)) != stream")
	}
}

func TestHashConsistencyAfterDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pixels := randomPixels(rng, 8, 8, 4)

	encoded, err := Encode(pixels, 8, 8, 4, SRGB)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var idx index
	for i := 0; i < img.Width*img.Height; i++ {
		p := readPixel(img.Pixels, i, img.Channels)
		idx.store(p)
		if !idx.lookup(p) {
			t.Fatalf("index[h(p)] != p after storing pixel %d", i)
		}
	}
}
