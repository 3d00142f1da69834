package renderer

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

func TestFilm_WriteAt(t *testing.T) {
	film := NewFilm(4, 3)

	if film.Width() != 4 || film.Height() != 3 {
		t.Fatalf("Expected 4x3 film, got %dx%d", film.Width(), film.Height())
	}

	c := core.NewVec3(0.25, 0.5, 0.75)
	film.Write(2, 1, c)

	if got := film.At(2, 1); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if got := film.At(0, 0); got.Length() != 0 {
		t.Errorf("Expected untouched pixel to be black, got %v", got)
	}
}

func TestFilm_Image_SanitizesNonFinite(t *testing.T) {
	// Non-finite radiance is accepted integrator output; export clamps
	// +Inf to full brightness and maps NaN to black.
	film := NewFilm(2, 1)
	film.Write(0, 0, core.NewVec3(math.Inf(1), -1, 2))
	film.Write(1, 0, core.NewVec3(math.NaN(), 0.5, 0))

	img := film.Image()

	first := img.RGBAAt(0, 0)
	if first.R != 255 || first.G != 0 || first.B != 255 {
		t.Errorf("Expected (255, 0, 255), got (%d, %d, %d)", first.R, first.G, first.B)
	}

	second := img.RGBAAt(1, 0)
	if second.R != 0 {
		t.Errorf("Expected NaN channel to map to 0, got %d", second.R)
	}
}

func TestFilm_EncodePPM(t *testing.T) {
	film := NewFilm(2, 2)
	film.Write(0, 0, core.NewVec3(1, 0, 0))
	film.Write(1, 1, core.NewVec3(0, 1, 0))

	var buf bytes.Buffer
	if err := film.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM returned error: %v", err)
	}

	expectedHeader := "P6\n2 2\n255\n"
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte(expectedHeader)) {
		t.Fatalf("Expected header %q, got %q", expectedHeader, data[:min(len(data), len(expectedHeader))])
	}

	pixels := data[len(expectedHeader):]
	if len(pixels) != 2*2*3 {
		t.Fatalf("Expected 12 pixel bytes, got %d", len(pixels))
	}

	// Row-major from the top: (0,0) is red, (1,1) is green
	if pixels[0] != 255 || pixels[1] != 0 {
		t.Errorf("Expected red first pixel, got % d", pixels[0:3])
	}
	if pixels[9] != 0 || pixels[10] != 255 {
		t.Errorf("Expected green last pixel, got % d", pixels[9:12])
	}
}

func TestFilm_EncodePNG(t *testing.T) {
	film := NewFilm(3, 2)
	film.Write(1, 0, core.NewVec3(1, 1, 1))

	var buf bytes.Buffer
	if err := film.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG returned error: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding the PNG failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Errorf("Expected 3x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
