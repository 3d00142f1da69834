package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/hydrogencg/go-raycaster/pkg/core"
)

// Film is the image sink: it stores one linear RGB value per pixel and
// exports the result as PNG or binary PPM. Stored values are raw
// integrator output; clamping and sanitizing happen at export time, so
// non-finite radiance (a legitimate InverseDistance background) is
// tolerated.
type Film struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFilm creates a film of the given dimensions, initialized to black
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the film width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels
func (f *Film) Height() int { return f.height }

// Write stores the color for pixel (x, y); row 0 is the top of the image
func (f *Film) Write(x, y int, c core.Vec3) {
	f.pixels[y*f.width+x] = c
}

// At returns the stored color for pixel (x, y)
func (f *Film) At(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// channelToByte maps a linear channel value to an 8-bit value, clamping
// to [0,1] and mapping NaN to 0
func channelToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(255 * core.Clamp(v, 0, 1))
}

// Image converts the film to an 8-bit RGBA image
func (f *Film) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelToByte(c.X),
				G: channelToByte(c.Y),
				B: channelToByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// EncodePNG writes the film as a PNG image
func (f *Film) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// EncodePPM writes the film as a binary PPM (P6) image
func (f *Film) EncodePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.width, f.height); err != nil {
		return err
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			rgb := []byte{channelToByte(c.X), channelToByte(c.Y), channelToByte(c.Z)}
			if _, err := bw.Write(rgb); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
