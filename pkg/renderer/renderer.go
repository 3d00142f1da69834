package renderer

import (
	"time"

	"github.com/hydrogencg/go-raycaster/pkg/core"
	"github.com/hydrogencg/go-raycaster/pkg/integrator"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
)

// Renderer drives the pixel loop: for each pixel it asks the camera for
// a ray and the integrator for the radiance along it. Rendering is
// single threaded and single pass; the scene is read-only throughout.
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	width      int
	height     int
}

// Stats reports what a render pass did
type Stats struct {
	Width      int
	Height     int
	Rays       int
	RenderTime time.Duration
}

// NewRenderer creates a renderer for the given scene and integrator
func NewRenderer(s *scene.Scene, integ integrator.Integrator, camera *Camera, width, height int) *Renderer {
	return &Renderer{
		scene:      s,
		integrator: integ,
		camera:     camera,
		width:      width,
		height:     height,
	}
}

// Render evaluates every pixel once and returns the film.
//
// Pixel (x, y) maps to normalized coordinates through the pixel center:
// u = aspect·(2·(x+0.5)/w − 1) and v = −2·(y+0.5)/h + 1, so u spans
// [-aspect, aspect], v spans [-1, 1], and image row 0 is the top.
func (r *Renderer) Render() (*Film, Stats) {
	film := NewFilm(r.width, r.height)
	aspectRatio := float64(r.width) / float64(r.height)

	start := time.Now()
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			uv := core.NewVec2(
				aspectRatio*(2.0*(float64(x)+0.5)/float64(r.width)-1.0),
				-2.0*(float64(y)+0.5)/float64(r.height)+1.0,
			)

			ray := r.camera.GetRay(uv)
			film.Write(x, y, r.integrator.Radiance(r.scene, ray))
		}
	}

	stats := Stats{
		Width:      r.width,
		Height:     r.height,
		Rays:       r.width * r.height,
		RenderTime: time.Since(start),
	}
	return film, stats
}
