package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hydrogencg/go-raycaster/pkg/integrator"
	"github.com/hydrogencg/go-raycaster/pkg/renderer"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a single frame to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width <= 0 || height <= 0 {
		err := fmt.Errorf("invalid frame dimensions %dx%d", width, height)
		logger.Error(err)
		return err
	}

	integ, err := integrator.ByName(ctx.String("integrator"))
	if err != nil {
		logger.Error(err)
		return err
	}

	sc, err := scene.ByName(ctx.String("scene"))
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("rendering %q scene with %q integrator at %dx%d",
		ctx.String("scene"), ctx.String("integrator"), width, height)

	r := renderer.NewRenderer(sc, integ, renderer.NewCamera(), width, height)
	film, stats := r.Render()

	out := ctx.String("out")
	if err = writeFilm(film, out); err != nil {
		logger.Error(err)
		return err
	}

	renderReport(stats, out)
	return nil
}

// writeFilm encodes the film to the named file, picking the encoder
// from the file extension (.ppm for binary PPM, anything else is PNG).
func writeFilm(film *renderer.Film, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".ppm":
		err = film.EncodePPM(f)
	default:
		err = film.EncodePNG(f)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %v", path, err)
	}

	return nil
}

func renderReport(stats renderer.Stats, out string) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Frame", "Primary rays", "Render time", "Output"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Rays),
		fmt.Sprintf("%s", stats.RenderTime),
		out,
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
