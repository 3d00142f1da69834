package main

import (
	"os"

	"github.com/hydrogencg/go-raycaster/cmd"
	"github.com/hydrogencg/go-raycaster/log"
	"github.com/urfave/cli"
)

func main() {
	log.SetSink(os.Stderr)

	app := cli.NewApp()
	app.Name = "go-raycaster"
	app.Usage = "render scenes of spheres and lights with a minimal offline ray caster"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one of the built-in scenes with the selected integrator and write
the frame to an image file. The encoder is picked from the output file
extension: .ppm produces binary PPM, anything else produces PNG.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Value: "diffuse-direct",
					Usage: "integrator to render with (see list-integrators)",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cone",
					Usage: "scene to render (see list-scenes)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-integrators",
			Usage:  "list available integrators",
			Action: cmd.ListIntegrators,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
