package cmd

import (
	"github.com/urfave/cli"
)

// NewApp returns the command line application with every command registered
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render the example scenes of the ray tracing weekend books"
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
		cli.StringSliceFlag{
			Name:  "log",
			Usage: "set one module's log level, e.g. --log renderer=debug (modules: raytracer, renderer, server)",
		},
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "cornell-box",
			Usage: "scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "image width in pixels (0 keeps the scene default)",
		},
		cli.IntFlag{
			Name:  "spp",
			Usage: "samples per pixel (0 keeps the scene default)",
		},
		cli.IntFlag{
			Name:  "depth",
			Usage: "maximum ray bounces (0 keeps the scene default)",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of render workers (0 uses one per CPU)",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "seed for the scene layout and the pixel samplers",
		},
		cli.StringFlag{
			Name:  "background",
			Usage: "solid background as a hex color such as #000000, or sky for the gradient (default: the scene background)",
		},
		cli.BoolFlag{
			Name:  "pinhole",
			Usage: "disable the scene's depth of field",
		},
		cli.BoolFlag{
			Name:  "no-motion-blur",
			Usage: "close the shutter instantly so moving objects are sharp",
		},
		cli.StringFlag{
			Name:  "image",
			Usage: "texture map for the earth scenes",
		},
		cli.StringFlag{
			Name:  "gltf",
			Usage: "glTF or GLB mesh for the gltf scene",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Build the selected scene, render it with the recursive path tracer and write
the result to a PNG, JPEG, TIFF or BMP file chosen by the output extension.`,
			Flags: append(sceneFlags,
				cli.IntFlag{
					Name:  "rr",
					Usage: "bounces before Russian roulette may end a path (0 disables it)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			),
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the available scenes",
			Action: ListScenes,
		},
		{
			Name:   "bench",
			Usage:  "compare render times with and without the BVH",
			Flags:  sceneFlags,
			Action: BenchScene,
		},
		{
			Name:  "serve",
			Usage: "serve the HTTP render API",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: Serve,
		},
	}

	return app
}
