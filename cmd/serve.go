package cmd

import (
	"github.com/df07/weekend-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve runs the HTTP render API until it fails.
func Serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	return server.NewServer(ctx.Int("port")).Start()
}
