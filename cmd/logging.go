package cmd

import (
	"github.com/df07/weekend-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New(log.ModuleCLI)

// setupLogging applies -v/-vv and then any per-module --log overrides
func setupLogging(ctx *cli.Context) error {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	default:
		log.SetLevel(log.Notice)
	}

	for _, pair := range ctx.GlobalStringSlice("log") {
		module, level, err := log.ParseModuleLevel(pair)
		if err != nil {
			return err
		}
		log.SetLevel(level, module)
	}
	return nil
}
