package main

import (
	"os"

	"github.com/df07/weekend-raytracer/cmd"
	"github.com/df07/weekend-raytracer/pkg/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.New(log.ModuleCLI).Errorf("%v", err)
		os.Exit(1)
	}
}
