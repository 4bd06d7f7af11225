package main

import (
	"flag"
	"os"

	"github.com/df07/weekend-raytracer/pkg/log"
	"github.com/df07/weekend-raytracer/web/server"
)

var logger = log.New(log.ModuleWeb)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.Info)
	}

	webServer := server.NewServer(*port)

	logger.Noticef("weekend raytracer web server")
	logger.Noticef("try http://localhost:%d/api/render?scene=cornell-box&width=200&spp=20", *port)

	if err := webServer.Start(); err != nil {
		logger.Errorf("error starting server: %v", err)
		os.Exit(1)
	}
}
