package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
)

// Request limits
const (
	minWidth   = 8
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 1000
)

var renderCounter atomic.Uint64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string // Scene name (e.g., "cornell-box")
	Width           int    // Image width
	SamplesPerPixel int    // Zero keeps the scene default
	MaxDepth        int    // Zero keeps the scene default
	Seed            uint64
}

// parseRenderRequest parses the scene and camera query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "cornell-box" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseUintParam(query, "seed", scene.DefaultOptions().Seed); err != nil {
		return nil, err
	}
	return req, nil
}

// prepareScene creates the requested scene and its world and camera
func prepareScene(req *RenderRequest) (*scene.Scene, *renderer.Camera, error) {
	opts := scene.DefaultOptions()
	opts.Seed = req.Seed
	opts.Camera = renderer.CameraConfig{
		ImageWidth:      req.Width,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
	}

	sceneObj, err := scene.Create(req.Scene, opts)
	if err != nil {
		return nil, nil, err
	}
	camera, err := sceneObj.NewCamera()
	if err != nil {
		return nil, nil, err
	}
	return sceneObj, camera, nil
}

// handleRender renders the requested scene synchronously and replies with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, camera, err := prepareScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	world, err := sceneObj.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	options := renderer.DefaultOptions()
	options.Seed = req.Seed
	options.Logger = NewWebLogger(renderID, s.console)

	startTime := time.Now()
	buffer, stats, err := renderer.NewRaytracer(world, camera, options).RenderContext(r.Context())
	if err != nil {
		// The client went away; nobody reads this response
		logger.Infof("%s cancelled after %d pixels: %v", renderID, stats.TotalPixels, err)
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("render cancelled: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, buffer.ToImage()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Faulted-Pixels", strconv.Itoa(len(stats.FaultedPixels)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warningf("failed to write render response: %v", err)
	}
}
