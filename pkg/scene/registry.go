package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Info describes a registered scene
type Info struct {
	ID          string `json:"id"`          // Name passed to Create
	DisplayName string `json:"displayName"` // Human-friendly name
	Description string `json:"description"`
	Group       string `json:"group"`
}

// Builder constructs a scene from options
type Builder func(opts Options) (*Scene, error)

type entry struct {
	info  Info
	build Builder
}

const (
	groupWeekend  = "In One Weekend"
	groupNextWeek = "The Next Week"
	groupMeshes   = "Meshes"
)

var registry = map[string]entry{}

func register(id, group, description string, build Builder) {
	registry[id] = entry{
		info: Info{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Group:       group,
		},
		build: build,
	}
}

func init() {
	register("ground-sphere", groupWeekend, "A single diffuse sphere resting on a huge ground sphere", newGroundSphereScene)
	register("metal", groupWeekend, "Diffuse center sphere between two polished metal spheres", newMetalScene)
	register("fuzz", groupWeekend, "The metal spheres with slightly and fully fuzzed reflections", newFuzzScene)
	register("hollow-glass", groupWeekend, "A glass sphere with an air bubble inside it next to a metal sphere", newHollowGlassScene)
	register("defocus", groupWeekend, "The metal spheres seen from above with a wide aperture", newDefocusScene)
	register("fov", groupWeekend, "Two touching spheres through a wide field of view", newFovScene)
	register("vup", groupWeekend, "A sphere on the ground with the camera rolled by its up vector", newVupScene)
	register("final-checkered", groupWeekend, "The random sphere field on a checkered ground", newFinalCheckeredScene)
	register("spheres", groupWeekend, "Random field of small diffuse, metal and glass spheres around three large ones", newSpheresScene)
	register("bouncing-spheres", groupNextWeek, "The random sphere field with diffuse spheres moving during the shutter interval", newBouncingSpheresScene)
	register("checkered-spheres", groupNextWeek, "Two large spheres with a spatial checker texture", newCheckeredSpheresScene)
	register("perlin-spheres", groupNextWeek, "Marble-like Perlin noise on a ground sphere and a small sphere", newPerlinSpheresScene)
	register("earth", groupNextWeek, "A globe with an image texture", newEarthScene)
	register("quads", groupNextWeek, "Five colored quads forming an open box", newQuadsScene)
	register("simple-light", groupNextWeek, "Noise-textured spheres lit by a quad light and a sphere light", newSimpleLightScene)
	register("cornell-box", groupNextWeek, "The classic Cornell box with two rotated blocks", newCornellBoxScene)
	register("cornell-smoke", groupNextWeek, "The Cornell box with its blocks replaced by smoke and fog", newCornellSmokeScene)
	register("final", groupNextWeek, "Every feature at once: box terrain, fog, glass, metal, textures and a rotated sphere cluster", newFinalScene)
	register("gltf", groupMeshes, "A triangle mesh loaded from a glTF file", newGLTFScene)
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// List returns information about every registered scene, sorted by name
func List() []Info {
	names := Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// Lookup returns the information for one scene
func Lookup(name string) (Info, bool) {
	e, ok := registry[name]
	return e.info, ok
}

// Create builds the named scene and applies the camera overrides in opts
func Create(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}

	s, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	s.Name = name
	if s.Description == "" {
		s.Description = e.info.Description
	}
	s.Camera = renderer.MergeCameraConfig(s.Camera, opts.Camera)
	return s, nil
}

// titleCase converts a scene id like "cornell-box" to "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
