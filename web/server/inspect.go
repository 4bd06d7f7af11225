package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/lucasb-eyer/go-colorful"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// centerSampler makes the camera shoot through the pixel center, from the
// middle of the lens, halfway through the shutter interval
type centerSampler struct{}

func (centerSampler) Get1D() float64 { return 0.5 }
func (centerSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (centerSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a linear color as an sRGB hex string
func hexColor(linear core.Vec3) string {
	return colorful.LinearRgb(linear.X, linear.Y, linear.Z).Clamped().Hex()
}

// extractMaterialInfo describes the material at a hit, evaluating textures there
func extractMaterialInfo(hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := hit.Material.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.DiffuseLight:
		emission := m.Emit.Evaluate(hit.UV, hit.Point)
		properties["emission"] = vecArray(emission)
		properties["color"] = hexColor(emission)
		properties["twoSided"] = m.TwoSided
		return "diffuse_light", properties

	case *material.Isotropic:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

// findHitObject returns the top-level object that produced hit
func findHitObject(objects []geometry.Hittable, ray core.Ray, hit *material.HitRecord) geometry.Hittable {
	rayT := core.NewInterval(integrator.ShadowAcneEpsilon, hit.T+integrator.ShadowAcneEpsilon)
	for _, object := range objects {
		if objectHit, ok := object.Hit(ray, rayT); ok && objectHit.T == hit.T {
			return object
		}
	}
	return nil
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(object geometry.Hittable) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if object != nil {
		bbox := object.BoundingBox()
		properties["boundingBox"] = map[string]interface{}{
			"min": vecArray(bbox.Min()),
			"max": vecArray(bbox.Max()),
		}
	}

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		if geom.Motion != (core.Vec3{}) {
			properties["motion"] = vecArray(geom.Motion)
		}
		return "sphere", properties
	case *geometry.Quad:
		properties["corner"] = vecArray(geom.Corner)
		properties["u"] = vecArray(geom.U)
		properties["v"] = vecArray(geom.V)
		properties["normal"] = vecArray(geom.Normal())
		return "quad", properties
	case *geometry.Triangle:
		return "triangle", properties
	case *geometry.TriangleMesh:
		properties["triangleCount"] = geom.TriangleCount()
		return "triangle_mesh", properties
	case *geometry.ConstantMedium:
		properties["density"] = geom.Density
		return "constant_medium", properties
	case *geometry.Translate:
		properties["offset"] = vecArray(geom.Offset)
		return "translate", properties
	case *geometry.Rotate:
		properties["axis"] = vecArray(geom.Axis)
		properties["angle"] = geom.Angle
		return "rotate", properties
	case *geometry.BVHNode:
		return "bvh", properties
	case *geometry.HittableList:
		return "list", properties
	default:
		return "unknown", properties
	}
}

// handleInspect casts one ray through a pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, camera, err := prepareScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= camera.Width() || pixelY < 0 || pixelY >= camera.Height() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds for %dx%d image", camera.Width(), camera.Height()))
		return
	}

	world, err := sceneObj.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ray := camera.GetRay(pixelX, pixelY, centerSampler{})
	hit, ok := world.Hit(ray, core.NewInterval(integrator.ShadowAcneEpsilon, core.UniverseInterval.Max))
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(hit)
	geometryType, geometryProps := extractGeometryInfo(findHitObject(sceneObj.Objects, ray, hit))

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
