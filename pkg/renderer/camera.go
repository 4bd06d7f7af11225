package renderer

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// CameraConfig describes the image and the view. Start from
// DefaultCameraConfig and override fields, or merge a partial config over
// the defaults with MergeCameraConfig.
type CameraConfig struct {
	AspectRatio     float64 // Image width over height
	ImageWidth      int     // Rendered image width in pixels
	SamplesPerPixel int     // Random samples per pixel
	MaxDepth        int     // Maximum number of ray bounces
	VFov            float64 // Vertical field of view in degrees

	LookFrom core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // Camera-relative up direction

	DefocusAngle  float64 // Variation angle of rays through each pixel, in degrees
	FocusDistance float64 // Distance from LookFrom to the plane of perfect focus

	Background *core.Vec3 // Solid background color; nil uses the sky gradient

	ShutterOpen  float64 // Rays are cast at a uniform time in [ShutterOpen, ShutterClose]
	ShutterClose float64

	Reset CameraReset // Fields an override forces back to their zero value
}

// CameraReset selects fields that MergeCameraConfig clears even though the
// override leaves them zero
type CameraReset uint8

const (
	ResetDefocus    CameraReset = 1 << iota // pinhole camera, no depth of field
	ResetBackground                         // sky gradient instead of a solid color
	ResetShutter                            // instantaneous shutter, no motion blur
)

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      800,
		SamplesPerPixel: 50,
		MaxDepth:        25,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
		Background:      nil,
		ShutterOpen:     0,
		ShutterClose:    1,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// LookFrom and LookAt are taken together when either is set, so a view aimed
// at the origin survives the merge. The shutter pair is handled the same way.
// Fields named in override.Reset are cleared last.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) || override.LookAt != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.Background != nil {
		background := *override.Background
		result.Background = &background
	}
	if override.ShutterOpen != 0 || override.ShutterClose != 0 {
		result.ShutterOpen = override.ShutterOpen
		result.ShutterClose = override.ShutterClose
	}

	if override.Reset&ResetDefocus != 0 {
		result.DefocusAngle = 0
	}
	if override.Reset&ResetBackground != 0 {
		result.Background = nil
	}
	if override.Reset&ResetShutter != 0 {
		result.ShutterOpen = 0
		result.ShutterClose = 0
	}
	result.Reset = 0

	return result
}

// Validate checks the configuration and reports the first problem found
func (c CameraConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidCamera, fmt.Sprintf(format, args...))
	}

	switch {
	case c.ImageWidth <= 0:
		return invalid("image width must be positive, got %d", c.ImageWidth)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return invalid("aspect ratio must be positive, got %v", c.AspectRatio)
	case c.SamplesPerPixel < 1:
		return invalid("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 1:
		return invalid("max depth must be at least 1, got %d", c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return invalid("vertical field of view must be in (0, 180), got %v", c.VFov)
	case !(c.DefocusAngle >= 0):
		return invalid("defocus angle must not be negative, got %v", c.DefocusAngle)
	case !(c.FocusDistance > 0):
		return invalid("focus distance must be positive, got %v", c.FocusDistance)
	case !(c.ShutterClose >= c.ShutterOpen):
		return invalid("shutter closes at %v before it opens at %v", c.ShutterClose, c.ShutterOpen)
	case !c.LookFrom.IsFinite() || !c.LookAt.IsFinite() || !c.Up.IsFinite():
		return invalid("view vectors must be finite")
	case c.LookFrom.Subtract(c.LookAt).NearZero():
		return invalid("look-from and look-at are both %v", c.LookFrom)
	case c.Up.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return invalid("up %v is parallel to the view direction", c.Up)
	}

	if c.Background != nil && !c.Background.IsFinite() {
		return invalid("background %v is not finite", *c.Background)
	}
	return nil
}

// Camera generates primary rays for pixel coordinates
type Camera struct {
	config      CameraConfig
	imageHeight int

	center       core.Vec3 // Camera center
	pixel00      core.Vec3 // Center of the upper-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
	u, v, w      core.Vec3 // Camera frame basis vectors
}

// NewCamera validates the configuration and precomputes the view geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		config:      config,
		imageHeight: max(1, int(float64(config.ImageWidth)/config.AspectRatio)),
		center:      config.LookFrom,
	}

	// Viewport dimensions on the focus plane
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(c.imageHeight)

	// Orthonormal camera basis
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.ImageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the validated configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay returns a ray through a random point of pixel (i, j), where j=0 is
// the top row. The origin lies on the defocus disk when defocus is enabled
// and the time is uniform over the shutter interval.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	time := c.config.ShutterOpen + sampler.Get1D()*(c.config.ShutterClose-c.config.ShutterOpen)

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), time)
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
