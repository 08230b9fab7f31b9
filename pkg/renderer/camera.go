package renderer

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position    core.Vec3 // Eye position
	Direction   core.Vec3 // Viewing direction, normalized by NewCamera
	FieldOfView float64   // Image plane scale (0.5135 gives roughly 54 degrees vertically)
	NearPlane   float64   // Distance primary rays are pushed forward before tracing starts
}

// DefaultCameraConfig returns the camera used by the Cornell box scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(50, 52, 295.6),
		Direction:   core.NewVec3(0, -0.042612, -1),
		FieldOfView: 0.5135,
		NearPlane:   140,
	}
}

// Camera generates primary rays for an image of a fixed size
type Camera struct {
	origin    core.Vec3
	direction core.Vec3
	cx, cy    core.Vec3 // Image plane basis
	near      float64
	width     float64
	height    float64
}

// NewCamera creates a camera for a width x height image
func NewCamera(config CameraConfig, width, height int) *Camera {
	direction := config.Direction.Normalize()
	fov := config.FieldOfView

	cx := core.NewVec3(float64(width)*fov/float64(height), 0, 0)
	cy := cx.Cross(direction).Normalize().Multiply(fov)

	return &Camera{
		origin:    config.Position,
		direction: direction,
		cx:        cx,
		cy:        cy,
		near:      config.NearPlane,
		width:     float64(width),
		height:    float64(height),
	}
}

// GetRay returns the primary ray for pixel (x, y), 2x2 sub-pixel cell
// (sx, sy) and tent-filtered offset (dx, dy). Row y = 0 is the bottom of the image.
func (c *Camera) GetRay(x, y, sx, sy int, dx, dy float64) core.Ray {
	u := ((float64(sx)+0.5+dx)/2+float64(x))/c.width - 0.5
	v := ((float64(sy)+0.5+dy)/2+float64(y))/c.height - 0.5

	d := c.cx.Multiply(u).Add(c.cy.Multiply(v)).Add(c.direction)
	return core.NewRay(c.origin.Add(d.Multiply(c.near)), d.Normalize())
}

// TentFilter maps r in [0,2) to an offset in [-1,1) concentrated around zero
func TentFilter(r float64) float64 {
	if r < 1 {
		return math.Sqrt(r) - 1
	}
	return 1 - math.Sqrt(2-r)
}
