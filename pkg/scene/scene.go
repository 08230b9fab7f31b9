package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/renderer"
)

// Scene contains the spheres, camera and default image settings of a render
type Scene struct {
	Name            string
	Description     string
	Spheres         []geometry.Sphere
	CameraConfig    renderer.CameraConfig
	Width           int
	Height          int
	SamplesPerPixel int // Per 2x2 sub-pixel cell
}

// Validate checks the preconditions the renderer relies on
func (s *Scene) Validate() error {
	if len(s.Spheres) == 0 {
		return fmt.Errorf("scene %q has no spheres", s.Name)
	}
	if s.CameraConfig.Direction.IsZero() {
		return fmt.Errorf("scene %q: camera direction must be non-zero", s.Name)
	}
	if s.CameraConfig.FieldOfView <= 0 {
		return fmt.Errorf("scene %q: field of view must be positive", s.Name)
	}
	if s.Width <= 0 || s.Height <= 0 || s.SamplesPerPixel <= 0 {
		return fmt.Errorf("scene %q: invalid defaults %dx%d at %d samples", s.Name, s.Width, s.Height, s.SamplesPerPixel)
	}
	return nil
}

// NewCamera creates the scene camera for an image of the given size
func (s *Scene) NewCamera(width, height int) *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig, width, height)
}

var builtIns = map[string]func() *Scene{
	"cornell": NewCornellScene,
	"classic": NewClassicScene,
	"furnace": NewFurnaceScene,
}

// BuiltInNames returns the names of the built-in scenes in sorted order
func BuiltInNames() []string {
	names := make([]string, 0, len(builtIns))
	for name := range builtIns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a fresh copy of a built-in scene
func ByName(name string) (*Scene, error) {
	create, ok := builtIns[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return create(), nil
}
