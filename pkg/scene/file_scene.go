package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/loaders"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/renderer"
)

// Defaults for values a scene file leaves out
const (
	defaultFieldOfView     = 0.5135
	defaultWidth           = 512
	defaultHeight          = 384
	defaultSamplesPerPixel = 16
)

// LoadScene loads a JSON scene file from disk
func LoadScene(path string) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}

	if sceneFile.Name == "" {
		sceneFile.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return FromSceneFile(sceneFile)
}

// FromSceneFile converts a parsed scene file into a validated scene
func FromSceneFile(sceneFile *loaders.SceneFile) (*Scene, error) {
	s := &Scene{
		Name:            sceneFile.Name,
		Description:     sceneFile.Description,
		Width:           orDefault(sceneFile.Width, defaultWidth),
		Height:          orDefault(sceneFile.Height, defaultHeight),
		SamplesPerPixel: orDefault(sceneFile.SamplesPerPixel, defaultSamplesPerPixel),
		CameraConfig: renderer.CameraConfig{
			Position:    vec3(sceneFile.Camera.Position),
			Direction:   vec3(sceneFile.Camera.Direction),
			FieldOfView: sceneFile.Camera.FieldOfView,
			NearPlane:   sceneFile.Camera.NearPlane,
		},
	}
	if s.CameraConfig.FieldOfView == 0 {
		s.CameraConfig.FieldOfView = defaultFieldOfView
	}

	for i, spec := range sceneFile.Spheres {
		if spec.Radius < 0 {
			return nil, fmt.Errorf("sphere %d: radius must not be negative, got %g", i, spec.Radius)
		}
		surface, err := material.ParseSurfaceType(spec.Surface)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		mat := material.NewMaterial(vec3(spec.Emission), vec3(spec.Albedo), surface)
		s.Spheres = append(s.Spheres, geometry.NewSphere(spec.Radius, vec3(spec.Center), mat))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
