package scene

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/renderer"
)

// cornellWalls returns the six walls of the box. Each wall is a sphere of
// radius 1e5 whose surface is nearly flat inside the box.
func cornellWalls() []geometry.Sphere {
	red := material.NewDiffuse(core.NewVec3(0.75, 0.25, 0.25))
	blue := material.NewDiffuse(core.NewVec3(0.25, 0.25, 0.75))
	white := material.NewDiffuse(core.NewVec3(0.75, 0.75, 0.75))
	black := material.NewDiffuse(core.NewVec3(0, 0, 0))

	const r = 1e5
	return []geometry.Sphere{
		geometry.NewSphere(r, core.NewVec3(1+r, 40.8, 81.6), red),    // Left
		geometry.NewSphere(r, core.NewVec3(99-r, 40.8, 81.6), blue),  // Right
		geometry.NewSphere(r, core.NewVec3(50, 40.8, r), white),      // Back
		geometry.NewSphere(r, core.NewVec3(50, 40.8, 170-r), black),  // Front
		geometry.NewSphere(r, core.NewVec3(50, r, 81.6), white),      // Bottom
		geometry.NewSphere(r, core.NewVec3(50, 81.6-r, 81.6), white), // Top
	}
}

// ceilingLight is a large sphere poking through the ceiling
func ceilingLight() geometry.Sphere {
	return geometry.NewSphere(600, core.NewVec3(50, 681.6-0.27, 81.6), material.NewLight(core.NewVec3(12, 12, 12)))
}

// NewCornellScene creates the Cornell box with a white diffuse ball and a
// glass ball lit through the ceiling
func NewCornellScene() *Scene {
	spheres := cornellWalls()
	spheres = append(spheres,
		geometry.NewSphere(16.5, core.NewVec3(27, 16.5, 47), material.NewDiffuse(core.NewVec3(0.999, 0.999, 0.999))),
		geometry.NewSphere(16.5, core.NewVec3(73, 16.5, 78), material.NewGlass(core.NewVec3(0.999, 0.999, 0.999))),
		ceilingLight(),
	)

	return &Scene{
		Name:            "cornell",
		Description:     "Cornell box with a diffuse ball and a glass ball",
		Spheres:         spheres,
		CameraConfig:    renderer.DefaultCameraConfig(),
		Width:           1024,
		Height:          1024,
		SamplesPerPixel: 256,
	}
}

// NewClassicScene creates the Cornell box with a mirror ball and a glass ball
func NewClassicScene() *Scene {
	spheres := cornellWalls()
	spheres = append(spheres,
		geometry.NewSphere(16.5, core.NewVec3(27, 16.5, 47), material.NewMirror(core.NewVec3(0.999, 0.999, 0.999))),
		geometry.NewSphere(16.5, core.NewVec3(73, 16.5, 78), material.NewGlass(core.NewVec3(0.999, 0.999, 0.999))),
		ceilingLight(),
	)

	return &Scene{
		Name:            "classic",
		Description:     "Cornell box with a mirror ball and a glass ball",
		Spheres:         spheres,
		CameraConfig:    renderer.DefaultCameraConfig(),
		Width:           1024,
		Height:          768,
		SamplesPerPixel: 64,
	}
}
