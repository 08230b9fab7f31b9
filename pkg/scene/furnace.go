package scene

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/renderer"
)

// NewFurnaceScene creates a row of balls inside a uniformly glowing
// enclosure. A clear glass ball with albedo 1 disappears against the
// background, which makes the scene a quick visual energy check.
func NewFurnaceScene() *Scene {
	spheres := []geometry.Sphere{
		geometry.NewSphere(1000, core.NewVec3(0, 0, 0), material.NewLight(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(1, core.NewVec3(-2.5, 0, -8), material.NewDiffuse(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(1, core.NewVec3(0, 0, -8), material.NewGlass(core.NewVec3(1, 1, 1))),
		geometry.NewSphere(1, core.NewVec3(2.5, 0, -8), material.NewMirror(core.NewVec3(0.6, 0.6, 0.9))),
	}

	return &Scene{
		Name:        "furnace",
		Description: "Diffuse, glass and mirror balls in a glowing enclosure",
		Spheres:     spheres,
		CameraConfig: renderer.CameraConfig{
			Position:    core.NewVec3(0, 0, 0),
			Direction:   core.NewVec3(0, 0, -1),
			FieldOfView: 0.5135,
			NearPlane:   0,
		},
		Width:           320,
		Height:          240,
		SamplesPerPixel: 16,
	}
}
