package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// PathTracingIntegrator implements unidirectional path tracing over a list of
// spheres with diffuse, mirror and glass surfaces
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Radiance computes the radiance arriving along a camera ray
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, spheres []geometry.Sphere, sampler core.Sampler) core.Vec3 {
	return pt.radiance(ray, spheres, sampler, 0)
}

// radiance returns the light along ray after depth previous bounces
func (pt *PathTracingIntegrator) radiance(ray core.Ray, spheres []geometry.Sphere, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := geometry.Intersect(ray, spheres)
	if !isHit {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	depth++

	obj := &spheres[hit.Index]
	emission := obj.Material.Emission
	if depth > pt.config.MaxDepth {
		return emission
	}

	// A black surface ends the path: whatever follows is multiplied by zero
	maxRefl := obj.Material.MaxReflectance()
	if maxRefl <= 0 {
		return emission
	}

	// Apply Russian Roulette termination
	albedo := obj.Material.Albedo
	if depth > pt.config.RussianRouletteMinBounces {
		if sampler.Get1D() >= maxRefl {
			return emission
		}
		albedo = albedo.Multiply(1 / maxRefl)
	}

	point := ray.At(hit.T)
	normal := obj.Normal(point)
	orientedNormal := normal
	if normal.Dot(ray.Direction) >= 0 {
		orientedNormal = normal.Negate()
	}

	var incoming core.Vec3
	switch obj.Material.Surface {
	case material.Mirror:
		reflected := core.NewRay(point, Reflect(ray.Direction, normal))
		incoming = pt.radiance(reflected, spheres, sampler, depth)
	case material.Glass:
		incoming = pt.calculateGlassColor(ray, point, normal, orientedNormal, spheres, sampler, depth)
	default:
		scattered := core.NewRay(point, SampleCosineHemisphere(orientedNormal, sampler))
		incoming = pt.radiance(scattered, spheres, sampler, depth)
	}

	return emission.Add(albedo.MultiplyVec(incoming))
}

// calculateGlassColor handles dielectric scattering. Near the camera both the
// reflected and refracted paths are traced; deeper paths pick one at random.
func (pt *PathTracingIntegrator) calculateGlassColor(ray core.Ray, point, normal, orientedNormal core.Vec3, spheres []geometry.Sphere, sampler core.Sampler, depth int) core.Vec3 {
	reflected := core.NewRay(point, Reflect(ray.Direction, normal))

	transmitted, entering, ok := Refract(ray.Direction, normal, orientedNormal)
	if !ok {
		// Total internal reflection
		return pt.radiance(reflected, spheres, sampler, depth)
	}
	refracted := core.NewRay(point, transmitted)

	cosine := transmitted.Dot(normal)
	if entering {
		cosine = -ray.Direction.Dot(orientedNormal)
	}
	re, tr := SchlickReflectance(cosine)

	if depth <= pt.config.GlassSplitDepth {
		return pt.radiance(reflected, spheres, sampler, depth).Multiply(re).
			Add(pt.radiance(refracted, spheres, sampler, depth).Multiply(tr))
	}

	p := 0.25 + 0.5*re
	if sampler.Get1D() < p {
		return pt.radiance(reflected, spheres, sampler, depth).Multiply(re / p)
	}
	return pt.radiance(refracted, spheres, sampler, depth).Multiply(tr / (1 - p))
}
