package geometry

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

// Sphere represents a sphere primitive. The radius is stored squared since
// intersection only ever needs r².
type Sphere struct {
	Center   core.Vec3
	Rad2     float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(radius float64, center core.Vec3, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Rad2:     radius * radius,
		Material: mat,
	}
}

// Radius returns the sphere radius
func (s Sphere) Radius() float64 {
	return math.Sqrt(s.Rad2)
}

// Intersect returns the nearest ray parameter greater than core.Epsilon at
// which the ray meets the sphere. The ray direction must be unit length.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	op := s.Center.Subtract(ray.Origin)
	b := op.Dot(ray.Direction)
	det := b*b - op.LengthSquared() + s.Rad2
	if det < 0 {
		return 0, false
	}

	det = math.Sqrt(det)
	if t := b - det; t > core.Epsilon {
		return t, true
	}
	if t := b + det; t > core.Epsilon {
		return t, true
	}
	return 0, false
}

// Normal returns the unit outward geometric normal at a surface point
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
