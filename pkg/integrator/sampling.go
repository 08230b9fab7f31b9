package integrator

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Indices of refraction for the outside medium (air) and glass
const (
	airIndex   = 1.0
	glassIndex = 1.5
)

// SampleCosineHemisphere returns a cosine-weighted unit direction in the
// hemisphere around normal, consuming two uniform samples.
func SampleCosineHemisphere(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	r1 := 2 * math.Pi * sampler.Get1D()
	r2 := sampler.Get1D()
	r2s := math.Sqrt(r2)

	// Orthonormal basis (u, v, w) around the normal. Crossing with an axis
	// nearly parallel to w would lose precision, so pick the other one.
	w := normal
	var u core.Vec3
	if math.Abs(w.X) > 0.1 {
		u = core.NewVec3(0, 1, 0).Cross(w).Normalize()
	} else {
		u = core.NewVec3(1, 0, 0).Cross(w).Normalize()
	}
	v := w.Cross(u)

	return u.Multiply(math.Cos(r1) * r2s).
		Add(v.Multiply(math.Sin(r1) * r2s)).
		Add(w.Multiply(math.Sqrt(1 - r2))).
		Normalize()
}

// Reflect mirrors direction about normal
func Reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Subtract(normal.Multiply(2 * normal.Dot(direction)))
}

// Refract computes the transmitted direction through a glass surface.
// normal is the geometric normal and orientedNormal faces the incoming ray.
// Returns false on total internal reflection.
func Refract(direction, normal, orientedNormal core.Vec3) (transmitted core.Vec3, entering bool, ok bool) {
	entering = normal.Dot(orientedNormal) > 0
	nnt := glassIndex / airIndex
	if entering {
		nnt = airIndex / glassIndex
	}

	ddn := direction.Dot(orientedNormal)
	cos2t := 1 - nnt*nnt*(1-ddn*ddn)
	if cos2t < 0 {
		return core.Vec3{}, entering, false
	}

	sign := -1.0
	if entering {
		sign = 1.0
	}
	transmitted = direction.Multiply(nnt).
		Subtract(normal.Multiply(sign * (ddn*nnt + math.Sqrt(cos2t)))).
		Normalize()
	return transmitted, entering, true
}

// SchlickReflectance returns the reflected and transmitted fractions for a
// glass interface. cosine is -ddn when entering and transmitted·normal when
// leaving.
func SchlickReflectance(cosine float64) (re, tr float64) {
	a := glassIndex - airIndex
	b := glassIndex + airIndex
	r0 := a * a / (b * b)
	c := 1 - cosine
	re = r0 + (1-r0)*c*c*c*c*c
	return re, 1 - re
}
