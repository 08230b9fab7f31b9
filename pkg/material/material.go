package material

import (
	"fmt"
	"strings"

	"github.com/df07/go-smallpt/pkg/core"
)

// SurfaceType selects how a surface scatters light
type SurfaceType int

const (
	Diffuse SurfaceType = iota // Lambertian, cosine-weighted bounce
	Mirror                     // Perfect specular reflection
	Glass                      // Dielectric with Fresnel-weighted reflection and refraction
)

// String returns the lowercase name of the surface type
func (s SurfaceType) String() string {
	switch s {
	case Diffuse:
		return "diffuse"
	case Mirror:
		return "mirror"
	case Glass:
		return "glass"
	default:
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
}

// ParseSurfaceType converts a name such as "diffuse" into a SurfaceType
func ParseSurfaceType(name string) (SurfaceType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "diffuse", "":
		return Diffuse, nil
	case "mirror", "specular":
		return Mirror, nil
	case "glass", "dielectric", "refractive":
		return Glass, nil
	default:
		return Diffuse, fmt.Errorf("unknown surface type %q", name)
	}
}

// Material describes the emission, reflectance and surface type of a primitive.
// Materials are small values copied into each sphere.
type Material struct {
	Emission core.Vec3   // Emitted radiance
	Albedo   core.Vec3   // Base reflectance, each channel nominally in [0,1]
	Surface  SurfaceType // Selects the bounce sampling branch
}

// NewMaterial creates a material from its three components
func NewMaterial(emission, albedo core.Vec3, surface SurfaceType) Material {
	return Material{Emission: emission, Albedo: albedo, Surface: surface}
}

// NewDiffuse creates a non-emissive diffuse material
func NewDiffuse(albedo core.Vec3) Material {
	return NewMaterial(core.Vec3{}, albedo, Diffuse)
}

// NewMirror creates a non-emissive mirror material
func NewMirror(albedo core.Vec3) Material {
	return NewMaterial(core.Vec3{}, albedo, Mirror)
}

// NewGlass creates a non-emissive glass material
func NewGlass(albedo core.Vec3) Material {
	return NewMaterial(core.Vec3{}, albedo, Glass)
}

// NewLight creates a purely emissive diffuse material with zero albedo
func NewLight(emission core.Vec3) Material {
	return NewMaterial(emission, core.Vec3{}, Diffuse)
}

// MaxReflectance returns the largest albedo channel, used as the
// Russian roulette survival probability.
func (m Material) MaxReflectance() float64 {
	return m.Albedo.MaxComponent()
}

// IsEmissive reports whether the material emits any light
func (m Material) IsEmissive() bool {
	return !m.Emission.IsZero()
}
