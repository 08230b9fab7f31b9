package geometry

import (
	"github.com/df07/go-smallpt/pkg/core"
)

// Hit identifies the nearest sphere along a ray
type Hit struct {
	T     float64 // Ray parameter of the hit point
	Index int     // Index of the sphere in the scene slice
}

// Intersect finds the sphere with the smallest accepted ray parameter.
// Spheres are scanned linearly; on equal t the first one wins.
func Intersect(ray core.Ray, spheres []Sphere) (Hit, bool) {
	closest := Hit{T: core.Infinity, Index: -1}

	for i := range spheres {
		if t, ok := spheres[i].Intersect(ray); ok && t < closest.T {
			closest = Hit{T: t, Index: i}
		}
	}

	if closest.T < core.Infinity {
		return closest, true
	}
	return Hit{}, false
}
