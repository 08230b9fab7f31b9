package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

func TestIntersect_Empty(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := Intersect(ray, nil); ok {
		t.Error("Expected no hit in an empty scene")
	}
}

func TestIntersect_Nearest(t *testing.T) {
	red := material.NewDiffuse(core.NewVec3(0.75, 0.25, 0.25))
	blue := material.NewDiffuse(core.NewVec3(0.25, 0.25, 0.75))

	spheres := []Sphere{
		NewSphere(1.0, core.NewVec3(0, 0, -10), red), // farther
		NewSphere(1.0, core.NewVec3(0, 0, -5), blue), // nearer
		NewSphere(1.0, core.NewVec3(5, 0, -3), red),  // off axis
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := Intersect(ray, spheres)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Index != 1 {
		t.Errorf("Expected nearest sphere index 1, got %d", hit.Index)
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
}

func TestIntersect_OrderIndependent(t *testing.T) {
	a := NewSphere(1.0, core.NewVec3(0, 0, -10), grey)
	b := NewSphere(2.0, core.NewVec3(0, 0, -4), grey)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	forward, _ := Intersect(ray, []Sphere{a, b})
	reverse, _ := Intersect(ray, []Sphere{b, a})

	if forward.T != reverse.T {
		t.Errorf("Expected same t regardless of order, got %f and %f", forward.T, reverse.T)
	}
	if forward.Index != 1 || reverse.Index != 0 {
		t.Errorf("Unexpected indices %d and %d", forward.Index, reverse.Index)
	}
}

func TestIntersect_TieKeepsFirst(t *testing.T) {
	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	blue := material.NewDiffuse(core.NewVec3(0, 0, 1))
	spheres := []Sphere{
		NewSphere(1.0, core.NewVec3(0, 0, -5), red),
		NewSphere(1.0, core.NewVec3(0, 0, -5), blue),
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := Intersect(ray, spheres)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Index != 0 {
		t.Errorf("Expected first-seen sphere on tie, got index %d", hit.Index)
	}
}

func TestIntersect_MissesAll(t *testing.T) {
	spheres := []Sphere{
		NewSphere(1.0, core.NewVec3(0, 0, -5), grey),
		NewSphere(1.0, core.NewVec3(3, 0, -5), grey),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if hit, ok := Intersect(ray, spheres); ok {
		t.Errorf("Expected miss, got %+v", hit)
	}
}

func TestIntersect_InsideEnclosure(t *testing.T) {
	// Camera inside a large wall sphere, like the walls of the Cornell scene
	wall := NewSphere(1e5, core.NewVec3(1e5+1, 40.8, 81.6), grey)
	ray := core.NewRay(core.NewVec3(50, 40.8, 81.6), core.NewVec3(-1, 0, 0))

	hit, ok := Intersect(ray, []Sphere{wall})
	if !ok {
		t.Fatal("Expected hit on wall")
	}
	if math.Abs(hit.T-49.0) > 1e-6 {
		t.Errorf("Expected t=49, got %f", hit.T)
	}
}
