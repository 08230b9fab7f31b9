package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
)

func createTestCamera(width, height int) *Camera {
	return NewCamera(CameraConfig{
		Position:    core.NewVec3(0, 0, 0),
		Direction:   core.NewVec3(0, 0, -1),
		FieldOfView: 0.5135,
		NearPlane:   0,
	}, width, height)
}

func TestCameraDirectionNormalized(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 1024, 768)

	forward := camera.direction
	if math.Abs(forward.Length()-1) > 1e-12 {
		t.Errorf("Expected normalized forward direction, got %v", forward)
	}
	expected := core.NewVec3(0, -0.042612, -1).Normalize()
	if forward.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraBasis(t *testing.T) {
	camera := createTestCamera(200, 100)

	// cx scales with the aspect ratio, cy has length fov
	if math.Abs(camera.cx.X-2*0.5135) > 1e-12 {
		t.Errorf("Expected cx.X = %f, got %f", 2*0.5135, camera.cx.X)
	}
	if math.Abs(camera.cy.Length()-0.5135) > 1e-12 {
		t.Errorf("Expected |cy| = 0.5135, got %f", camera.cy.Length())
	}
	if camera.cy.Y <= 0 {
		t.Errorf("Expected cy to point up, got %v", camera.cy)
	}
	if math.Abs(camera.cy.Dot(camera.direction)) > 1e-12 {
		t.Errorf("Expected cy perpendicular to the view direction, got %v", camera.cy)
	}
}

func TestCameraGetRay_CenterAndCorners(t *testing.T) {
	camera := createTestCamera(2, 2)

	// Pixel (1,1) cell (0,0) with offset (-0.5,-0.5) lands exactly on the image center
	ray := camera.GetRay(1, 1, 0, 0, -0.5, -0.5)
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected center ray along -z, got %v", ray.Direction)
	}

	// Bottom-left pixel looks down and left, top-right looks up and right
	bottomLeft := camera.GetRay(0, 0, 0, 0, 0, 0)
	if bottomLeft.Direction.X >= 0 || bottomLeft.Direction.Y >= 0 {
		t.Errorf("Expected bottom-left ray to point down-left, got %v", bottomLeft.Direction)
	}
	topRight := camera.GetRay(1, 1, 1, 1, 0, 0)
	if topRight.Direction.X <= 0 || topRight.Direction.Y <= 0 {
		t.Errorf("Expected top-right ray to point up-right, got %v", topRight.Direction)
	}

	for _, r := range []core.Ray{ray, bottomLeft, topRight} {
		if math.Abs(r.Direction.Length()-1) > 1e-12 {
			t.Errorf("Expected unit direction, got %v", r.Direction)
		}
	}
}

func TestCameraGetRay_NearPlane(t *testing.T) {
	config := DefaultCameraConfig()
	camera := NewCamera(config, 100, 100)

	ray := camera.GetRay(50, 50, 0, 0, -0.5, -0.5)
	travelled := ray.Origin.Subtract(config.Position)

	// The origin moves along the ray direction by at least the near distance
	if travelled.Length() < config.NearPlane {
		t.Errorf("Expected origin pushed at least %f, got %f", config.NearPlane, travelled.Length())
	}
	if travelled.Normalize().Subtract(ray.Direction).Length() > 1e-9 {
		t.Errorf("Expected origin pushed along the ray, got offset %v for direction %v", travelled, ray.Direction)
	}
}

func TestTentFilter(t *testing.T) {
	tests := []struct {
		r        float64
		expected float64
	}{
		{0, -1},
		{0.25, -0.5},
		{1, 0},
		{1.75, 0.5},
	}

	for _, tt := range tests {
		if got := TentFilter(tt.r); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("TentFilter(%f): expected %f, got %f", tt.r, tt.expected, got)
		}
	}

	// Monotonic and within [-1, 1)
	prev := -2.0
	for r := 0.0; r < 2; r += 0.01 {
		v := TentFilter(r)
		if v < -1 || v >= 1 {
			t.Fatalf("TentFilter(%f) = %f outside [-1, 1)", r, v)
		}
		if v < prev {
			t.Fatalf("TentFilter not monotonic at %f", r)
		}
		prev = v
	}
}

func TestTentFilter_ConcentratesNearCenter(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	inner := 0
	const samples = 10000
	for i := 0; i < samples; i++ {
		if math.Abs(TentFilter(2*sampler.Get1D())) < 0.5 {
			inner++
		}
	}

	// Tent density puts 75% of the mass within half the support
	fraction := float64(inner) / samples
	if math.Abs(fraction-0.75) > 0.02 {
		t.Errorf("Expected about 75%% of offsets within 0.5, got %.3f", fraction)
	}
}
