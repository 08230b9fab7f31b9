package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit         bool       `json:"hit"`
	SphereIndex int        `json:"sphereIndex"`
	Surface     string     `json:"surface"`
	Emission    [3]float64 `json:"emission"`
	Albedo      [3]float64 `json:"albedo"`
	Center      [3]float64 `json:"center"`
	Radius      float64    `json:"radius"`
	Point       [3]float64 `json:"point"`
	Normal      [3]float64 `json:"normal"`
	Distance    float64    `json:"distance"`
	FrontFace   bool       `json:"frontFace"`
}

// inspectPixel casts a ray through the center of pixel (x, y), y = 0 being
// the top row, and describes the first sphere hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	camera := sceneObj.NewCamera(width, height)

	// Sub-pixel cell 0 with offset 0.5 lands on the pixel center
	ray := camera.GetRay(pixelX, height-1-pixelY, 0, 0, 0.5, 0.5)

	hit, isHit := geometry.Intersect(ray, sceneObj.Spheres)
	if !isHit {
		return InspectResponse{Hit: false}
	}

	sphere := sceneObj.Spheres[hit.Index]
	point := ray.At(hit.T)
	normal := sphere.Normal(point)

	return InspectResponse{
		Hit:         true,
		SphereIndex: hit.Index,
		Surface:     sphere.Material.Surface.String(),
		Emission:    toArray(sphere.Material.Emission),
		Albedo:      toArray(sphere.Material.Albedo),
		Center:      toArray(sphere.Center),
		Radius:      sphere.Radius(),
		Point:       toArray(point),
		Normal:      toArray(normal),
		Distance:    hit.T,
		FrontFace:   normal.Dot(ray.Direction) < 0,
	}
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := scene.Resolve(req.Scene, s.scenesDir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	config := req.renderConfig(sceneObj)

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= config.Width || pixelY < 0 || pixelY >= config.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, config.Width, config.Height, pixelX, pixelY))
}
