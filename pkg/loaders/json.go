package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SceneFile is the plain-data form of a JSON scene description
type SceneFile struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	SamplesPerPixel int          `json:"samplesPerPixel"` // Per 2x2 sub-pixel cell
	Camera          CameraSpec   `json:"camera"`
	Spheres         []SphereSpec `json:"spheres"`
}

// CameraSpec describes the camera of a scene file. Zero values are filled in
// by the scene converter.
type CameraSpec struct {
	Position    [3]float64 `json:"position"`
	Direction   [3]float64 `json:"direction"`
	FieldOfView float64    `json:"fieldOfView"`
	NearPlane   float64    `json:"nearPlane"`
}

// SphereSpec describes one sphere and its material
type SphereSpec struct {
	Radius   float64    `json:"radius"`
	Center   [3]float64 `json:"center"`
	Emission [3]float64 `json:"emission"`
	Albedo   [3]float64 `json:"albedo"`
	Surface  string     `json:"surface"` // "diffuse", "mirror" or "glass"
}

// LoadSceneFile reads and parses a JSON scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sceneFile, nil
}

// ParseSceneFile decodes a JSON scene description. Unknown fields and data
// after the scene object are rejected so typos do not silently fall back to defaults.
func ParseSceneFile(r io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("failed to parse scene: unexpected data after the scene object")
	}
	if len(sceneFile.Spheres) == 0 {
		return nil, fmt.Errorf("scene %q has no spheres", sceneFile.Name)
	}
	return &sceneFile, nil
}
