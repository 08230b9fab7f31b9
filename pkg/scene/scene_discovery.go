package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-smallpt/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	BuiltIn []SceneInfo `json:"builtin"`
	Files   []SceneInfo `json:"files"`
}

// FindScenesDir returns the first scenes directory found relative to the
// working directory, or "" if there is none
func FindScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListFileScenes scans dir for JSON scene files. Files that fail to parse
// are skipped.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %v", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneFile, err := loaders.LoadSceneFile(filePath)
		if err != nil {
			continue
		}

		id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		name := sceneFile.Name
		if name == "" {
			name = id
		}
		scenes = append(scenes, SceneInfo{
			ID:          "file:" + id,
			Name:        name,
			DisplayName: titleCase(name),
			Description: sceneFile.Description,
			Type:        "file",
			FilePath:    filePath,
			Width:       orDefault(sceneFile.Width, defaultWidth),
			Height:      orDefault(sceneFile.Height, defaultHeight),
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ListAllScenes returns the built-in scenes and the scene files in dir
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	for _, name := range BuiltInNames() {
		s, _ := ByName(name)
		response.BuiltIn = append(response.BuiltIn, SceneInfo{
			ID:          name,
			Name:        s.Name,
			DisplayName: titleCase(s.Name),
			Description: s.Description,
			Type:        "builtin",
			Width:       s.Width,
			Height:      s.Height,
		})
	}

	files, err := ListFileScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %v", err)
	}
	response.Files = files
	return response, nil
}

// Resolve finds a scene by ID. IDs are either a built-in name or
// "file:<name>" for a JSON file in dir.
func Resolve(id, dir string) (*Scene, error) {
	if name, ok := strings.CutPrefix(id, "file:"); ok {
		if dir == "" {
			return nil, fmt.Errorf("no scenes directory for %q", id)
		}
		if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return nil, fmt.Errorf("invalid scene file name %q", name)
		}
		return LoadScene(filepath.Join(dir, name+".json"))
	}
	return ByName(id)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
