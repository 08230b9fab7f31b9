package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cornell", "Built-in scene name or path to a JSON scene file")
	width := flag.Int("width", 0, "Image width (0 uses the scene default)")
	height := flag.Int("height", 0, "Image height (0 uses the scene default)")
	spp := flag.Int("spp", 0, "Total samples per pixel, split over 2x2 sub-pixels (0 uses the scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = logical CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: smallpt [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.BuiltInNames() {
			s, _ := scene.ByName(name)
			fmt.Printf("  %-8s - %s\n", name, s.Description)
		}
		fmt.Println("  <file>.json - scene file, see scenes/ for examples")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderConfig(selectedScene, *width, *height, *spp, *workers, *seed)
	fmt.Printf("Rendering %s at %dx%d, %d samples per pixel...\n",
		selectedScene.Name, config.Width, config.Height, config.SamplesPerPixel*4)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := renderer.NewRenderer(integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), config, renderer.NewDefaultLogger())
	camera := selectedScene.NewCamera(config.Width, config.Height)

	startTime := time.Now()
	fb, stats, err := r.Render(ctx, camera, selectedScene.Spheres)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Pixels: %d, samples: %d, non-finite pixels: %d\n",
		stats.TotalPixels, stats.TotalSamples, stats.NonFinitePixels)

	filename := *output
	if filename == "" {
		filename = createOutputPath(selectedScene.Name, time.Now())
	}
	if err := savePNG(filename, fb); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a built-in scene name or a JSON scene file path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	if strings.HasSuffix(sceneType, ".json") {
		return scene.LoadScene(sceneType)
	}
	if s, err := scene.ByName(sceneType); err == nil {
		return s, nil
	}
	// Fall back to scenes/<name>.json
	if dir := scene.FindScenesDir(); dir != "" {
		path := filepath.Join(dir, sceneType+".json")
		if _, err := os.Stat(path); err == nil {
			return scene.LoadScene(path)
		}
	}
	return nil, fmt.Errorf("unknown scene %q", sceneType)
}

// renderConfig overrides the scene defaults with any non-zero flags. The
// samples flag counts all four sub-pixels, as the renderer samples each
// sub-pixel SamplesPerPixel times.
func renderConfig(s *scene.Scene, width, height, spp, workers int, seed int64) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = s.Width
	config.Height = s.Height
	config.SamplesPerPixel = s.SamplesPerPixel
	config.Seed = seed

	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	if spp > 0 {
		config.SamplesPerPixel = max(spp/4, 1)
	}
	if workers > 0 {
		config.NumWorkers = workers
	}
	return config
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneName string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func savePNG(filename string, fb *renderer.Framebuffer) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	return png.Encode(file, fb.ToImage())
}
