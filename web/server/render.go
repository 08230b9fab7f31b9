package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

// RenderUpdate is the final SSE event of a render
type RenderUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int   `json:"totalPixels"`
	TotalSamples    int64 `json:"totalSamples"`
	NonFinitePixels int   `json:"nonFinitePixels"`
	Workers         int   `json:"workers"`
}

type renderOutcome struct {
	fb    *renderer.Framebuffer
	stats renderer.RenderStats
	err   error
}

// handleRender renders a scene and streams the renderer's console output
// followed by the finished image via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Resolve(req.Scene, s.scenesDir)
	if err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	config := req.renderConfig(sceneObj)
	raytracer := renderer.NewRenderer(integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), config, webLogger)
	camera := sceneObj.NewCamera(config.Width, config.Height)

	startTime := time.Now()
	done := make(chan renderOutcome, 1)
	go func() {
		fb, stats, err := raytracer.Render(ctx, camera, sceneObj.Spheres)
		done <- renderOutcome{fb: fb, stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)

		case outcome := <-done:
			// Flush console messages logged before the render returned
			for len(consoleChan) > 0 {
				s.sendConsoleMessage(w, <-consoleChan)
			}
			if outcome.err != nil {
				s.sendSSEEvent(w, "error", fmt.Sprintf("Render error: %v", outcome.err))
				return
			}

			imageData, err := s.imageToBase64PNG(outcome.fb.ToImage())
			if err != nil {
				s.sendSSEEvent(w, "error", fmt.Sprintf("failed to encode image: %v", err))
				return
			}
			update := RenderUpdate{
				ImageData: imageData,
				Width:     outcome.fb.Width,
				Height:    outcome.fb.Height,
				Stats:     toStats(outcome.stats),
				ElapsedMs: time.Since(startTime).Milliseconds(),
			}
			data, err := json.Marshal(update)
			if err != nil {
				s.sendSSEEvent(w, "error", err.Error())
				return
			}
			s.sendSSEEvent(w, "complete", string(data))
			return

		case <-ctx.Done():
			// Client disconnected; the renderer stops on the same context
			return
		}
	}
}

// handleRenderPNG renders a scene and returns the image as a PNG
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Resolve(req.Scene, s.scenesDir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := req.renderConfig(sceneObj)
	raytracer := renderer.NewRenderer(integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), config, log.Default())
	fb, stats, err := raytracer.Render(r.Context(), sceneObj.NewCamera(config.Width, config.Height), sceneObj.Spheres)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToImage()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", fmt.Sprint(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:     stats.TotalPixels,
		TotalSamples:    stats.TotalSamples,
		NonFinitePixels: stats.NonFinitePixels,
		Workers:         stats.Workers,
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *WebLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling console message: %v", err)
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

// sendSSEEvent writes one SSE event and flushes it to the client
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
