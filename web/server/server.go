package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/df07/go-raykernel/pkg/canvas"
	"github.com/df07/go-raykernel/pkg/renderer"
	"github.com/df07/go-raykernel/pkg/scene"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const consoleBuffer = 256

// Server handles web requests for the ray kernel
type Server struct {
	port    int
	logOut  io.Writer
	console chan ConsoleMessage
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:    port,
		logOut:  os.Stderr,
		console: make(chan ConsoleMessage, consoleBuffer),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string        `json:"scene"`   // Built-in scene name (e.g., "shaded")
	Format  canvas.Format `json:"format"`  // ppm, png or bmp
	Workers int           `json:"workers"` // 0 = auto-detect
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

// handleRender renders a scene and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := uuid.NewString()
	logger := NewWebLogger(renderID, s.logOut, s.console)
	config := renderer.DefaultConfig()
	config.NumWorkers = req.Workers

	img := sceneObj.NewCanvas()
	tr := renderer.NewTiledRenderer(sceneObj, config, logger)

	// Use request context to stop rendering when the client disconnects
	if _, err := tr.Render(r.Context(), img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "shaded" // Default scene
	}

	var err error
	formatName := query.Get("format")
	if formatName == "" {
		formatName = string(canvas.FormatPNG)
	}
	if req.Format, err = canvas.ParseFormat(formatName); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 64); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a built-in scene. Scene files are not served over the web.
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	if !lo.Contains(scene.Names(), sceneName) {
		return nil, fmt.Errorf("unknown scene: %s", sceneName)
	}
	return scene.Create(sceneName)
}

// handleSceneConfig returns the camera and canvas configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "shaded" // Default scene
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene":  sceneName,
		"width":  config.Width,
		"height": config.Height,
		"camera": map[string]interface{}{
			"origin":   [3]float64{config.Origin.X, config.Origin.Y, config.Origin.Z},
			"wallZ":    config.WallZ,
			"wallSize": config.WallSize,
		},
		"shaded": sceneObj.Light != nil,
	}
	writeJSON(w, http.StatusOK, response)
}

// handleConsole drains the buffered render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	messages := []ConsoleMessage{}
	for {
		select {
		case msg := <-s.console:
			messages = append(messages, msg)
		default:
			writeJSON(w, http.StatusOK, messages)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
