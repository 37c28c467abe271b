package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-raykernel/pkg/scene"
)

func newTestServer() *Server {
	s := NewServer(0)
	s.logOut = io.Discard
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(), "/api/scenes")
	var infos []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	names := scene.Names()
	if len(infos) != len(names) {
		t.Fatalf("Expected %d scenes, got %d", len(names), len(infos))
	}
	for i := range names {
		if infos[i].Name != names[i] {
			t.Errorf("scene %d: expected %q, got %q", i, names[i], infos[i].Name)
		}
	}
}

func TestHandleSceneConfig(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantWidth  float64
		wantShaded bool
	}{
		{"silhouette", "/api/scene-config?scene=silhouette", http.StatusOK, 100, false},
		{"default scene", "/api/scene-config", http.StatusOK, 200, true},
		{"unknown scene", "/api/scene-config?scene=cornell-box", http.StatusBadRequest, 0, false},
		{"scene files are not served", "/api/scene-config?scene=../../etc/scene.json", http.StatusBadRequest, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(), tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body map[string]interface{}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if body["width"] != tt.wantWidth {
				t.Errorf("Expected width %v, got %v", tt.wantWidth, body["width"])
			}
			if body["shaded"] != tt.wantShaded {
				t.Errorf("Expected shaded %v, got %v", tt.wantShaded, body["shaded"])
			}
		})
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/render?scene=silhouette&format=ppm&workers=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/x-portable-pixmap" {
		t.Errorf("Expected PPM content type, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "P3\n100 100\n255\n") {
		t.Errorf("Expected PPM header, got %q", rec.Body.String()[:20])
	}
	if rec.Header().Get("X-Render-Id") == "" {
		t.Error("Expected a render ID header")
	}

	rec = get(t, s, "/api/render?scene=shaded")
	if rec.Header().Get("Content-Type") != "image/png" {
		t.Errorf("Expected PNG by default, got %q", rec.Header().Get("Content-Type"))
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Errorf("Body is not a PNG: %v", err)
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []string{
		"/api/render?scene=nonexistent",
		"/api/render?scene=shaded&format=gif",
		"/api/render?scene=shaded&workers=abc",
		"/api/render?scene=shaded&workers=1000",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := get(t, newTestServer(), target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/inspect?scene=shaded&x=100&y=100")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&hit); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !hit.Hit || hit.ObjectID == "" {
		t.Fatalf("Expected a hit with an object ID, got %+v", hit)
	}
	if diff := hit.T - 4; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("Expected t = 4, got %v", hit.T)
	}
	if hit.Normal[2] > -1+1e-5 {
		t.Errorf("Expected normal facing the camera, got %v", hit.Normal)
	}

	rec = get(t, s, "/api/inspect?scene=shaded&x=0&y=0")
	var miss InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&miss); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if miss.Hit {
		t.Errorf("Expected corner pixel to miss, got %+v", miss)
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	tests := []string{
		"/api/inspect?scene=shaded&x=abc&y=0",
		"/api/inspect?scene=shaded&x=0",
		"/api/inspect?scene=shaded&x=200&y=0",
		"/api/inspect?scene=shaded&x=-1&y=0",
		"/api/inspect?scene=nonexistent&x=0&y=0",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			rec := get(t, newTestServer(), target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleConsole(t *testing.T) {
	s := newTestServer()
	get(t, s, "/api/render?scene=silhouette&format=ppm")

	rec := get(t, s, "/api/console")
	var messages []ConsoleMessage
	if err := json.NewDecoder(rec.Body).Decode(&messages); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(messages) == 0 {
		t.Fatal("Expected render log messages")
	}
	if messages[0].RenderID == "" {
		t.Error("Expected messages to carry the render ID")
	}

	// Drained
	rec = get(t, s, "/api/console")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected an empty console after draining, got %s", rec.Body.String())
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 3, false},
		{"workers=8", 8, false},
		{"workers=-1", 0, true},
		{"workers=x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := parseIntParam(req.URL.Query(), "workers", 3, 0, 64)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIntParam error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
