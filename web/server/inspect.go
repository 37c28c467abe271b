package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit      bool                   `json:"hit"`
	T        float64                `json:"t"`
	Point    [3]float64             `json:"point"`
	Normal   [3]float64             `json:"normal"`
	Color    [3]float64             `json:"color"`
	ObjectID string                 `json:"objectId,omitempty"`
	Material map[string]interface{} `json:"material,omitempty"`
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// handleInspect casts the ray through one pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "shaded"
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	config := sceneObj.CameraConfig
	if pixelX < 0 || pixelX >= config.Width || pixelY < 0 || pixelY >= config.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sample, err := renderer.NewRaytracer(sceneObj).TracePixel(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !sample.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	m := sample.Intersection.Object.Material
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:      true,
		T:        sample.Intersection.T,
		Point:    tupleArray(sample.Point),
		Normal:   tupleArray(sample.Normal),
		Color:    [3]float64{sample.Color.R, sample.Color.G, sample.Color.B},
		ObjectID: sample.Intersection.Object.ID().String(),
		Material: map[string]interface{}{
			"color":     [3]float64{m.Color.R, m.Color.G, m.Color.B},
			"ambient":   m.Ambient,
			"diffuse":   m.Diffuse,
			"specular":  m.Specular,
			"shininess": m.Shininess,
		},
	})
}
