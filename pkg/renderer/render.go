package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-raykernel/pkg/core"
)

// Config contains parallel rendering configuration
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TiledRenderer splits the image into tiles and renders them in parallel
type TiledRenderer struct {
	scene     Scene
	config    Config
	raytracer *Raytracer
	logger    core.Logger
}

// NewTiledRenderer creates a renderer for the scene
func NewTiledRenderer(scene Scene, config Config, logger core.Logger) *TiledRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &TiledRenderer{
		scene:     scene,
		config:    config,
		raytracer: NewRaytracer(scene),
		logger:    logger,
	}
}

// Raytracer returns the per-pixel raytracer used by the workers
func (tr *TiledRenderer) Raytracer() *Raytracer {
	return tr.raytracer
}

// Render traces every pixel of the camera and writes hits to the target
func (tr *TiledRenderer) Render(ctx context.Context, target Target) (RenderStats, error) {
	camera := tr.scene.GetCamera()
	tiles := NewTileGrid(camera.Width(), camera.Height(), tr.config.TileSize)

	pool := NewWorkerPool(tr.raytracer, target, len(tiles), tr.config.NumWorkers)
	tr.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		camera.Width(), camera.Height(), len(tiles), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	if err := pool.Stop(); err != nil {
		return RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
	}
	stats.Elapsed = time.Since(startTime)

	tr.logger.Printf("Render completed in %v: %d of %d pixels hit (%.1f%%)\n",
		stats.Elapsed, stats.HitPixels, stats.TotalPixels, 100*stats.Coverage())

	return stats, nil
}
