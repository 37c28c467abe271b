package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. The first failing tile cancels
// the remaining work and its error is returned by Stop.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	raytracer   *Raytracer
	target      Target
	group       *errgroup.Group
	ctx         context.Context
}

// NewWorkerPool creates a worker pool able to queue maxTasks tiles without blocking
func NewWorkerPool(raytracer *Raytracer, target Target, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
		raytracer:   raytracer,
		target:      target,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.group, wp.ctx = errgroup.WithContext(ctx)
	for i := 0; i < wp.numWorkers; i++ {
		wp.group.Go(wp.run)
	}
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue, waits for the workers and returns the first error
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue)
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() error {
	for task := range wp.taskQueue {
		if err := wp.ctx.Err(); err != nil {
			return err
		}

		// Tiles have non-overlapping bounds, so writes to the target never collide
		stats, err := wp.raytracer.RenderBounds(task.Tile.Bounds, wp.target)
		if err != nil {
			return fmt.Errorf("tile %d: %w", task.Tile.ID, err)
		}

		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
	return nil
}
