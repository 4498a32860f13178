package renderer

import (
	"sync"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// RowTask represents one image row to render
type RowTask struct {
	Row  int   // Row index, 0 at the bottom
	Seed int64 // Seed for the row's sampler
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Samples int
}

// WorkerPool manages parallel row rendering. Workers share the read-only
// scene and write disjoint rows of one framebuffer.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	framebuffer *Framebuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a pool of numWorkers workers rendering into framebuffer
func NewWorkerPool(raytracer *Raytracer, framebuffer *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	rows := framebuffer.Height()

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			framebuffer: framebuffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row owns its sampler, so the image does not depend on
		// which worker picked the row up
		sampler := core.NewSeededSampler(task.Seed)
		samples := w.raytracer.RenderRow(task.Row, w.framebuffer, sampler)
		w.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}
