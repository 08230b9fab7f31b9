package renderer

import (
	"context"
	"fmt"
	"sync"

	"github.com/df07/go-smallpt/pkg/core"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band Band
	Seed int64 // Seed for the sampler owned by the worker for this band
}

// BandResult contains the private buffer rendered for a band
type BandResult struct {
	Band   Band
	Pixels []byte
	Stats  BandStats
	Error  error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are buffered for maxTasks so submitting never blocks.
func NewWorkerPool(renderer *BandRenderer, numWorkers, maxTasks int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderTask(ctx, task)
	}
}

// renderTask renders one band with a sampler owned by this task. A panic is
// reported as the band's error and leaves other bands untouched.
func (w *Worker) renderTask(ctx context.Context, task BandTask) (result BandResult) {
	result.Band = task.Band
	defer func() {
		if r := recover(); r != nil {
			result.Pixels = nil
			result.Error = fmt.Errorf("worker %d: band %d (rows %d-%d) panicked: %v",
				w.ID, task.Band.Index, task.Band.Start, task.Band.End, r)
		}
	}()

	sampler := core.NewSeededSampler(task.Seed)
	pixels, stats, err := w.renderer.RenderBand(ctx, task.Band, sampler)
	if err != nil {
		err = fmt.Errorf("band %d: %w", task.Band.Index, err)
	}
	result.Pixels = pixels
	result.Stats = stats
	result.Error = err
	return result
}
