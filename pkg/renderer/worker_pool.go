package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowTask asks a worker to render one image row into a shared buffer
type RowTask struct {
	Row    int
	Buffer *PixelBuffer // Rows never overlap, so workers write without locking
}

// RowResult contains the statistics from rendering a row
type RowResult struct {
	Row   int
	Stats RenderStats
}

// WorkerPool runs a fixed number of workers that render rows in parallel
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	group       *errgroup.Group
	ctx         context.Context
	err         error
}

// Worker renders the rows it pulls from the task queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a pool sized for rows tasks. A non-positive
// numWorkers uses one worker per CPU. Workers stop taking rows once ctx is
// done.
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, rows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	wp := &WorkerPool{
		group:       group,
		ctx:         ctx,
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.group.Go(func() error {
			return worker.run(wp.ctx)
		})
	}
}

// Stop closes the task queue. Results stay readable until every worker has
// exited, after which GetResult reports false.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	go func() {
		wp.err = wp.group.Wait()
		close(wp.resultQueue)
	}()
}

// Err returns the error that stopped the workers. Only valid once GetResult
// has reported false.
func (wp *WorkerPool) Err() error {
	return wp.err
}

// SubmitTask submits a row to the worker pool
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
func (w *Worker) run(ctx context.Context) error {
	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats := w.raytracer.renderRow(task.Row, task.Buffer)
		w.resultQueue <- RowResult{Row: task.Row, Stats: stats}
	}
	return nil
}
