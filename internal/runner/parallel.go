package runner

import (
	"context"
	"sync"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
)

// WorkerPool scans files concurrently
type WorkerPool struct {
	executor   *Executor
	maxWorkers int
}

// NewWorkerPool creates a pool with at most maxWorkers concurrent scans
func NewWorkerPool(executor *Executor, maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		executor:   executor,
		maxWorkers: maxWorkers,
	}
}

// ExecuteParallel scans every file and returns one run per file in input
// order. Files not yet started when ctx is cancelled are marked cancelled.
func (wp *WorkerPool) ExecuteParallel(ctx context.Context, files []discovery.DiscoveredFile) []*ScanRun {
	numFiles := len(files)
	if numFiles == 0 {
		return nil
	}

	workers := wp.maxWorkers
	if workers > numFiles {
		workers = numFiles
	}
	logger.Debug("starting %d worker(s) for %d file(s)", workers, numFiles)

	jobs := make(chan *scanJob, numFiles)
	results := make(chan *scanResult, numFiles)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, jobs, results, &wg)
	}

	for i := range files {
		jobs <- &scanJob{file: &files[i], index: i}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	runs := make([]*ScanRun, numFiles)
	for result := range results {
		runs[result.index] = result.run
		logger.Debug("[%s] %s (worker %d)", result.run.Status, result.run.File.RelativePath, result.workerID)
	}

	return runs
}

type scanJob struct {
	file  *discovery.DiscoveredFile
	index int
}

type scanResult struct {
	run      *ScanRun
	index    int
	workerID int
}

func (wp *WorkerPool) worker(ctx context.Context, workerID int, jobs <-chan *scanJob, results chan<- *scanResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		var run *ScanRun
		if ctx.Err() != nil {
			now := time.Now()
			run = &ScanRun{
				File:      job.file,
				StartTime: now,
				EndTime:   now,
				Status:    ScanCancelled,
				Error:     ctx.Err(),
			}
		} else {
			run = wp.executor.Execute(ctx, job.file)
		}

		results <- &scanResult{
			run:      run,
			index:    job.index,
			workerID: workerID,
		}
	}
}
