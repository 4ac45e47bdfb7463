package team

import (
	"context"
	"sync"
)

// Result pairs one input item with the outcome of processing it. Every item
// fed to Run yields exactly one Result; a failure never aborts the batch.
type Result[T any, U any] struct {
	Item  T
	Value U
	Err   error
}

func (r Result[T, U]) Ok() bool {
	return r.Err == nil
}

// WorkerFunc processes a single job.
type WorkerFunc[T any, U any] func(ctx context.Context, job T) (U, error)

// Team is a generic bounded worker pool: WorkerCount goroutines drain a shared
// job queue, so at most WorkerCount operations are in flight at any instant.
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
}

// Run feeds jobs to the pool and blocks until every job has produced a result.
// WorkerCount is clamped to [1, len(jobs)]. Results arrive in completion
// order, not submission order. There is no mid-batch cancellation: ctx is
// handed to workers for their own calls, but Run always waits for all of them.
func (t *Team[T, U]) Run(ctx context.Context, jobs []T) []Result[T, U] {
	if len(jobs) == 0 {
		return nil
	}

	workerCount := t.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	jobChan := make(chan T, len(jobs))
	resultChan := make(chan Result[T, U], len(jobs))
	var wg sync.WaitGroup

	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				value, err := t.Worker(ctx, job)
				resultChan <- Result[T, U]{Item: job, Value: value, Err: err}
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]Result[T, U], 0, len(jobs))
	for res := range resultChan {
		results = append(results, res)
	}
	return results
}
