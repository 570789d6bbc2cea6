package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
)

// Run processes items on a fixed pool of workers and aggregates their outcomes.
//
// Results are collected in completion order. Run returns once every item has reported, after
// which the counters in the result are final. Jobs not yet started when ctx is cancelled report
// as failures.
func (e *FetchEngine) Run(ctx context.Context, items []models.WorkItem, opts RunOpts, progress chan<- ProgressUpdate) (*RunResult, error) {
	if e.resolver == nil {
		return nil, fmt.Errorf("%w: no lyric resolver", shared.ErrServiceUnavailable)
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	result := newRunResult(opts)
	result.Queued = len(items)
	counters := &Counters{}

	jobs := make(chan models.WorkItem, len(items))
	results := make(chan models.JobResult, len(items))

	for _, item := range items {
		jobs <- item
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go e.fetchWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	sendProgress(progress, fetchStartUpdate(len(items), opts.Workers))

	completed := 0
	result.Results = make([]models.JobResult, 0, len(items))
	for res := range results {
		completed++
		counters.Apply(res)
		result.Results = append(result.Results, res)
		sendProgress(progress, jobDoneUpdate(completed, len(items), res))
	}

	result.Summary = counters.Snapshot()
	result.FinishedAt = time.Now()
	sendProgress(progress, summaryUpdate(result))
	return result, nil
}

// fetchWorker is a worker goroutine that processes items from the jobs channel.
func (e *FetchEngine) fetchWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan models.WorkItem,
	results chan<- models.JobResult,
	opts RunOpts,
) {
	defer wg.Done()

	for item := range jobs {
		if err := ctx.Err(); err != nil {
			results <- models.JobResult{Item: item, Outcome: models.OutcomeFailed, Err: err}
			continue
		}
		results <- e.Process(ctx, item, opts)
	}
}

func newRunResult(opts RunOpts) *RunResult {
	return &RunResult{
		ID:        shared.GenerateID(),
		Mode:      opts.Mode,
		ModeName:  opts.Mode.String(),
		Romanize:  opts.Romanize,
		Embed:     opts.Embed,
		StartedAt: time.Now(),
	}
}
