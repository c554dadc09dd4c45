package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// BatchParser parses a fixed set of documents, returning results in
// submission order.
type BatchParser struct {
	parser  Parser
	workers int
}

// NewBatchParser creates a batch parser. If workers <= 0, it defaults to
// runtime.NumCPU().
func NewBatchParser(parser Parser, workers int) *BatchParser {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchParser{
		parser:  parser,
		workers: workers,
	}
}

// ParseBatch parses multiple documents in parallel. Results line up with
// the input paths by index.
func (bp *BatchParser) ParseBatch(ctx context.Context, paths []string) *BatchResult {
	if len(paths) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	// Parallelism is not worth the setup for a couple of documents
	if len(paths) <= 2 {
		return bp.parseSequential(ctx, paths)
	}

	return bp.parseParallel(ctx, paths)
}

func (bp *BatchParser) parseSequential(ctx context.Context, paths []string) *BatchResult {
	results := make([]*JobResult, 0, len(paths))

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return &BatchResult{
				Results:       results,
				TotalJobs:     len(paths),
				CompletedJobs: len(results),
				FailedJobs:    countFailed(results),
			}
		default:
		}

		in, err := bp.parser.Parse(ctx, path)
		results = append(results, &JobResult{
			ID:       path,
			Instance: in,
			Error:    err,
		})
	}

	return &BatchResult{
		Results:       results,
		TotalJobs:     len(paths),
		CompletedJobs: len(results),
		FailedJobs:    countFailed(results),
	}
}

func (bp *BatchParser) parseParallel(ctx context.Context, paths []string) *BatchResult {
	numWorkers := bp.workers
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	jobs := make(chan indexedPath, len(paths))
	resultsChan := make(chan *indexedResult, len(paths))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				in, err := bp.parser.Parse(ctx, job.path)
				resultsChan <- &indexedResult{
					index:    job.index,
					path:     job.path,
					instance: in,
					err:      err,
				}
			}
		}()
	}

	go func() {
		for i, path := range paths {
			select {
			case <-ctx.Done():
			case jobs <- indexedPath{index: i, path: path}:
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make([]*JobResult, len(paths))
	completed := 0
	failed := 0

	for ir := range resultsChan {
		results[ir.index] = &JobResult{
			ID:       ir.path,
			Instance: ir.instance,
			Error:    ir.err,
		}
		completed++
		if ir.err != nil {
			failed++
		}
	}

	return &BatchResult{
		Results:       results,
		TotalJobs:     len(paths),
		CompletedJobs: completed,
		FailedJobs:    failed,
	}
}

type indexedPath struct {
	index int
	path  string
}

type indexedResult struct {
	index    int
	path     string
	instance *model.Instance
	err      error
}

// ParseBatchSimple is a convenience function for one-off batch parsing.
func ParseBatchSimple(ctx context.Context, parser Parser, paths []string) *BatchResult {
	bp := NewBatchParser(parser, runtime.NumCPU())
	return bp.ParseBatch(ctx, paths)
}
