package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator applies a filter to entries, splitting large inputs
// into chunks evaluated in parallel. Output order always matches input
// order.
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

var _ EntryEvaluator = (*ConcurrentEvaluator)(nil)

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the entries matching filter
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter Filter, entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return []Entry{}, nil
	}

	// Small inputs are not worth the goroutines
	if len(entries) <= e.batchSize || e.workerCount == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return evaluateSequential(filter, entries), nil
	}

	return e.evaluateConcurrent(ctx, filter, entries)
}

func evaluateSequential(filter Filter, entries []Entry) []Entry {
	matches := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if filter.Evaluate(entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter Filter, entries []Entry) ([]Entry, error) {
	chunkSize := max(len(entries)/e.workerCount, e.batchSize)
	chunks := (len(entries) + chunkSize - 1) / chunkSize
	results := make([][]Entry, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(entries))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluateSequential(filter, entries[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]Entry, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches, nil
}
