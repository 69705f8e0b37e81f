// Package worker runs independent jobs over a bounded pool of
// goroutines. Jobs here are whole per-identity analysis runs operating
// on distinct files, so there is no shared mutable state and no retry
// machinery: a job either succeeds or its error is reported.
package worker

import (
	"context"
	"sync"
)

type FailurePolicy int

const (
	// FailurePolicyPartialOutput records per-job errors and lets the
	// remaining jobs finish.
	FailurePolicyPartialOutput FailurePolicy = iota
	// FailurePolicyFailFast cancels the run on the first job error.
	FailurePolicyFailFast
)

type Options struct {
	Workers       int
	FailurePolicy FailurePolicy
}

// Result holds the output for one input item.
type Result[In any, Out any] struct {
	Input  In
	Output Out
	Err    error
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 4
	}
	return o
}

// RunAll processes every item and returns results in input order.
// Under FailurePolicyFailFast the first job error aborts the run and is
// returned; otherwise per-job errors live on the individual results.
func RunAll[In any, Out any](
	ctx context.Context,
	items []In,
	process func(context.Context, In) (Out, error),
	opts Options,
) ([]Result[In, Out], error) {
	opts = opts.withDefaults()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]Result[In, Out], len(items))

	type job struct {
		idx int
		in  In
	}
	jobs := make(chan job)

	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if runCtx.Err() != nil {
					return
				}
				res, err := process(runCtx, j.in)
				out[j.idx] = Result[In, Out]{Input: j.in, Output: res, Err: err}
				if err != nil && opts.FailurePolicy == FailurePolicyFailFast {
					fail(err)
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case jobs <- job{idx: i, in: item}:
			case <-runCtx.Done():
				return
			}
		}
	}()

	wg.Wait()

	mu.Lock()
	err := firstErr
	mu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
