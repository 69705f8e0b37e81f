package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/benkalmus/contribstats/internal/worker"
)

func TestRunAll(t *testing.T) {
	t.Run("results keep input order", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5, 6, 7, 8}
		res, err := worker.RunAll(context.Background(), items, func(_ context.Context, n int) (string, error) {
			return fmt.Sprintf("job-%d", n), nil
		}, worker.Options{Workers: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != len(items) {
			t.Fatalf("len=%d want=%d", len(res), len(items))
		}
		for i, r := range res {
			if want := fmt.Sprintf("job-%d", items[i]); r.Output != want {
				t.Fatalf("res[%d]=%q want=%q", i, r.Output, want)
			}
		}
	})

	t.Run("partial output records per-job errors", func(t *testing.T) {
		boom := errors.New("boom")
		items := []int{1, 2, 3}
		res, err := worker.RunAll(context.Background(), items, func(_ context.Context, n int) (int, error) {
			if n == 2 {
				return 0, boom
			}
			return n * 10, nil
		}, worker.Options{Workers: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res[0].Err != nil || res[2].Err != nil {
			t.Fatalf("unexpected errors: %+v", res)
		}
		if !errors.Is(res[1].Err, boom) {
			t.Fatalf("res[1].Err=%v want boom", res[1].Err)
		}
	})

	t.Run("fail fast returns the first error", func(t *testing.T) {
		boom := errors.New("boom")
		items := make([]int, 64)
		var calls atomic.Int64
		_, err := worker.RunAll(context.Background(), items, func(_ context.Context, _ int) (int, error) {
			calls.Add(1)
			return 0, boom
		}, worker.Options{Workers: 2, FailurePolicy: worker.FailurePolicyFailFast})
		if !errors.Is(err, boom) {
			t.Fatalf("err=%v want boom", err)
		}
		if calls.Load() == int64(len(items)) {
			t.Fatalf("expected early cancellation, all %d jobs ran", len(items))
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := worker.RunAll(ctx, []int{1, 2, 3}, func(context.Context, int) (int, error) {
			return 0, nil
		}, worker.Options{})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err=%v want context.Canceled", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		res, err := worker.RunAll(context.Background(), nil, func(context.Context, int) (int, error) {
			return 0, nil
		}, worker.Options{})
		if err != nil || len(res) != 0 {
			t.Fatalf("res=%v err=%v", res, err)
		}
	})
}
