package batch

import (
	"context"

	"github.com/gammazero/workerpool"
)

// DefaultWorkers is used when a non-positive worker count is given.
const DefaultWorkers = 4

// FetchFunc fetches a single entity by id.
type FetchFunc[T any] func(ctx context.Context, id string) (T, error)

// FetchAll runs fetch for every id on a pool of workers and returns the
// results in the order of ids. When any fetch fails, the error of the
// lowest-indexed failing id is returned.
func FetchAll[T any](ctx context.Context, ids []string, workers int, fetch FetchFunc[T]) ([]T, error) {
	results := make([]T, len(ids))
	if len(ids) == 0 {
		return results, nil
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	errs := make([]error, len(ids))
	pool := workerpool.New(workers)
	for i, id := range ids {
		i, id := i, id
		pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = fetch(ctx, id)
		})
	}
	pool.StopWait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
