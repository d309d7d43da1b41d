package bounds

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/bounds/internal/parallel"
)

// Result is the outcome of one computation in a batch.
type Result struct {
	Box BoundingBox
	Err error
}

// ComputeAll computes the bounds of every path independently, spreading
// the work over workers goroutines (GOMAXPROCS when workers <= 0).
// results[i] belongs to paths[i]. A failing path, including one whose
// transform panics, only affects its own Result.
func ComputeAll(paths [][]Segment, workers int, opts ...Option) []Result {
	return computeAll(len(paths), workers, func(i int) (BoundingBox, error) {
		return ComputeBounds(paths[i], opts...)
	})
}

// ComputeAllObjects is ComputeAll for drawables; see ObjectBounds.
func ComputeAllObjects(objs []Drawable, workers int, opts ...Option) []Result {
	return computeAll(len(objs), workers, func(i int) (BoundingBox, error) {
		return ObjectBounds(objs[i], opts...)
	})
}

func computeAll(n, workers int, fn func(i int) (BoundingBox, error)) []Result {
	results := make([]Result, n)
	if n == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(min(workers, n))
	defer pool.Close()

	work := make([]func(), n)
	for i := range work {
		work[i] = func() {
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{Err: fmt.Errorf("bounds: item %d: panic: %v", i, r)}
				}
			}()
			box, err := fn(i)
			results[i] = Result{Box: box, Err: err}
		}
	}
	pool.ExecuteAll(work)

	Logger().Debug("bounds: batch computed", slog.Int("items", n), slog.Int("workers", pool.Workers()))
	return results
}
