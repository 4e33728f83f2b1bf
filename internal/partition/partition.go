// Package partition splits the series [0, N) into equal contiguous chunks,
// one per worker.
package partition

import (
	"errors"

	"prime-bench-lab/internal/model"
)

var (
	ErrNoWorkers      = errors.New("worker count must be positive")
	ErrNegativeSeries = errors.New("series length must not be negative")
)

// Partition returns exactly workers ranges of length series/workers.
// Range i is [i*chunk, (i+1)*chunk). When workers does not divide series the
// tail [workers*chunk, series) is left uncovered; see Uncovered.
func Partition(series, workers int) ([]model.Range, error) {
	if workers <= 0 {
		return nil, ErrNoWorkers
	}
	if series < 0 {
		return nil, ErrNegativeSeries
	}

	chunk := series / workers
	ranges := make([]model.Range, workers)
	for i := range ranges {
		start := i * chunk
		ranges[i] = model.Range{Start: start, Stop: start + chunk}
	}
	return ranges, nil
}

// Uncovered reports how many values at the end of the series no partition
// scans. It is zero for invalid input.
func Uncovered(series, workers int) int {
	if workers <= 0 || series < 0 {
		return 0
	}
	return series % workers
}
