package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prime-bench-lab/internal/model"
	"prime-bench-lab/internal/prime"
)

var ErrWorkerPanic = errors.New("worker panicked")

// Emit receives each prime as soon as it is found.
type Emit func(worker string, n int)

// Process scans job.Range with test.
// - Every prime is handed to emit immediately, in ascending order.
// - A panic in the scan is recovered into Result.Err so the caller's join
//   always completes.
func Process(ctx context.Context, job model.Job, test prime.Tester, emit Emit) (res model.Result) {
	start := time.Now()
	res = model.Result{
		JobID:      job.ID,
		Worker:     job.Worker,
		Range:      job.Range,
		JobCreated: job.Created,
	}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%w: %s: %v", ErrWorkerPanic, job.Worker, r)
		}
		res.Latency = time.Since(start)
	}()

	select {
	case <-ctx.Done():
		res.Err = ctx.Err()
		return res
	default:
	}

	for n := range prime.Primes(job.Range, test) {
		res.Primes++
		if emit != nil {
			emit(job.Worker, n)
		}
	}
	return res
}
