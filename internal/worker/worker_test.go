package worker

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"prime-bench-lab/internal/model"
	"prime-bench-lab/internal/prime"
)

func TestProcessEmitsInOrder(t *testing.T) {
	job := model.Job{ID: 2, Worker: "Thread-2", Range: model.Range{Start: 10, Stop: 20}, Created: time.Now()}

	var got []int
	res := Process(context.Background(), job, prime.IsPrime, func(w string, n int) {
		if w != "Thread-2" {
			t.Errorf("emit worker = %q", w)
		}
		got = append(got, n)
	})

	if res.Err != nil {
		t.Fatalf("Err = %v", res.Err)
	}
	if want := []int{11, 13, 17, 19}; !slices.Equal(got, want) {
		t.Fatalf("emitted %v, want %v", got, want)
	}
	if res.Primes != 4 || res.JobID != 2 || res.Worker != "Thread-2" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Latency < 0 {
		t.Fatalf("Latency = %v", res.Latency)
	}
}

func TestProcessNilEmitStillCounts(t *testing.T) {
	job := model.Job{ID: 1, Worker: "Thread-1", Range: model.Range{Start: 0, Stop: 10}}
	res := Process(context.Background(), job, prime.IsPrimeReference, nil)
	// 0, 1, 2, 3, 5, 7
	if res.Primes != 6 {
		t.Fatalf("Primes = %d, want 6", res.Primes)
	}
}

func TestProcessCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Process(ctx, model.Job{Worker: "Thread-1", Range: model.Range{Start: 0, Stop: 100}}, prime.IsPrime, nil)
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("Err = %v, want context.Canceled", res.Err)
	}
	if res.Primes != 0 {
		t.Fatalf("Primes = %d, want 0", res.Primes)
	}
}

func TestProcessRecoversPanic(t *testing.T) {
	boom := func(n int) bool {
		if n == 5 {
			panic("bad candidate")
		}
		return prime.IsPrime(n)
	}

	res := Process(context.Background(), model.Job{Worker: "Thread-3", Range: model.Range{Start: 0, Stop: 10}}, boom, nil)
	if !errors.Is(res.Err, ErrWorkerPanic) {
		t.Fatalf("Err = %v, want ErrWorkerPanic", res.Err)
	}
	if res.Primes != 2 {
		t.Fatalf("Primes = %d, want 2 before the panic", res.Primes)
	}
}
