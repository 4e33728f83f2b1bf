// Package harness runs one partition per worker and times the whole scan.
//
// Two strategies are provided. StrategyThreads starts one goroutine per
// partition and joins them with a WaitGroup. StrategyPool submits the
// partitions to a fixed pool of workers over a jobs channel and drains a
// results channel that is closed once the pool has finished.
package harness

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"prime-bench-lab/internal/affinity"
	"prime-bench-lab/internal/config"
	"prime-bench-lab/internal/model"
	"prime-bench-lab/internal/output"
	"prime-bench-lab/internal/partition"
	"prime-bench-lab/internal/prime"
	"prime-bench-lab/internal/utils"
	"prime-bench-lab/internal/worker"
)

// WorkerName is the identity printed in front of every prime.
func WorkerName(i int) string {
	return fmt.Sprintf("Thread-%d", i+1)
}

// Run scans [0, cfg.Series) with cfg.Workers workers. Prime lines go to out
// (nil drops them) and the per-worker "Created ..." lines go to diag. It
// returns only after every worker has completed.
func Run(ctx context.Context, cfg config.Config, out *output.LineWriter, diag io.Writer) (model.Report, error) {
	if err := cfg.Validate(); err != nil {
		return model.Report{}, fmt.Errorf("invalid config: %w", err)
	}
	ranges, err := partition.Partition(cfg.Series, cfg.Workers)
	if err != nil {
		return model.Report{}, err
	}

	report := model.Report{
		Strategy:  cfg.Strategy,
		Series:    cfg.Series,
		Workers:   cfg.Workers,
		Uncovered: partition.Uncovered(cfg.Series, cfg.Workers),
	}
	if report.Uncovered > 0 {
		utils.LogMessage(fmt.Sprintf("[harness] series=%d is not divisible by workers=%d, last %d values are not scanned",
			cfg.Series, cfg.Workers, report.Uncovered), false, cfg.Debug)
	}

	r := &runner{
		cfg:  cfg,
		test: prime.TesterFor(cfg.Reference),
		out:  out,
		diag: diag,
	}

	startAll := time.Now()
	switch cfg.Strategy {
	case config.StrategyPool:
		report.Results = r.pool(ctx, ranges)
	default:
		report.Results = r.threads(ctx, ranges)
	}
	report.Elapsed = time.Since(startAll)

	slices.SortFunc(report.Results, func(a, b model.Result) int {
		return cmp.Compare(a.JobID, b.JobID)
	})

	var errs []error
	for _, res := range report.Results {
		report.Primes += res.Primes
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		utils.LogMessage(fmt.Sprintf("[harness] %s range=%s primes=%s latency=%s",
			res.Worker, res.Range, utils.FormatCount(uint64(res.Primes)), res.Latency), true, cfg.Debug)
	}
	return report, errors.Join(errs...)
}

// Summary is the closing line of every run.
func Summary(report model.Report) string {
	return fmt.Sprintf("%d Threads took %.6f seconds to complete", report.Workers, report.Elapsed.Seconds())
}

type runner struct {
	cfg  config.Config
	test prime.Tester
	out  *output.LineWriter
	diag io.Writer
}

func (r *runner) job(i int, rg model.Range) model.Job {
	job := model.Job{
		ID:      i + 1,
		Worker:  WorkerName(i),
		Range:   rg,
		Created: time.Now(),
	}
	if r.diag != nil {
		fmt.Fprintf(r.diag, "Created %s with start=%d, stop=%d\n", job.Worker, rg.Start, rg.Stop)
	}
	return job
}

func (r *runner) emit() worker.Emit {
	if r.out == nil {
		return nil
	}
	return r.out.Prime
}

// pin restricts the calling goroutine to a CPU chosen for slot. Failure is
// logged and the worker runs unpinned.
func (r *runner) pin(slot int) func() {
	if !r.cfg.Pin {
		return func() {}
	}
	cpu := affinity.CPUFor(slot)
	release, err := affinity.Pin(cpu)
	if err != nil {
		utils.LogMessage(fmt.Sprintf("[harness] worker %d: %v (running unpinned)", slot+1, err), false, r.cfg.Debug)
		return release
	}
	if r.cfg.Debug {
		mask, err := affinity.Current()
		if err != nil {
			utils.LogMessage(fmt.Sprintf("[harness] worker %d pinned to cpu %d, mask unreadable: %v", slot+1, cpu, err), true, r.cfg.Debug)
		} else {
			utils.LogMessage(fmt.Sprintf("[harness] worker %d pinned to cpu %d, mask %v", slot+1, cpu, mask), true, r.cfg.Debug)
		}
	}
	return release
}

// threads starts one goroutine per range and waits for all of them.
func (r *runner) threads(ctx context.Context, ranges []model.Range) []model.Result {
	results := make([]model.Result, len(ranges))

	var wg sync.WaitGroup
	for i, rg := range ranges {
		job := r.job(i, rg)

		wg.Add(1)
		go func(slot int, job model.Job) {
			defer wg.Done()
			release := r.pin(slot)
			defer release()

			results[slot] = worker.Process(ctx, job, r.test, r.emit())
		}(i, job)
	}
	wg.Wait()

	return results
}

// pool feeds ranges to exactly len(ranges) pool workers and collects one
// result per range.
func (r *runner) pool(ctx context.Context, ranges []model.Range) []model.Result {
	numWorkers := len(ranges)
	jobs := make(chan model.Job, numWorkers)
	results := make(chan model.Result, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(slot int) {
			defer wg.Done()
			release := r.pin(slot)
			defer release()

			for job := range jobs {
				results <- worker.Process(ctx, job, r.test, r.emit())
			}
		}(w)
	}

	// Close results after the pool drains
	go func() {
		wg.Wait()
		close(results)
	}()

	for i, rg := range ranges {
		jobs <- r.job(i, rg)
	}
	close(jobs)

	collected := make([]model.Result, 0, len(ranges))
	for res := range results {
		collected = append(collected, res)
	}
	return collected
}
