package model

import (
	"fmt"
	"time"
)

// Range is the half-open interval [Start, Stop).
type Range struct {
	Start int
	Stop  int
}

func (r Range) Len() int {
	if r.Stop < r.Start {
		return 0
	}
	return r.Stop - r.Start
}

func (r Range) Contains(n int) bool {
	return n >= r.Start && n < r.Stop
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.Stop)
}

// Job binds one partition to one worker identity.
type Job struct {
	ID      int
	Worker  string
	Range   Range
	Created time.Time
}

type Result struct {
	JobID      int
	Worker     string
	Range      Range
	Primes     int           // primes found in Range
	Latency    time.Duration // scan time
	JobCreated time.Time     // when the job was handed to a worker
	Err        error
}

type Report struct {
	Strategy  string
	Series    int
	Workers   int
	Results   []Result
	Primes    int
	Uncovered int // tail of the series no partition covers
	Elapsed   time.Duration
}
