//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

const Supported = true

// maxCPUs is the capacity of unix.CPUSet.
const maxCPUs = 1024

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to cpu. The returned release func restores the previous mask and must be
// called from the same goroutine.
func Pin(cpu int) (release func(), err error) {
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return func() {}, fmt.Errorf("read affinity: %w", err)
	}

	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return func() {}, fmt.Errorf("pin to cpu %d: %w", cpu, err)
	}

	return func() {
		// If the old mask cannot be restored the thread stays locked and is
		// torn down with the goroutine.
		if err := unix.SchedSetaffinity(0, &prev); err == nil {
			runtime.UnlockOSThread()
		}
	}, nil
}

// Current returns the CPUs the calling thread may run on.
func Current() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}
	count := set.Count()
	cpus := make([]int, 0, count)
	for i := 0; i < maxCPUs && len(cpus) < count; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}
