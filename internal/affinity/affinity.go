// Package affinity pins benchmark workers to CPUs.
package affinity

import "runtime"

// CPUFor maps worker index i onto the available CPUs round-robin.
func CPUFor(i int) int {
	n := runtime.NumCPU()
	if n <= 0 || i < 0 {
		return 0
	}
	return i % n
}
