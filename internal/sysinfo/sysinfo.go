// Package sysinfo describes the host a benchmark runs on.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

type Host struct {
	Model     string
	Mhz       float64
	Physical  int
	Logical   int
	MemTotal  uint64
	MemAvail  uint64
	GoMaxProc int
}

// Describe collects what it can about the host. Probes that fail leave
// their fields zero and are returned joined in err; the Host is always
// usable.
func Describe(ctx context.Context) (Host, error) {
	h := Host{
		Logical:   runtime.NumCPU(),
		GoMaxProc: runtime.GOMAXPROCS(0),
	}
	var errs []error

	info, err := gcpu.InfoWithContext(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("cpu info: %w", err))
	case len(info) > 0:
		h.Model = info[0].ModelName
		h.Mhz = info[0].Mhz
	}

	if n, err := gcpu.CountsWithContext(ctx, false); err != nil {
		errs = append(errs, fmt.Errorf("physical cores: %w", err))
	} else {
		h.Physical = n
	}
	if n, err := gcpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		h.Logical = n
	}

	if vm, err := gmem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else {
		h.MemTotal = vm.Total
		h.MemAvail = vm.Available
	}

	return h, errors.Join(errs...)
}

func (h Host) String() string {
	model := h.Model
	if model == "" {
		model = "unknown"
	}
	return fmt.Sprintf("CPU: %s (%.0f MHz), cores: %d physical / %d logical, GOMAXPROCS: %d, memory: %.1f GiB total / %.1f GiB available",
		model, h.Mhz, h.Physical, h.Logical, h.GoMaxProc,
		float64(h.MemTotal)/(1<<30), float64(h.MemAvail)/(1<<30))
}
