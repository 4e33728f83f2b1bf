package sysinfo

import (
	"context"
	"strings"
	"testing"
)

func TestDescribeAlwaysReturnsHost(t *testing.T) {
	h, err := Describe(context.Background())
	if err != nil {
		t.Logf("partial host info: %v", err)
	}
	if h.Logical <= 0 {
		t.Fatalf("Logical = %d, want > 0", h.Logical)
	}
	if h.GoMaxProc <= 0 {
		t.Fatalf("GoMaxProc = %d, want > 0", h.GoMaxProc)
	}
}

func TestHostString(t *testing.T) {
	h := Host{Physical: 4, Logical: 8, GoMaxProc: 8, MemTotal: 16 << 30, MemAvail: 8 << 30}
	s := h.String()
	for _, want := range []string{"CPU: unknown", "4 physical / 8 logical", "16.0 GiB total", "8.0 GiB available"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q missing %q", s, want)
		}
	}
}
