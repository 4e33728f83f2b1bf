package output

import (
	"fmt"
	"io"
	"sync"
)

// LineWriter serialises whole lines from concurrent workers onto one stream.
// Each line reaches the underlying writer as soon as it is written.
type LineWriter struct {
	mu      sync.Mutex
	w       io.Writer
	lines   uint64
	discard bool
	err     error
}

func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// Discard returns a writer that counts lines but writes nothing.
func Discard() *LineWriter {
	return &LineWriter{w: io.Discard, discard: true}
}

// WriteLine formats one line and writes it with a single Write call under
// the lock. The first write error is kept and later writes are dropped.
func (lw *LineWriter) WriteLine(format string, args ...any) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.lines++
	if lw.discard || lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, fmt.Sprintf(format+"\n", args...)); err != nil {
		lw.err = err
	}
}

// Prime writes the "<worker>: <n>" line for one prime.
func (lw *LineWriter) Prime(worker string, n int) {
	lw.WriteLine("%s: %d", worker, n)
}

// Flush reports the first write error. Lines are never held back, so there
// is nothing left to write.
func (lw *LineWriter) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.err
}

func (lw *LineWriter) Lines() uint64 {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.lines
}
