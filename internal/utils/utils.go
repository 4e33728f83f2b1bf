package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", 0)
	now    = time.Now
)

// SetOutput redirects LogMessage. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := logger.Writer()
	logger.SetOutput(w)
	return prev
}

// LogMessage writes a timestamped diagnostic line to stderr.
// Messages marked debug are only written when enabled is true.
func LogMessage(message string, debug, enabled bool) {
	if debug && !enabled {
		return
	}
	timestamp := now().Format("2006-01-02 15:04:05")

	mu.Lock()
	defer mu.Unlock()
	logger.Printf("%s | %s", timestamp, message)
}

// FormatCount renders large counts with a K/M/G suffix.
func FormatCount(count uint64) string {
	switch {
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.2fG", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.2fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}
