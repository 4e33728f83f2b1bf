// Command printprimes times a prime scan over [0, N) split across T
// goroutines that are started and joined directly.
package main

import (
	"context"
	"os"

	"prime-bench-lab/internal/cli"
	"prime-bench-lab/internal/config"
)

func main() {
	ctx := context.Background()
	os.Exit(cli.Main(ctx, config.StrategyThreads, os.Args[1:], os.Stdout, os.Stderr))
}
