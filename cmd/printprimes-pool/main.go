// Command printprimes-pool times a prime scan over [0, N) whose T chunks are
// submitted to a fixed pool of T workers.
package main

import (
	"context"
	"os"

	"prime-bench-lab/internal/cli"
	"prime-bench-lab/internal/config"
)

func main() {
	ctx := context.Background()
	os.Exit(cli.Main(ctx, config.StrategyPool, os.Args[1:], os.Stdout, os.Stderr))
}
