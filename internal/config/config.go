// config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"prime-bench-lab/internal/partition"
)

var ErrInvalidStrategy = errors.New("unknown strategy")

// Default returns the compiled-in constants for strategy.
func Default(strategy string) Config {
	if strategy == StrategyPool {
		return Config{Series: 1_000_000, Workers: 8, Strategy: StrategyPool}
	}
	return Config{Series: 10_000_000, Workers: 4, Strategy: StrategyThreads}
}

// LoadConfig overlays the JSON file at path on base. Fields missing from the
// file keep their base values.
func LoadConfig(path string, base Config) (Config, error) {
	config := base

	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers=%d: %w", c.Workers, partition.ErrNoWorkers))
	}
	if c.Series < 0 {
		errs = append(errs, fmt.Errorf("series=%d: %w", c.Series, partition.ErrNegativeSeries))
	}
	if c.Strategy != StrategyThreads && c.Strategy != StrategyPool {
		errs = append(errs, fmt.Errorf("%w %q", ErrInvalidStrategy, c.Strategy))
	}
	return errors.Join(errs...)
}
