// config/types.go
package config

const (
	StrategyThreads = "threads"
	StrategyPool    = "pool"
)

// Config describes one benchmark run.
type Config struct {
	Series    int    `json:"series"`    // scan [0, Series)
	Workers   int    `json:"workers"`   // one partition per worker
	Strategy  string `json:"strategy"`  // "threads" or "pool"
	Reference bool   `json:"reference"` // use the unguarded primality test
	Quiet     bool   `json:"quiet"`     // scan without printing primes
	Pin       bool   `json:"pin"`       // pin each worker to a CPU
	Debug     bool   `json:"debug"`
}
