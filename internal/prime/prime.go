// Package prime implements trial-division primality tests and a lazy scan of
// a range.
package prime

import (
	"iter"
	"math"

	"prime-bench-lab/internal/model"
)

// Tester reports whether n is prime.
type Tester func(n int) bool

// IsPrime tests n by trial division up to floor(sqrt(n)).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; withinRoot(d, n); d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// withinRoot reports d*d <= n for positive d without overflowing.
func withinRoot(d, n int) bool {
	return d <= n/d
}

// IsPrimeReference is the benchmark's original test. It has no guard for
// small inputs, so 0 and 1 are reported prime.
func IsPrimeReference(n int) bool {
	limit := int(math.Sqrt(float64(n))) + 1
	for d := 2; d < limit; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TesterFor(reference bool) Tester {
	if reference {
		return IsPrimeReference
	}
	return IsPrime
}

// Primes yields the primes in r in ascending order. The sequence is lazy and
// can be ranged over any number of times.
func Primes(r model.Range, test Tester) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := r.Start; n < r.Stop; n++ {
			if test(n) && !yield(n) {
				return
			}
		}
	}
}

func Collect(seq iter.Seq[int]) []int {
	var out []int
	for n := range seq {
		out = append(out, n)
	}
	return out
}
