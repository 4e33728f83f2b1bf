//go:build !linux

package affinity

import (
	"errors"
	"runtime"
)

const Supported = false

var errUnsupported = errors.New("cpu affinity is not supported on " + runtime.GOOS)

func Pin(cpu int) (release func(), err error) {
	return func() {}, errUnsupported
}

func Current() ([]int, error) {
	return nil, errUnsupported
}
