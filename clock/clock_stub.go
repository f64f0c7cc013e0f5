//go:build !linux
// +build !linux

// File: clock/clock_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without clock_gettime access. Wall and monotonic
// readings come from the runtime clock; CPU-time clocks are unavailable.

package clock

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("clock: not supported on this platform")

var monotonicBase = time.Now()

func nowPlatform(c ID) (sec, nsec int64, err error) {
	switch c {
	case Realtime:
		now := time.Now()
		return now.Unix(), int64(now.Nanosecond()), nil
	case Monotonic:
		d := time.Since(monotonicBase)
		return int64(d / time.Second), int64(d % time.Second), nil
	}
	return 0, 0, errUnsupported
}

func resolutionPlatform(c ID) (time.Duration, error) {
	switch c {
	case Realtime, Monotonic:
		return time.Nanosecond, nil
	}
	return 0, errUnsupported
}
