//go:build linux
// +build linux

// File: clock/clock_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux readings via clock_gettime(2)/clock_getres(2).

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func clockid(c ID) (int32, error) {
	switch c {
	case Realtime:
		return unix.CLOCK_REALTIME, nil
	case Monotonic:
		return unix.CLOCK_MONOTONIC, nil
	case ProcessCPU:
		return unix.CLOCK_PROCESS_CPUTIME_ID, nil
	case ThreadCPU:
		return unix.CLOCK_THREAD_CPUTIME_ID, nil
	}
	return 0, fmt.Errorf("clock: unknown clock id %d", c)
}

func nowPlatform(c ID) (sec, nsec int64, err error) {
	id, err := clockid(c)
	if err != nil {
		return 0, 0, err
	}
	var ts unix.Timespec
	if err := unix.ClockGettime(id, &ts); err != nil {
		return 0, 0, fmt.Errorf("clock: clock_gettime: %w", err)
	}
	return int64(ts.Sec), int64(ts.Nsec), nil
}

func resolutionPlatform(c ID) (time.Duration, error) {
	id, err := clockid(c)
	if err != nil {
		return 0, err
	}
	var ts unix.Timespec
	if err := unix.ClockGetres(id, &ts); err != nil {
		return 0, fmt.Errorf("clock: clock_getres: %w", err)
	}
	return time.Duration(ts.Nano()), nil
}
