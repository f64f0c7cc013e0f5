//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation on sched_setaffinity(2) and setpriority(2). Both
// accept a tid directly, so no pthread handle is involved.

package affinity

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// pinPlatform sets the affinity mask of thread tid for Linux.
func pinPlatform(tid int, cpus []int) error {
	if len(cpus) == 0 {
		return errors.New("affinity: no cpus given")
	}
	var set unix.CPUSet
	set.Zero()
	for _, c := range cpus {
		set.Set(c)
	}
	if err := unix.SchedSetaffinity(tid, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity tid %d: %w", tid, err)
	}
	return nil
}

// setNicePlatform sets the niceness of thread tid for Linux. PRIO_PROCESS
// with a tid addresses a single thread.
func setNicePlatform(tid, nice int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, nice); err != nil {
		return fmt.Errorf("affinity: setpriority tid %d: %w", tid, err)
	}
	return nil
}
