//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import "errors"

func pinPlatform(tid int, cpus []int) error {
	return errors.New("affinity: not supported on this platform")
}

func setNicePlatform(tid, nice int) error {
	return errors.New("affinity: not supported on this platform")
}
