// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the osthread library. The public Thread surface
// collapses these to booleans; they appear in log fields and in the lower
// level affinity/clock packages.

package api

import "fmt"

var (
	ErrNotStarted    = fmt.Errorf("thread is not started")
	ErrAlreadyJoined = fmt.Errorf("thread already joined")
	ErrInvalidSignal = fmt.Errorf("invalid signal number")
	ErrNotSupported  = fmt.Errorf("operation not supported")
)
