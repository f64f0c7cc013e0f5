//go:build windows
// +build windows

// File: signals/signals_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows exposes only a small signal surface; the Unix-only numbers are
// left undefined so misuse fails at compile time.

package signals

import "syscall"

const (
	SIGHUP  = int(syscall.SIGHUP)
	SIGINT  = int(syscall.SIGINT)
	SIGQUIT = int(syscall.SIGQUIT)
	SIGTERM = int(syscall.SIGTERM)
)
