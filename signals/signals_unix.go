//go:build !windows
// +build !windows

// File: signals/signals_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix signal numbers, taken from the per-platform syscall constants so the
// values match the host OS (SIGUSR1 is 10 on Linux, 30 on macOS).

package signals

import "syscall"

const (
	SIGHUP  = int(syscall.SIGHUP)
	SIGINT  = int(syscall.SIGINT)
	SIGQUIT = int(syscall.SIGQUIT)
	SIGTERM = int(syscall.SIGTERM)
	SIGUSR1 = int(syscall.SIGUSR1)
	SIGUSR2 = int(syscall.SIGUSR2)
	SIGCONT = int(syscall.SIGCONT)
)
