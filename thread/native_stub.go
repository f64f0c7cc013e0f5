//go:build !linux
// +build !linux

// File: thread/native_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without tgkill/pthread_sigmask access.
// Lifecycle still works; signal operations report unsupported.

package thread

import "github.com/momentics/osthread/api"

func currentThreadID() int { return 0 }

func signalThread(tid, sig int) error { return api.ErrNotSupported }

func maskSignal(block bool, sig int) error { return api.ErrNotSupported }
