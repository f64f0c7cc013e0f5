// File: api/thread.go
// Package api defines the Thread contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Thread manages one OS-level thread: creation, termination, synchronization
// and signal disposition. Every operation reports success as a bool; failure
// details go to the diagnostic logger, not the caller.
type Thread interface {
	// Start spawns the native thread. Idempotent: starting a started
	// thread is a success no-op.
	Start() bool

	// Stop requests asynchronous, best-effort cancellation. The thread
	// body may keep running briefly after Stop returns; follow with Join
	// for a termination guarantee.
	Stop() bool

	// Join blocks until the thread body has returned. The sole blocking
	// operation on this interface.
	Join() bool

	// BlockSignal and UnblockSignal edit the calling thread's signal
	// mask, not necessarily the owned thread's.
	BlockSignal(sig int) bool
	UnblockSignal(sig int) bool

	// SendSignal delivers sig directly to the owned native thread.
	SendSignal(sig int) bool

	// SetSignalHandler installs a process-wide handler for sig. The
	// disposition is shared by every thread in the process.
	SetSignalHandler(sig int, fn SignalHandlerFunc) bool
}

// SignalHandlerFunc is a process-wide signal handler. It receives the signal
// number and nothing else. Handlers must be short, re-entrancy safe, and must
// not touch non-atomic shared state.
type SignalHandlerFunc func(sig int)
