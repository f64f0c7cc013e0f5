// Package thread
// Author: momentics <momentics@gmail.com>
//
// One Thread owns one native OS thread: a goroutine locked to its kernel
// thread for its whole lifetime, with the kernel thread id captured at entry.
// The package provides start/stop/join lifecycle plus per-thread signal
// delivery, calling-thread mask edits, process-wide handler installation,
// and CPU affinity/priority control on the owned thread.
//
// Lifecycle fields are not locked internally: concurrent Start/Stop/Join on
// the same Thread from multiple goroutines must be serialized by the caller.
// Signal handler state, being process-global, is locked in package signals.
package thread
