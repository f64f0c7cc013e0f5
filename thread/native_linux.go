//go:build linux
// +build linux

// File: thread/native_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux native-thread calls: tid capture via gettid(2), directed delivery
// via tgkill(2), calling-thread mask edits via rt_sigprocmask through
// pthread_sigmask semantics.

package thread

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/osthread/api"
)

const sigsetWordBits = uint(unsafe.Sizeof(unix.Sigset_t{}.Val[0]) * 8)

// currentThreadID returns the kernel thread id of the calling OS thread.
// Callers lock the goroutine to its thread first.
func currentThreadID() int {
	return unix.Gettid()
}

// signalThread delivers sig to the thread tid within this process.
func signalThread(tid, sig int) error {
	if sig <= 0 {
		return api.ErrInvalidSignal
	}
	return unix.Tgkill(unix.Getpid(), tid, unix.Signal(sig))
}

// maskSignal adds (block=true) or removes sig from the calling thread's
// signal mask.
func maskSignal(block bool, sig int) error {
	if sig <= 0 {
		return api.ErrInvalidSignal
	}
	how := unix.SIG_BLOCK
	if !block {
		how = unix.SIG_UNBLOCK
	}
	var set unix.Sigset_t
	sigsetAdd(&set, sig)
	return unix.PthreadSigmask(how, &set, nil)
}

// sigsetAdd sets the bit for sig in set, sigaddset(3) style.
func sigsetAdd(set *unix.Sigset_t, sig int) {
	bit := uint(sig - 1)
	set.Val[bit/sigsetWordBits] |= 1 << (bit % sigsetWordBits)
}
