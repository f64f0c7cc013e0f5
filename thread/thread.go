// File: thread/thread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core native-thread lifecycle: spawn a goroutine pinned to its own OS
// thread, hand the kernel tid back to the creator, run the caller's
// Runnable, tear the thread down when the body returns.

package thread

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/osthread/api"
	"github.com/momentics/osthread/control"
)

var live atomic.Int64

func init() {
	control.DefaultProbes.RegisterProbe("threads.live", func() any {
		return live.Load()
	})
}

// Thread wraps one native OS thread of execution.
//
// The zero value is not usable; construct with New. A Thread can be
// restarted after Stop+Join. Lifecycle fields carry no internal locking:
// callers serialize Start/Stop/Join across goroutines.
var _ api.Thread = (*Thread)(nil)

type Thread struct {
	runnable  api.Runnable
	log       *zap.Logger
	cancelSig int

	started bool
	joined  bool
	tid     int
	done    chan struct{}
	cancel  context.CancelFunc
}

// Option configures a Thread at construction.
type Option func(*Thread)

// WithLogger installs the diagnostic logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Thread) { t.log = l }
}

// WithCancelSignal sets a signal delivered to the native thread on Stop, to
// kick it out of blocking syscalls. Zero (the default unless overridden via
// OSTHREAD_CANCEL_SIGNAL) means Stop only cancels the body's context.
func WithCancelSignal(sig int) Option {
	return func(t *Thread) { t.cancelSig = sig }
}

// New creates an idle Thread that will execute r when started.
func New(r api.Runnable, opts ...Option) *Thread {
	t := &Thread{
		runnable:  r,
		log:       zap.NewNop(),
		cancelSig: control.Load().CancelSignal,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start spawns the native thread and marks the object started. Starting an
// already-started Thread is a success no-op. Returns false only when the
// native thread cannot be established.
//
// The new goroutine locks itself to its OS thread and never unlocks: when
// the body returns, the runtime discards the thread, which is the closest
// analogue of native thread exit.
func (t *Thread) Start() bool {
	if t.started {
		return true
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ready := make(chan int, 1)

	go func() {
		runtime.LockOSThread()
		live.Add(1)
		ready <- currentThreadID()
		defer close(done)
		defer live.Add(-1)
		t.runnable.Run(ctx)
	}()

	t.tid = <-ready
	t.cancel = cancel
	t.done = done
	t.joined = false
	t.started = true
	control.DefaultMetrics.Add("threads.started", 1)
	return true
}

// Stop requests asynchronous cancellation of the native thread. Returns
// false when not started, or when the configured cancel signal could not be
// delivered.
//
// Bookkeeping moves to idle before the delivery is attempted: even if the
// kick fails at the OS level, the object no longer considers itself started
// while the native thread may still be winding down. Callers needing a
// termination guarantee follow Stop with Join.
func (t *Thread) Stop() bool {
	if !t.started {
		return false
	}
	t.started = false
	control.DefaultMetrics.Add("threads.stopped", 1)
	// The kick goes out before the cancel: once ctx is cancelled the body
	// may return and take its OS thread with it, leaving no delivery
	// target. A failed kick still leaves the object idle.
	ok := true
	if t.cancelSig != 0 {
		if err := signalThread(t.tid, t.cancelSig); err != nil {
			t.log.Error("can't deliver cancel signal",
				zap.Int("tid", t.tid),
				zap.Int("signal", t.cancelSig),
				zap.Error(err))
			ok = false
		}
	}
	t.cancel()
	return ok
}

// Join blocks the calling goroutine until the thread body has returned,
// normally or after cancellation. Returns false when the thread was never
// started or has already been joined.
func (t *Thread) Join() bool {
	if t.done == nil || t.joined {
		return false
	}
	<-t.done
	t.joined = true
	return true
}

// Tid returns the kernel thread id of the owned thread. The id is only
// meaningful while the thread is started.
func (t *Thread) Tid() (int, bool) {
	if !t.started {
		return 0, false
	}
	return t.tid, true
}

// BlockSignal adds sig to the calling thread's signal mask. Note: the
// calling thread's, not the owned thread's, unless invoked from within the
// owned thread's body (which is locked to its OS thread).
func (t *Thread) BlockSignal(sig int) bool {
	if err := maskSignal(true, sig); err != nil {
		t.log.Error("can't mask signal", zap.Int("signal", sig), zap.Error(err))
		return false
	}
	return true
}

// UnblockSignal removes sig from the calling thread's signal mask.
func (t *Thread) UnblockSignal(sig int) bool {
	if err := maskSignal(false, sig); err != nil {
		t.log.Error("can't unmask signal", zap.Int("signal", sig), zap.Error(err))
		return false
	}
	return true
}

// SendSignal delivers sig directly to the owned native thread. Returns false
// when the thread is not started or delivery fails.
func (t *Thread) SendSignal(sig int) bool {
	if !t.started {
		t.log.Error("can't send signal", zap.Int("signal", sig),
			zap.Error(api.ErrNotStarted))
		return false
	}
	if err := signalThread(t.tid, sig); err != nil {
		t.log.Error("can't send signal", zap.Int("tid", t.tid),
			zap.Int("signal", sig), zap.Error(err))
		return false
	}
	return true
}
