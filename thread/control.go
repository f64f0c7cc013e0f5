// File: thread/control.go
// Author: momentics <momentics@gmail.com>
//
// Signal disposition and scheduling control for the owned thread.

package thread

import (
	"go.uber.org/zap"

	"github.com/momentics/osthread/affinity"
	"github.com/momentics/osthread/api"
	"github.com/momentics/osthread/signals"
)

// SetSignalHandler installs fn as the process-wide handler for sig.
//
// The disposition is global: every Thread in the process shares one handler
// table, guarded by one critical section in package signals, so installation
// can never race a delivery into a torn configuration. Handlers must be
// short and re-entrancy safe; they run outside any Thread's body.
func (t *Thread) SetSignalHandler(sig int, fn api.SignalHandlerFunc) bool {
	return signals.Install(sig, fn)
}

// SetAffinity pins the owned native thread to the given logical CPUs.
// Returns false when the thread is not started or the kernel rejects the
// mask.
func (t *Thread) SetAffinity(cpus ...int) bool {
	if !t.started {
		t.log.Error("can't set affinity", zap.Error(api.ErrNotStarted))
		return false
	}
	if err := affinity.Pin(t.tid, cpus...); err != nil {
		t.log.Error("can't set affinity", zap.Int("tid", t.tid),
			zap.Ints("cpus", cpus), zap.Error(err))
		return false
	}
	return true
}

// SetNice adjusts the niceness of the owned native thread. Lower values mean
// higher scheduling priority; raising priority may need privileges.
func (t *Thread) SetNice(nice int) bool {
	if !t.started {
		t.log.Error("can't set niceness", zap.Error(api.ErrNotStarted))
		return false
	}
	if err := affinity.SetNice(t.tid, nice); err != nil {
		t.log.Error("can't set niceness", zap.Int("tid", t.tid),
			zap.Int("nice", nice), zap.Error(err))
		return false
	}
	return true
}
