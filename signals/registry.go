// File: signals/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handler registry and dispatch loop. Reception never blocks on a slow
// handler: the receiver goroutine queues deliveries and kicks the
// dispatcher, which drains the queue in arrival order.

package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/osthread/api"
	"github.com/momentics/osthread/control"
)

// Registry holds the process-wide signal handler table.
type Registry struct {
	mu       sync.Mutex
	handlers map[int]api.SignalHandlerFunc
	notify   chan os.Signal
	pending  *queue.Queue
	kick     chan struct{}
	running  bool
	log      *zap.Logger
}

// Default is the registry shared by the whole process. Thread.SetSignalHandler
// delegates here.
var Default = NewRegistry()

// NewRegistry creates an empty registry. Most callers want Default; separate
// registries only make sense for disjoint signal sets, since the underlying
// disposition is process-global either way.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[int]api.SignalHandlerFunc),
		notify:   make(chan os.Signal, control.Load().HandlerBuffer),
		pending:  queue.New(),
		kick:     make(chan struct{}, 1),
		log:      zap.NewNop(),
	}
}

// SetLogger installs the diagnostic logger.
func (r *Registry) SetLogger(l *zap.Logger) {
	r.mu.Lock()
	r.log = l
	r.mu.Unlock()
}

// Install registers fn as the handler for sig and subscribes the registry to
// its delivery. Reinstalling replaces the previous handler. Returns false on
// an invalid signal number or nil handler.
func (r *Registry) Install(sig int, fn api.SignalHandlerFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sig <= 0 || fn == nil {
		r.log.Error("can't set signal handler",
			zap.Int("signal", sig), zap.Error(api.ErrInvalidSignal))
		return false
	}
	if !r.running {
		r.running = true
		go r.receive()
		go r.dispatch()
	}
	r.handlers[sig] = fn
	signal.Notify(r.notify, syscall.Signal(sig))
	return true
}

// Uninstall removes the handler for sig. The signal is ignored from then on
// rather than restored to its default action, so a late delivery cannot kill
// the process.
func (r *Registry) Uninstall(sig int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[sig]; !ok {
		return
	}
	delete(r.handlers, sig)
	signal.Ignore(syscall.Signal(sig))
}

// Reset drops every handler and unsubscribes from all deliveries.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	signal.Stop(r.notify)
	for sig := range r.handlers {
		delete(r.handlers, sig)
	}
}

// receive drains runtime deliveries into the pending queue.
func (r *Registry) receive() {
	for s := range r.notify {
		r.mu.Lock()
		r.pending.Add(s)
		r.mu.Unlock()
		select {
		case r.kick <- struct{}{}:
		default:
		}
	}
}

// dispatch invokes the installed handler exactly once per queued delivery.
func (r *Registry) dispatch() {
	for range r.kick {
		for {
			r.mu.Lock()
			if r.pending.Length() == 0 {
				r.mu.Unlock()
				break
			}
			s := r.pending.Remove().(os.Signal)
			sig := Number(s)
			fn := r.handlers[sig]
			r.mu.Unlock()
			if fn != nil {
				fn(sig)
			}
		}
	}
}

// Install registers fn on the Default registry.
func Install(sig int, fn api.SignalHandlerFunc) bool {
	return Default.Install(sig, fn)
}

// Uninstall removes sig's handler from the Default registry.
func Uninstall(sig int) { Default.Uninstall(sig) }

// Number extracts the numeric signal value, or 0 for non-numeric signals.
func Number(s os.Signal) int {
	if ss, ok := s.(syscall.Signal); ok {
		return int(ss)
	}
	return 0
}
