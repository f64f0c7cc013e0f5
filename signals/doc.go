// Package signals
// Author: momentics <momentics@gmail.com>
//
// Process-wide signal disposition for osthread. A handler installed here is
// shared by every thread in the process: one Registry owns the handler
// table, and one mutex is the critical section that replaces the classic
// "mask everything, sigaction, restore" installation dance, so a delivery
// can never observe a torn configuration.
//
// Deliveries are received from the runtime, buffered through a FIFO, and
// dispatched to the installed handler exactly once each. Handlers run on
// the dispatcher goroutine, outside any thread body: keep them short,
// re-entrancy safe, and away from non-atomic shared state.
package signals
