// thread_test.go — lifecycle behavior of a single Thread.
package thread_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/momentics/osthread/api"
	"github.com/momentics/osthread/thread"
)

// poller loops until its context is cancelled, counting iterations.
type poller struct {
	iterations atomic.Int64
	exited     atomic.Bool
}

func (p *poller) Run(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.exited.Store(true)
			return
		case <-ticker.C:
			p.iterations.Add(1)
		}
	}
}

// joinWithin runs Join on a separate goroutine so a hang fails the test
// instead of blocking it forever.
func joinWithin(t *testing.T, th *thread.Thread, d time.Duration) bool {
	t.Helper()
	res := make(chan bool, 1)
	go func() { res <- th.Join() }()
	select {
	case ok := <-res:
		return ok
	case <-time.After(d):
		t.Fatalf("Join did not return within %v", d)
		return false
	}
}

func TestStartIsIdempotent(t *testing.T) {
	var runs atomic.Int64
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {
		runs.Add(1)
		<-ctx.Done()
	}), thread.WithLogger(zaptest.NewLogger(t)))

	require.True(t, th.Start())
	require.True(t, th.Start(), "second Start must be a success no-op")

	time.Sleep(20 * time.Millisecond)
	require.EqualValues(t, 1, runs.Load(), "exactly one native thread must exist")

	require.True(t, th.Stop())
	require.True(t, joinWithin(t, th, 2*time.Second))
}

func TestStopBeforeStartFails(t *testing.T) {
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {}))
	require.False(t, th.Stop())
}

func TestJoinNeverStartedFails(t *testing.T) {
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {}))
	require.False(t, th.Join())
}

func TestJoinTwiceFails(t *testing.T) {
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {}))
	require.True(t, th.Start())
	require.True(t, joinWithin(t, th, 2*time.Second))
	require.False(t, th.Join(), "a joined thread is not joinable again")
}

func TestSendSignalNeverStartedFails(t *testing.T) {
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {}),
		thread.WithLogger(zaptest.NewLogger(t)))
	require.False(t, th.SendSignal(10))
}

func TestTidOnlyValidWhileStarted(t *testing.T) {
	th := thread.New(api.RunnableFunc(func(ctx context.Context) { <-ctx.Done() }))
	_, ok := th.Tid()
	require.False(t, ok)

	require.True(t, th.Start())
	_, ok = th.Tid()
	require.True(t, ok)

	require.True(t, th.Stop())
	_, ok = th.Tid()
	require.False(t, ok, "handle must not be readable after Stop")
	require.True(t, joinWithin(t, th, 2*time.Second))
}

func TestLifecycleEndToEnd(t *testing.T) {
	body := &poller{}
	th := thread.New(body, thread.WithLogger(zaptest.NewLogger(t)))

	require.True(t, th.Start())
	time.Sleep(50 * time.Millisecond)
	require.True(t, th.Stop())
	require.True(t, joinWithin(t, th, 2*time.Second))

	require.True(t, body.exited.Load(), "body must observe cancellation")
	require.Greater(t, body.iterations.Load(), int64(0), "body must have polled before Stop")
}

func TestRestartAfterStop(t *testing.T) {
	var runs atomic.Int64
	th := thread.New(api.RunnableFunc(func(ctx context.Context) {
		runs.Add(1)
		<-ctx.Done()
	}))

	require.True(t, th.Start())
	require.True(t, th.Stop())
	require.True(t, joinWithin(t, th, 2*time.Second))

	require.True(t, th.Start(), "a stopped and joined Thread is restartable")
	require.True(t, th.Stop())
	require.True(t, joinWithin(t, th, 2*time.Second))
	require.EqualValues(t, 2, runs.Load())
}
