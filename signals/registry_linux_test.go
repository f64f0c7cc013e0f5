//go:build linux
// +build linux

// registry_linux_test.go — process-wide installation and dispatch.
package signals_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/osthread/signals"
)

func TestInstallRejectsBadArguments(t *testing.T) {
	r := signals.NewRegistry()
	require.False(t, r.Install(0, func(int) {}))
	require.False(t, r.Install(-3, func(int) {}))
	require.False(t, r.Install(signals.SIGUSR1, nil))
}

func TestDispatchExactlyOncePerDelivery(t *testing.T) {
	var fired atomic.Int64
	r := signals.NewRegistry()
	require.True(t, r.Install(signals.SIGUSR1, func(sig int) {
		require.Equal(t, signals.SIGUSR1, sig)
		fired.Add(1)
	}))
	defer r.Reset()

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGUSR1))
	require.Eventually(t, func() bool { return fired.Load() == 1 },
		2*time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	require.EqualValues(t, 1, fired.Load(), "one delivery, one invocation")
}

func TestUninstallStopsInvocations(t *testing.T) {
	var fired atomic.Int64
	r := signals.NewRegistry()
	require.True(t, r.Install(signals.SIGUSR2, func(int) { fired.Add(1) }))

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGUSR2))
	require.Eventually(t, func() bool { return fired.Load() == 1 },
		2*time.Second, 5*time.Millisecond)

	r.Uninstall(signals.SIGUSR2)
	// The signal is ignored after Uninstall; this must neither kill the
	// process nor reach the old handler.
	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGUSR2))
	time.Sleep(50 * time.Millisecond)
	require.EqualValues(t, 1, fired.Load())
}

func TestReinstallReplacesHandler(t *testing.T) {
	var first, second atomic.Int64
	r := signals.NewRegistry()
	require.True(t, r.Install(signals.SIGUSR1, func(int) { first.Add(1) }))
	require.True(t, r.Install(signals.SIGUSR1, func(int) { second.Add(1) }))
	defer r.Reset()

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGUSR1))
	require.Eventually(t, func() bool { return second.Load() == 1 },
		2*time.Second, 5*time.Millisecond)
	require.Zero(t, first.Load(), "replaced handler must not run")
}
