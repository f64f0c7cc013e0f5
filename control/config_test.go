package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/osthread/control"
)

func TestLoadDefaults(t *testing.T) {
	cfg := control.Load()
	require.GreaterOrEqual(t, cfg.HandlerBuffer, 1)
}

func TestReloadPicksUpEnvironment(t *testing.T) {
	t.Setenv("OSTHREAD_CANCEL_SIGNAL", "10")
	t.Setenv("OSTHREAD_HANDLER_BUFFER", "32")

	var seen []control.Config
	control.OnReload(func(c control.Config) { seen = append(seen, c) })

	cfg := control.Reload()
	require.Equal(t, 10, cfg.CancelSignal)
	require.Equal(t, 32, cfg.HandlerBuffer)
	require.Len(t, seen, 1)
	require.Equal(t, cfg, seen[0])

	t.Setenv("OSTHREAD_CANCEL_SIGNAL", "0")
	t.Setenv("OSTHREAD_HANDLER_BUFFER", "16")
	control.Reload()
}

func TestReloadFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("OSTHREAD_HANDLER_BUFFER", "not-a-number")
	cfg := control.Reload()
	require.Equal(t, 16, cfg.HandlerBuffer)

	t.Setenv("OSTHREAD_HANDLER_BUFFER", "16")
	control.Reload()
}
