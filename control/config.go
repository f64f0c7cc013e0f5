// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// Runtime defaults with environment overrides and reload propagation.

package control

import (
	"sync"

	"github.com/caarlos0/env/v6"
)

// Config holds the runtime defaults tunable through OSTHREAD_* environment
// variables.
type Config struct {
	// CancelSignal is delivered to a thread on Stop to kick it out of
	// blocking syscalls. Zero disables the kick.
	CancelSignal int `env:"OSTHREAD_CANCEL_SIGNAL" envDefault:"0"`

	// HandlerBuffer sizes the channel between the runtime and the signal
	// registry; deliveries beyond it are coalesced by the runtime.
	HandlerBuffer int `env:"OSTHREAD_HANDLER_BUFFER" envDefault:"16"`
}

var (
	cfgMu     sync.RWMutex
	cfg       Config
	cfgOnce   sync.Once
	listeners []func(Config)
)

// Load returns the current defaults, parsing the environment on first use.
// Malformed values fall back to the struct defaults.
func Load() Config {
	cfgOnce.Do(func() {
		cfg = parseEnv()
	})
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg
}

// Reload re-parses the environment and dispatches listeners. Returns the new
// snapshot.
func Reload() Config {
	Load()
	c := parseEnv()
	cfgMu.Lock()
	cfg = c
	hooks := make([]func(Config), len(listeners))
	copy(hooks, listeners)
	cfgMu.Unlock()
	for _, fn := range hooks {
		fn(c)
	}
	return c
}

// parseEnv reads OSTHREAD_* variables; malformed values fall back to the
// struct defaults.
func parseEnv() Config {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{HandlerBuffer: 16}
	}
	return c
}

// OnReload registers a listener invoked with each new snapshot.
func OnReload(fn func(Config)) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	listeners = append(listeners, fn)
}
