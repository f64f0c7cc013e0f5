//go:build !linux
// +build !linux

// control/platform_stub.go
// Author: momentics <momentics@gmail.com>
//
// Generic platform probes for other systems.

package control

import "runtime"

// RegisterPlatformProbes sets generic debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
