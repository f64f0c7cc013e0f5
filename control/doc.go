// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime defaults, metrics telemetry, and debug introspection for osthread.
//
// Provides concurrent-safe state handling primitives including:
//   - Environment-driven defaults with atomic snapshot reads
//   - Reload observers for dynamic reconfiguration
//   - Counter registry for thread lifecycle telemetry
//   - Debug hooks and probe registration
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
