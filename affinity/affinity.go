// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for thread CPU affinity and scheduling priority.
// Platform-specific implementations are located in separate files
// (affinity_linux.go, affinity_stub.go) guarded by build tags.

package affinity

// Pin binds the thread identified by kernel tid to the given logical CPUs.
// A tid of zero means the calling thread. On unsupported platforms returns
// an error.
func Pin(tid int, cpus ...int) error {
	return pinPlatform(tid, cpus)
}

// PinCurrent pins the calling OS thread. The caller is expected to have
// locked its goroutine to the thread first.
func PinCurrent(cpus ...int) error {
	return pinPlatform(0, cpus)
}

// SetNice adjusts the niceness of the thread identified by kernel tid.
// A tid of zero means the calling thread.
func SetNice(tid, nice int) error {
	return setNicePlatform(tid, nice)
}
