// File: clock/clock.go
// Author: momentics <momentics@gmail.com>
//
// Timestamps from selectable POSIX clocks: wall time, monotonic time, and
// per-process/per-thread CPU time. Platform-specific readings live in
// clock_linux.go and clock_stub.go.

package clock

import "time"

// ID selects the clock a Time is read from.
type ID int

const (
	// Realtime is system-wide wall-clock time; it can jump.
	Realtime ID = iota
	// Monotonic counts from an unspecified starting point and never goes
	// backwards.
	Monotonic
	// ProcessCPU is CPU time consumed by the whole process.
	ProcessCPU
	// ThreadCPU is CPU time consumed by the calling thread. Only
	// meaningful from a goroutine locked to its OS thread.
	ThreadCPU
)

// Time is one reading of a clock, with nanosecond precision.
type Time struct {
	clock ID
	sec   int64
	nsec  int64
}

// Now reads the current value of clock c.
func Now(c ID) (Time, error) {
	sec, nsec, err := nowPlatform(c)
	if err != nil {
		return Time{}, err
	}
	return Time{clock: c, sec: sec, nsec: nsec}, nil
}

// Resolution reports the granularity of clock c.
func Resolution(c ID) (time.Duration, error) {
	return resolutionPlatform(c)
}

// Clock returns the ID the reading was taken from.
func (t Time) Clock() ID { return t.clock }

// Seconds and Nanoseconds decompose the reading; Nanoseconds is the
// sub-second part, always in [0, 1e9).
func (t Time) Seconds() int64     { return t.sec }
func (t Time) Nanoseconds() int64 { return t.nsec }

// Add returns the reading shifted by sec seconds and nsec nanoseconds,
// normalized so the sub-second part stays in range.
func (t Time) Add(sec, nsec int64) Time {
	t.sec += sec
	t.nsec += nsec
	t.sec += t.nsec / 1e9
	t.nsec %= 1e9
	if t.nsec < 0 {
		t.nsec += 1e9
		t.sec--
	}
	return t
}

// Set returns a reading pinned to an explicit value on the same clock.
func (t Time) Set(sec, nsec int64) Time {
	return Time{clock: t.clock, sec: sec, nsec: nsec}
}

// Before reports whether t reads earlier than o.
func (t Time) Before(o Time) bool {
	return t.sec < o.sec || (t.sec == o.sec && t.nsec < o.nsec)
}

// After reports whether t reads later than o.
func (t Time) After(o Time) bool {
	return t.sec > o.sec || (t.sec == o.sec && t.nsec > o.nsec)
}

// Equal reports whether the two readings are identical.
func (t Time) Equal(o Time) bool {
	return t.sec == o.sec && t.nsec == o.nsec
}

// Sub returns the duration t-o.
func (t Time) Sub(o Time) time.Duration {
	return time.Duration((t.sec-o.sec)*1e9 + (t.nsec - o.nsec))
}
