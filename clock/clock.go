// Package clock provides precision-preserving time values for media
// timestamping: wall-clock nanoseconds since the Unix epoch and the
// 90khz clock used by H264. Conversions between the two units split
// values into whole-second and sub-second parts before scaling, so
// they stay exact without overflowing int64 for realistic timestamps.
package clock

import (
	"math"
	"time"
)

const (
	Nanosecond  int64 = 1
	Microsecond       = 1000 * Nanosecond
	Millisecond       = 1000 * Microsecond
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
)

// now is the wall-clock source. Tests swap it for a fixed clock.
var now = time.Now

// UnixNano is a point in time, nanoseconds since the Unix epoch.
type UnixNano int64

// MaxUnixNano is the latest representable instant, used for
// "never expires" deadlines.
const MaxUnixNano = UnixNano(math.MaxInt64)

// Now returns the current wall-clock time. Panics if the system clock
// reports a time before the Unix epoch, a broken clock cannot be
// recovered from.
func Now() UnixNano {
	n := now().UnixNano()
	if n < 0 {
		panic("clock: system time is before the Unix epoch")
	}
	return UnixNano(n)
}

// Add returns t+d. The second return value is false if the result
// would overflow.
func (t UnixNano) Add(d Duration) (UnixNano, bool) {
	v, ok := addInt64(int64(t), int64(d))
	return UnixNano(v), ok
}

// Sub returns t-d. The second return value is false if the result
// would overflow.
func (t UnixNano) Sub(d Duration) (UnixNano, bool) {
	v, ok := subInt64(int64(t), int64(d))
	return UnixNano(v), ok
}

// After reports whether the time instant t is after u.
func (t UnixNano) After(u UnixNano) bool {
	return t > u
}

// Before reports whether the time instant t is before u.
func (t UnixNano) Before(u UnixNano) bool {
	return t < u
}

// Diff returns the duration t-u. The second return value is false if
// the result would overflow.
func (t UnixNano) Diff(u UnixNano) (Duration, bool) {
	v, ok := subInt64(int64(t), int64(u))
	return Duration(v), ok
}

// AsTime returns t as a calendar time.Time in UTC. The second return
// value is false if t falls outside the year range [0, 9999] that the
// time package can format.
func (t UnixNano) AsTime() (time.Time, bool) {
	sec := int64(t) / Second
	nsec := int64(t) % Second
	v := time.Unix(sec, nsec).UTC()
	if v.Year() < 0 || v.Year() > 9999 {
		return time.Time{}, false
	}
	return v, true
}

// Duration is a signed span of wall-clock time in nanoseconds.
type Duration int64

// Nanos returns the duration of v nanoseconds.
func Nanos(v int64) Duration {
	return Duration(v)
}

// Millis returns the duration of v milliseconds.
func Millis(v uint32) Duration {
	return Duration(int64(v) * Millisecond)
}

// Seconds returns the duration of v seconds.
func Seconds(v uint32) Duration {
	return Duration(int64(v) * Second)
}

// Minutes returns the duration of v minutes. The second return value
// is false if the duration would overflow.
func Minutes(v uint32) (Duration, bool) {
	n, ok := mulInt64(int64(v), Minute)
	return Duration(n), ok
}

// Hours returns the duration of v hours. The second return value is
// false if the duration would overflow.
func Hours(v uint32) (Duration, bool) {
	n, ok := mulInt64(int64(v), Hour)
	return Duration(n), ok
}

// Until returns the duration from now until t. The second return
// value is false if the result would overflow.
func Until(t UnixNano) (Duration, bool) {
	return t.Diff(Now())
}

// AsH264 converts the duration into 90khz ticks. The conversion
// cannot overflow since the tick rate is lower than the nanosecond
// rate.
func (d Duration) AsH264() DurationH264 {
	return DurationH264(NanoToTimescale(int64(d), H264Second))
}

// Std returns d as a standard library duration. Both are signed
// nanosecond counts, so the conversion is lossless.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// NanoToTimescale converts a value in nanoseconds into a different
// timescale. The value is split into whole seconds and a sub-second
// remainder before scaling: the remainder is always smaller than one
// second, so remainder*timescale stays within int64 even where
// value*timescale would overflow. Truncates toward zero.
func NanoToTimescale(value, timescale int64) int64 {
	secs := value / Second
	dec := value % Second
	return secs*timescale + dec*timescale/Second
}
