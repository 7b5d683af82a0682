package clock

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// H264Timescale is the number of time units that pass per second.
const H264Timescale = 90000

const (
	H264Second      int64 = H264Timescale
	H264Millisecond       = H264Second / 1000
)

// ErrOutOfRange is returned when a tick count does not fit the
// requested integer width.
var ErrOutOfRange = errors.New("value out of range")

// UnixH264 is a point in time, 90khz ticks since the Unix epoch.
type UnixH264 int64

// NowH264 returns the current wall-clock time in 90khz ticks. It is
// derived from the same clock source as Now, not a second
// measurement.
func NowH264() UnixH264 {
	return UnixH264(NanoToTimescale(int64(Now()), H264Second))
}

// Add returns t+d. The second return value is false if the result
// would overflow.
func (t UnixH264) Add(d DurationH264) (UnixH264, bool) {
	v, ok := addInt64(int64(t), int64(d))
	return UnixH264(v), ok
}

// Sub returns t-d. The second return value is false if the result
// would overflow.
func (t UnixH264) Sub(d DurationH264) (UnixH264, bool) {
	v, ok := subInt64(int64(t), int64(d))
	return UnixH264(v), ok
}

// Diff returns the duration t-u. The second return value is false if
// the result would overflow.
func (t UnixH264) Diff(u UnixH264) (DurationH264, bool) {
	v, ok := subInt64(int64(t), int64(u))
	return DurationH264(v), ok
}

// After reports whether the time instant t is after u.
func (t UnixH264) After(u UnixH264) bool {
	return t > u
}

// AsNanos converts the instant back into wall-clock nanoseconds,
// splitting into whole seconds and remainder ticks before scaling.
func (t UnixH264) AsNanos() UnixNano {
	secs := int64(t) / H264Second
	dec := int64(t) % H264Second
	return UnixNano(secs*Second + dec*Second/H264Second)
}

// AsDuration reinterprets the tick count since the epoch as a tick
// duration, for PTS/DTS arithmetic.
func (t UnixH264) AsDuration() DurationH264 {
	return DurationH264(t)
}

// AsTime returns t as a calendar time.Time in UTC. Same contract as
// UnixNano.AsTime.
func (t UnixH264) AsTime() (time.Time, bool) {
	return t.AsNanos().AsTime()
}

// DurationH264 is a signed span of time in 90khz ticks.
type DurationH264 int64

// IsZero reports whether d is the zero duration.
func (d DurationH264) IsZero() bool {
	return d == 0
}

// Add returns d+rhs. The second return value is false if the result
// would overflow.
func (d DurationH264) Add(rhs DurationH264) (DurationH264, bool) {
	v, ok := addInt64(int64(d), int64(rhs))
	return DurationH264(v), ok
}

// Sub returns d-rhs. The second return value is false if the result
// would overflow.
func (d DurationH264) Sub(rhs DurationH264) (DurationH264, bool) {
	v, ok := subInt64(int64(d), int64(rhs))
	return DurationH264(v), ok
}

// Mul returns d*rhs. The second return value is false if the result
// would overflow.
func (d DurationH264) Mul(rhs DurationH264) (DurationH264, bool) {
	v, ok := mulInt64(int64(d), int64(rhs))
	return DurationH264(v), ok
}

// Div returns d/rhs. The second return value is false if rhs is zero
// or the result would overflow.
func (d DurationH264) Div(rhs DurationH264) (DurationH264, bool) {
	v, ok := divInt64(int64(d), int64(rhs))
	return DurationH264(v), ok
}

// Rem returns d%rhs. The second return value is false if rhs is zero
// or the result would overflow.
func (d DurationH264) Rem(rhs DurationH264) (DurationH264, bool) {
	v, ok := remInt64(int64(d), int64(rhs))
	return DurationH264(v), ok
}

// Seconds returns the duration as a float of seconds. Lossy, for
// logging and metrics only.
func (d DurationH264) Seconds() float64 {
	ns := d.Nanos()
	sec := ns / Second
	nsec := ns % Second
	return float64(sec) + float64(nsec)/float64(Second)
}

// Int32 narrows the tick count to int32 for codec fields of that
// width. Returns ErrOutOfRange if it does not fit.
func (d DurationH264) Int32() (int32, error) {
	if d < math.MinInt32 || d > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOutOfRange, "%d ticks as int32", int64(d))
	}
	return int32(d), nil
}

// Uint32 narrows the tick count to uint32 for codec fields of that
// width. Returns ErrOutOfRange if it does not fit.
func (d DurationH264) Uint32() (uint32, error) {
	if d < 0 || d > math.MaxUint32 {
		return 0, errors.Wrapf(ErrOutOfRange, "%d ticks as uint32", int64(d))
	}
	return uint32(d), nil
}

// Millis returns the duration in whole milliseconds.
func (d DurationH264) Millis() int64 {
	return d.Nanos() / Millisecond
}

// Nanos converts the tick count into nanoseconds, splitting into
// whole seconds and remainder ticks before scaling.
func (d DurationH264) Nanos() int64 {
	secs := int64(d) / H264Second
	dec := int64(d) % H264Second
	return secs*Second + dec*Second/H264Second
}
