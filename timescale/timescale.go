// Package timescale converts wall-clock durations into arbitrary mp4
// track timescales with round-to-nearest semantics, as required for
// decode times and composition offsets.
package timescale

import (
	"math/bits"

	"github.com/nvrkit/mediaclock/clock"
)

// ToScale converts a decode time into the given timescale. The 128-bit
// intermediate product keeps the conversion exact for the full int64
// nanosecond range. Rounds to the nearest tick.
func ToScale(d clock.Duration, scale uint32) uint64 {
	hi, lo := bits.Mul64(uint64(d.Std()), uint64(scale))
	dts, rem := bits.Div64(hi, lo, uint64(clock.Second))
	if rem >= uint64(clock.Second/2) {
		// round up
		dts++
	}
	return dts
}

// Relative converts a sub-second relative time (which may be negative)
// into the given timescale. Rounds to the nearest tick.
func Relative(d clock.Duration, scale uint32) int32 {
	rel := int64(d) * int64(scale) / (clock.Second / 2)
	if (rel&1 != 0) == (d > 0) {
		// round up
		rel++
	}
	return int32(rel >> 1)
}
