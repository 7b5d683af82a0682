// Package rtptime unwraps the 32-bit RTP timestamps of the 90khz
// video clock into continuous tick durations, and produces the wire
// field for outgoing packets.
package rtptime

import (
	"github.com/nvrkit/mediaclock/clock"
)

const negativeThreshold = 0xFFFFFFFF / 2

// Decoder is a RTP timestamp decoder. The 32-bit field wraps roughly
// every 13.25 hours at 90khz; wraps in both directions are tracked.
type Decoder struct {
	initialized bool
	overall     clock.DurationH264
	prev        uint32
}

// NewDecoder allocates a Decoder. The first decoded timestamp becomes
// the zero point.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode unwraps a timestamp into the duration since the zero point.
// The second return value is false when the accumulated tick count
// overflows.
func (d *Decoder) Decode(ts uint32) (clock.DurationH264, bool) {
	if !d.initialized {
		d.initialized = true
		d.prev = ts
		return 0, true
	}

	diff := ts - d.prev

	// negative difference
	if diff > negativeThreshold {
		diff = d.prev - ts
		d.prev = ts
		v, ok := d.overall.Sub(clock.DurationH264(diff))
		if !ok {
			return 0, false
		}
		d.overall = v
		return d.overall, true
	}

	d.prev = ts
	v, ok := d.overall.Add(clock.DurationH264(diff))
	if !ok {
		return 0, false
	}
	d.overall = v
	return d.overall, true
}

// Encode returns the RTP timestamp field for an absolute 90khz
// instant. The field carries only the low 32 bits, receivers recover
// the rest from wraparound tracking.
func Encode(t clock.UnixH264) uint32 {
	return uint32(t)
}
