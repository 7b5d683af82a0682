// Package mpegts unwraps the 33-bit PTS/DTS fields carried in MPEG-TS
// packets into a continuous 90khz duration.
package mpegts

import (
	"github.com/nvrkit/mediaclock/clock"
)

const (
	maximum           = 0x1FFFFFFFF // 33 bits
	negativeThreshold = maximum / 2
)

// Decoder is a MPEG-TS timestamp decoder. The 33-bit field wraps
// roughly every 26.5 hours; the decoder tracks wraps in both
// directions so reordered frames keep their relative offsets.
type Decoder struct {
	overall clock.DurationH264
	prev    int64
}

// NewDecoder returns a decoder with start as its zero point.
func NewDecoder(start int64) *Decoder {
	return &Decoder{
		prev: start,
	}
}

// Decode unwraps a 33-bit timestamp into the duration since the
// decoder's zero point. The second return value is false when ts does
// not fit 33 bits or the accumulated tick count overflows.
func (d *Decoder) Decode(ts int64) (clock.DurationH264, bool) {
	if ts < 0 || ts > maximum {
		return 0, false
	}

	diff := (ts - d.prev) & maximum

	// negative difference
	if diff > negativeThreshold {
		diff = (d.prev - ts) & maximum
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
