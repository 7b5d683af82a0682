// Package ntp encodes and decodes wall-clock instants to and from the
// 64-bit NTP timestamp format carried in RTCP sender reports.
package ntp

import (
	"github.com/nvrkit/mediaclock/clock"
)

// Seconds between the NTP epoch (1900) and the Unix epoch (1970).
const epochOffset = 2_208_988_800

// Encode encodes t in NTP format: 32 bits of seconds since 1900 and
// 32 bits of second fraction. The second return value is false for
// pre-epoch instants, which the media pipeline never produces.
// Specification: RFC 3550, section 4.
func Encode(t clock.UnixNano) (uint64, bool) {
	if t < 0 {
		return 0, false
	}
	ntp := uint64(t) + epochOffset*uint64(clock.Second)
	secs := ntp / uint64(clock.Second)
	dec := ntp % uint64(clock.Second)
	frac := (dec<<32 + uint64(clock.Second)/2) / uint64(clock.Second)
	return secs<<32 | frac, true
}

// Decode decodes a timestamp from NTP format.
// Specification: RFC 3550, section 4.
func Decode(v uint64) clock.UnixNano {
	secs := int64(v>>32) - epochOffset
	frac := v & 0xFFFFFFFF
	nsec := int64((frac*uint64(clock.Second) + 1<<31) >> 32)
	return clock.UnixNano(secs*clock.Second + nsec)
}
