package ntp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvrkit/mediaclock/clock"
)

func TestEncode(t *testing.T) {
	// The Unix epoch is 2208988800 NTP seconds with a zero fraction.
	v, ok := Encode(clock.UnixNano(0))
	require.True(t, ok)
	assert.Equal(t, uint64(2_208_988_800)<<32, v)

	// Half a second is exactly half the fraction range.
	v, ok = Encode(clock.UnixNano(500 * clock.Millisecond))
	require.True(t, ok)
	assert.Equal(t, uint64(2_208_988_800)<<32|1<<31, v)

	_, ok = Encode(clock.UnixNano(-1))
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, clock.UnixNano(0), Decode(uint64(2_208_988_800)<<32))
	assert.Equal(t,
		clock.UnixNano(clock.Second+250*clock.Millisecond),
		Decode(uint64(2_208_988_801)<<32|1<<30))
}

func TestRoundTrip(t *testing.T) {
	// The fraction field resolves ~0.23 ns, so a round trip stays
	// within one nanosecond.
	cases := []clock.UnixNano{
		0,
		clock.UnixNano(clock.Second),
		clock.UnixNano(1_700_000_000*clock.Second + 123_456_789),
		clock.UnixNano(1_700_000_000*clock.Second + 999_999_999),
	}
	for _, v := range cases {
		enc, ok := Encode(v)
		require.True(t, ok)
		got := Decode(enc)
		diff := int64(got) - int64(v)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, int64(1), "value %d", v)
	}
}
