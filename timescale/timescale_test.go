package timescale

import (
	"testing"

	"github.com/nvrkit/mediaclock/clock"
)

func TestToScale(t *testing.T) {
	const scale uint32 = clock.H264Timescale
	frame := clock.Second / 60
	values := []struct {
		D clock.Duration
		V uint64
	}{
		{0, 0},
		{clock.Nanos(frame - 1), 1500},
		{clock.Nanos(frame + 0), 1500},
		{clock.Nanos(frame + 1), 1500},
		{clock.Nanos(frame*60 - 1), 90000},
		{clock.Nanos(frame*60 + 0), 90000},
		{clock.Nanos(frame*60 + 1), 90000},
		{clock.Nanos(clock.Second * (1 << 32)), 90000 * (1 << 32)},
		{clock.Nanos(clock.Second*(1<<32) + frame - 1), 90000*(1<<32) + 1500},
		{clock.Nanos(clock.Second*(1<<32) + frame + 0), 90000*(1<<32) + 1500},
		{clock.Nanos(clock.Second*(1<<32) + frame + 1), 90000*(1<<32) + 1500},
	}
	for _, ex := range values {
		n := ToScale(ex.D, scale)
		if n != ex.V {
			t.Errorf("%d: expected %d, got %d", ex.D, ex.V, n)
		}
	}
}

func TestRelative(t *testing.T) {
	const scale uint32 = clock.H264Timescale
	frame := clock.Second / 60
	values := []struct {
		D clock.Duration
		V int32
	}{
		{0, 0},
		{clock.Nanos(frame - 1), 1500},
		{clock.Nanos(frame + 0), 1500},
		{clock.Nanos(frame + 1), 1500},
		{clock.Nanos(frame*5 - 1), 7500},
		{clock.Nanos(frame*5 + 0), 7500},
		{clock.Nanos(frame*5 + 1), 7500},
		{clock.Nanos(-frame - 1), -1500},
		{clock.Nanos(-frame + 0), -1500},
		{clock.Nanos(-frame + 1), -1500},
		{clock.Nanos(-frame*5 - 1), -7500},
		{clock.Nanos(-frame*5 + 0), -7500},
		{clock.Nanos(-frame*5 + 1), -7500},
	}
	for _, ex := range values {
		n := Relative(ex.D, scale)
		if n != ex.V {
			t.Errorf("%d: expected %d, got %d", ex.D, ex.V, n)
		}
	}
}
