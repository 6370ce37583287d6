package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x00FF, 0x1234, 0xFFFF} {
		buf := make([]byte, 2)
		PutUint16(buf, v)
		assert.Equal(t, v, Uint16(buf))
	}
}

func TestUint16BigEndianLayout(t *testing.T) {
	buf := make([]byte, 2)
	PutUint16(buf, 0x1234)
	assert.Equal(t, []byte{0x12, 0x34}, buf)
}

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x000000FF, 0x12345678, 0xFFFFFFFF} {
		buf := make([]byte, 4)
		PutUint32(buf, v)
		assert.Equal(t, v, Uint32(buf))
	}
}

func TestUint32BigEndianLayout(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0x12345678)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf)
}

func TestAfterOrdinary(t *testing.T) {
	assert.True(t, After(10, 5))
	assert.False(t, After(5, 10))
	assert.False(t, After(5, 5))
}

func TestAfterWrapSafe(t *testing.T) {
	// Shift every timestamp in TestAfterOrdinary by a constant modulo 2^32:
	// the relative ordering must be unaffected (P4).
	const shift = uint32(0xFFFFFFF0)
	assert.True(t, After(10+shift, 5+shift))
	assert.False(t, After(5+shift, 10+shift))
	assert.False(t, After(5+shift, 5+shift))
}

func TestAfterAroundWraparound(t *testing.T) {
	// 0x00000005 is "after" 0xFFFFFFFE because only 7 ticks separate them
	// going forward through the wraparound.
	assert.True(t, After(5, 0xFFFFFFFE))
	assert.False(t, After(0xFFFFFFFE, 5))
}
