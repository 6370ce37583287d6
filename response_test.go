package iso14229

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseBufferPutPositive(t *testing.T) {
	r := newResponseBuffer(8)
	ok := r.putPositive(SIDTesterPresent, []byte{0x00})
	assert.True(t, ok)
	assert.Equal(t, []byte{0x7E, 0x00}, r.bytes())
	assert.True(t, r.pending)
}

func TestResponseBufferPutPositiveTooLarge(t *testing.T) {
	r := newResponseBuffer(2)
	ok := r.putPositive(SIDTesterPresent, []byte{0x00, 0x01})
	assert.False(t, ok)
	assert.False(t, r.pending)
}

func TestResponseBufferRejectsSecondWriteWhilePending(t *testing.T) {
	r := newResponseBuffer(8)
	assert.True(t, r.putPositive(SIDTesterPresent, []byte{0x00}))
	assert.False(t, r.putNegative(SIDTesterPresent, ServiceNotSupported))
}

func TestResponseBufferNegative(t *testing.T) {
	r := newResponseBuffer(8)
	ok := r.putNegative(SIDECUReset, IncorrectMessageLengthOrInvalidFormat)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x7F, 0x11, 0x13}, r.bytes())
}

func TestResponseBufferClear(t *testing.T) {
	r := newResponseBuffer(8)
	r.putPositive(SIDTesterPresent, []byte{0x00})
	r.clear()
	assert.False(t, r.pending)
	assert.Equal(t, 0, r.lengthUsed)
}
