// Package wire provides the big-endian framing and wrap-safe timing
// primitives shared by the UDS core. It has no dependency on the rest of
// the module so it stays portable and trivially testable in isolation.
package wire

// PutUint16 writes v as big-endian into b[0:2]. UDS encodes every
// multi-byte field (DIDs, routine IDs, P2/P2*) big-endian on the wire.
func PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// Uint16 decodes a big-endian uint16 from b[0:2].
func Uint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

// PutUint32 writes v as big-endian into b[0:4].
func PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Uint32 decodes a big-endian uint32 from b[0:4].
func Uint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// After reports whether monotonic timestamp a is after b, tolerant to
// uint32 wraparound. Both a and b are millisecond ticks from the same
// clock. This is the Go form of the Iso14229TimeAfter macro in the
// original C implementation: (int32)(b-a) < 0.
func After(a, b uint32) bool {
	return int32(b-a) < 0
}
