package wire

import "math"

// PutFloat32 writes the IEEE-754 binary32 bit pattern of f into the first
// 4 bytes of buf, most significant byte first. The conversion is an exact
// bit-cast: zero, subnormals, infinities, and NaN all round-trip
// bit-for-bit through Float32.
func PutFloat32(buf []byte, f float32) {
	PutUint32(buf, math.Float32bits(f))
}

// Float32 decodes an IEEE-754 binary32 value from the first 4 bytes of buf.
func Float32(buf []byte) float32 {
	return math.Float32frombits(Uint32(buf))
}

// PutFloat64 writes the IEEE-754 binary64 bit pattern of f into the first
// 8 bytes of buf, most significant byte first.
func PutFloat64(buf []byte, f float64) {
	PutUint64(buf, math.Float64bits(f))
}

// Float64 decodes an IEEE-754 binary64 value from the first 8 bytes of buf.
func Float64(buf []byte) float64 {
	return math.Float64frombits(Uint64(buf))
}
