package wire

import "encoding/binary"

// PutUint16 writes v into the first 2 bytes of buf, most significant
// byte first.
func PutUint16(buf []byte, v uint16) {
	binary.BigEndian.PutUint16(buf, v)
}

// PutUint32 writes v into the first 4 bytes of buf, most significant
// byte first.
func PutUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// PutUint64 writes v into the first 8 bytes of buf, most significant
// byte first.
func PutUint64(buf []byte, v uint64) {
	binary.BigEndian.PutUint64(buf, v)
}

// Uint16 decodes an unsigned 16-bit integer from the first 2 bytes of buf.
func Uint16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

// Int16 decodes a signed 16-bit integer from the first 2 bytes of buf,
// sign-extending the big-endian field the standard way.
func Int16(buf []byte) int16 {
	return int16(binary.BigEndian.Uint16(buf))
}

// Uint32 decodes an unsigned 32-bit integer from the first 4 bytes of buf.
func Uint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// Int32 decodes a signed 32-bit integer from the first 4 bytes of buf.
func Int32(buf []byte) int32 {
	return int32(binary.BigEndian.Uint32(buf))
}

// Uint64 decodes an unsigned 64-bit integer from the first 8 bytes of buf.
func Uint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

// Int64 decodes a signed 64-bit integer from the first 8 bytes of buf.
func Int64(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf))
}
