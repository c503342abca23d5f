// Package frame implements the self-describing binary frame that carries a
// dynamic message: a magic header, a total length, the message name, a
// field count, and one sub-frame per field.
//
//	Offset  Size  Field
//	  0      4   magic = 0x3E3E3E3D, signed i32
//	  4      4   total frame length in bytes, signed i32
//	  8      4   message-name length m, signed i32
//	 12      m   message name bytes
//	 12+m    4   field count n, signed i32
//	 16+m    —   n field sub-frames, contiguous
//
//	Field sub-frame:
//	  0      4   sub-frame total length, signed i32
//	  4      4   field-name length k, signed i32
//	  8      k   field name bytes
//	  8+k    4   field type tag, signed i32
//	 12+k    4   field value length l, signed i32
//	 16+k    l   field value bytes
//
// All multi-byte integers are big-endian. Strings are raw bytes with no
// terminator; length is always carried explicitly.
package frame

import (
	"fmt"

	"github.com/nilgiri-dev/dynmsg/message"
	"github.com/nilgiri-dev/dynmsg/wire"
)

// Magic is the 4-byte constant that opens every frame.
const Magic int32 = 1044266557 // 0x3E3E3E3D

const (
	messageFixedLen = 16 // magic + total length + name length + field count
	fieldFixedLen   = 16 // sub-frame length + name length + type + value length
	minFrameLen     = 32
)

// fixedSize gives the on-wire byte width of a fixed-width type. Variable
// length types (TypeString) and non-serializable types return 0 and false.
func fixedSize(t message.Type) (int, bool) {
	switch t {
	case message.TypeEnum:
		return 4, true
	case message.TypeI16, message.TypeU16:
		return 2, true
	case message.TypeI32, message.TypeU32:
		return 4, true
	case message.TypeI64, message.TypeU64:
		return 8, true
	case message.TypeF32:
		return 4, true
	case message.TypeF64:
		return 8, true
	case message.TypeNone:
		return 0, true
	default:
		return 0, false
	}
}

func valueSize(f message.Field) (int, error) {
	if f.Type == message.TypeString {
		return len(f.Value.Str()), nil
	}
	if f.Type == message.TypeI8 || f.Type == message.TypeU8 {
		return 0, fmt.Errorf("field %q: %w", f.Name, ErrNonSerializable)
	}
	size, ok := fixedSize(f.Type)
	if !ok {
		return 0, fmt.Errorf("field %q: %w", f.Name, ErrNonSerializable)
	}
	return size, nil
}

// CalcLen computes the exact number of bytes Encode would produce for m,
// without allocating the frame itself. A message with no fields yields 0.
func CalcLen(m *message.Message) (int, error) {
	fields := m.Fields()
	if len(fields) == 0 {
		return 0, nil
	}
	total := messageFixedLen + len(m.Name())
	for _, f := range fields {
		vs, err := valueSize(f)
		if err != nil {
			return 0, err
		}
		total += fieldFixedLen + len(f.Name) + vs
	}
	return total, nil
}

// Encode serializes m into a freshly allocated SerializedData.
//
// If m has no fields, CalcLen reports 0, which doesn't exceed the fixed
// header overhead, and Encode returns a cleared, empty carrier rather than a
// frame with a bare header and no fields — there is nothing meaningful to
// decode on the other end.
func Encode(m *message.Message) (*SerializedData, error) {
	total, err := CalcLen(m)
	if err != nil {
		return nil, err
	}
	if total <= minFrameLen {
		return &SerializedData{}, nil
	}

	buf := make([]byte, total)
	off := 0

	putU32 := func(v uint32) {
		wire.PutUint32(buf[off:off+4], v)
		off += 4
	}
	putStr := func(s string) {
		copy(buf[off:], s)
		off += len(s)
	}

	putU32(uint32(Magic))
	putU32(uint32(total))
	putU32(uint32(len(m.Name())))
	putStr(m.Name())
	fields := m.Fields()
	putU32(uint32(len(fields)))

	for _, f := range fields {
		vs, err := valueSize(f)
		if err != nil {
			return nil, err
		}
		subLen := fieldFixedLen + len(f.Name) + vs
		putU32(uint32(subLen))
		putU32(uint32(len(f.Name)))
		putStr(f.Name)
		putU32(uint32(f.Type))
		putU32(uint32(vs))

		switch f.Type {
		case message.TypeEnum:
			wire.PutUint32(buf[off:off+4], f.Value.Enum())
		case message.TypeI16:
			wire.PutUint16(buf[off:off+2], uint16(f.Value.I16()))
		case message.TypeU16:
			wire.PutUint16(buf[off:off+2], f.Value.U16())
		case message.TypeI32:
			wire.PutUint32(buf[off:off+4], uint32(f.Value.I32()))
		case message.TypeU32:
			wire.PutUint32(buf[off:off+4], f.Value.U32())
		case message.TypeI64:
			wire.PutUint64(buf[off:off+8], uint64(f.Value.I64()))
		case message.TypeU64:
			wire.PutUint64(buf[off:off+8], f.Value.U64())
		case message.TypeF32:
			wire.PutFloat32(buf[off:off+4], f.Value.F32())
		case message.TypeF64:
			wire.PutFloat64(buf[off:off+8], f.Value.F64())
		case message.TypeString:
			putStr(f.Value.Str())
			continue // putStr already advanced off
		case message.TypeNone:
			// zero-width, nothing to write
			continue
		}
		off += vs
	}

	return &SerializedData{Bytes: buf, Length: total}, nil
}
