package frame

import (
	"fmt"

	"github.com/nilgiri-dev/dynmsg/message"
	"github.com/nilgiri-dev/dynmsg/wire"
)

// Logger is the minimal interface Decode needs to report the "empty
// message" and "unknown field type" conditions. See package obslog for a
// zerolog-backed implementation; nil is accepted here and simply discards
// the messages.
type Logger interface {
	Warnf(format string, args ...any)
}

// nopLogger discards everything. Used when Decode is called without an
// explicit logger.
type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// cursor is a bounds-checked reader over a byte slice; every read either
// succeeds or reports ErrTruncated.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int { return len(c.data) - c.off }

func (c *cursor) readU32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, ErrTruncated
	}
	v := wire.Uint32(c.data[c.off:])
	c.off += 4
	return v, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrTruncated
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// verifyStart checks the magic header. data must have at least 4 bytes.
func verifyStart(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return wire.Int32(data) == Magic
}

// declaredLength reads the total-length header field. data must have at
// least 8 bytes.
func declaredLength(data []byte) int {
	if len(data) < 8 {
		return 0
	}
	return int(wire.Int32(data[4:8]))
}

// Verify reports whether data begins with a well-formed frame header:
// magic present and the declared total length fits within data.
func Verify(data []byte) bool {
	if !verifyStart(data) {
		return false
	}
	if len(data) < 8 {
		return false
	}
	return declaredLength(data) <= len(data)
}

// Decode parses a serialized frame back into a Message. logger, if
// non-nil, receives a warning when the frame declares zero fields — the
// message is still returned, with FieldCount() == 0.
//
// Decode fails only for a bad magic header or a frame that runs out of
// bytes before every declared field has been read (ErrBadMagic /
// ErrTruncated, checked with errors.Is). An unrecognized field type
// ordinal is not an error: the field is stored as TypeNone and its value
// bytes are skipped, per the wire format's forward-compatibility rule.
func Decode(data []byte, logger Logger) (*message.Message, error) {
	if logger == nil {
		logger = nopLogger{}
	}
	if !verifyStart(data) {
		return nil, ErrBadMagic
	}
	if len(data) < 8 {
		return nil, ErrTruncated
	}
	if declaredLength(data) > len(data) {
		return nil, ErrTruncated
	}

	c := &cursor{data: data, off: 8}

	nameLen, err := c.readU32()
	if err != nil {
		return nil, err
	}
	nameBytes, err := c.readBytes(int(nameLen))
	if err != nil {
		return nil, err
	}
	m := message.New(string(nameBytes))

	fieldCount, err := c.readU32()
	if err != nil {
		return nil, err
	}

	if fieldCount == 0 {
		logger.Warnf("dynmsg/frame: decoded empty message %q", m.Name())
		return m, nil
	}

	for i := uint32(0); i < fieldCount; i++ {
		if err := decodeField(c, m, logger); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeField(c *cursor, m *message.Message, logger Logger) error {
	// Sub-frame total length is part of the wire format but, like the
	// original implementation, isn't needed to advance the cursor: every
	// other length is carried explicitly.
	if _, err := c.readU32(); err != nil {
		return err
	}
	nameLen, err := c.readU32()
	if err != nil {
		return err
	}
	nameBytes, err := c.readBytes(int(nameLen))
	if err != nil {
		return err
	}
	name := string(nameBytes)

	typOrdinal, err := c.readU32()
	if err != nil {
		return err
	}
	typ := message.Type(typOrdinal)
	if typOrdinal > uint32(message.TypeString) {
		logger.Warnf("dynmsg/frame: field %q has unknown type ordinal %d, treating as none", name, typOrdinal)
		typ = message.TypeNone
	}

	valLen, err := c.readU32()
	if err != nil {
		return err
	}
	valBytes, err := c.readBytes(int(valLen))
	if err != nil {
		return err
	}

	// Register the field before applying its value so Seq is allocated
	// even for a zero-width value (TypeNone or an empty string).
	m.RegisterField(name, typ)

	switch typ {
	case message.TypeEnum:
		if len(valBytes) < 4 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Uint32(valBytes))
	case message.TypeI16:
		if len(valBytes) < 2 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Int16(valBytes))
	case message.TypeU16:
		if len(valBytes) < 2 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Uint16(valBytes))
	case message.TypeI32:
		if len(valBytes) < 4 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Int32(valBytes))
	case message.TypeU32:
		if len(valBytes) < 4 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Uint32(valBytes))
	case message.TypeI64:
		if len(valBytes) < 8 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Int64(valBytes))
	case message.TypeU64:
		if len(valBytes) < 8 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Uint64(valBytes))
	case message.TypeF32:
		if len(valBytes) < 4 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Float32(valBytes))
	case message.TypeF64:
		if len(valBytes) < 8 {
			return fmt.Errorf("field %q: %w", name, ErrTruncated)
		}
		m.Put(name, typ, wire.Float64(valBytes))
	case message.TypeString:
		m.Put(name, typ, string(valBytes))
	case message.TypeNone:
		// zero-width, nothing to store
	}
	return nil
}
