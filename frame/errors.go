package frame

import "errors"

// Sentinel errors returned by Decode and Encode. Check with errors.Is.
var (
	// ErrBadMagic is returned when the first 4 bytes of a frame don't
	// match Magic.
	ErrBadMagic = errors.New("dynmsg/frame: bad magic")

	// ErrTruncated is returned when a frame's declared length exceeds
	// the number of bytes actually available, or when a field sub-frame
	// runs past the end of the buffer.
	ErrTruncated = errors.New("dynmsg/frame: truncated frame")

	// ErrNonSerializable is returned by CalcLen and Encode when a
	// message contains an 8-bit field (TypeI8/TypeU8): these types are
	// valid in-memory but have no wire representation.
	ErrNonSerializable = errors.New("dynmsg/frame: type has no wire representation")
)
