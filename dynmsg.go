// Package dynmsg is the public façade over the module's three layers:
// wire (primitive big-endian/IEEE-754 packing), message (the dynamic,
// schema-carrying record), and frame (the self-describing binary wire
// format that carries a message end to end).
//
// Most callers only need this package: build a message with New and Put,
// turn it into bytes with Encode, and turn bytes back into a message with
// Decode.
package dynmsg

import (
	"github.com/nilgiri-dev/dynmsg/frame"
	"github.com/nilgiri-dev/dynmsg/message"
)

// Message is a named, ordered collection of typed fields.
type Message = message.Message

// Type identifies the Go-native kind a field's value holds.
type Type = message.Type

// SerializedData carries the bytes produced by Encode.
type SerializedData = frame.SerializedData

// Field value types, re-exported from package message.
const (
	TypeEnum   = message.TypeEnum
	TypeI8     = message.TypeI8
	TypeU8     = message.TypeU8
	TypeI16    = message.TypeI16
	TypeU16    = message.TypeU16
	TypeI32    = message.TypeI32
	TypeU32    = message.TypeU32
	TypeI64    = message.TypeI64
	TypeU64    = message.TypeU64
	TypeF32    = message.TypeF32
	TypeF64    = message.TypeF64
	TypeString = message.TypeString
	TypeNone   = message.TypeNone
)

// Errors a caller may check with errors.Is, re-exported from package frame.
var (
	ErrBadMagic        = frame.ErrBadMagic
	ErrTruncated       = frame.ErrTruncated
	ErrNonSerializable = frame.ErrNonSerializable
)

// New allocates an empty, named Message.
func New(name string) *Message {
	return message.New(name)
}

// Encode serializes m into a SerializedData. I8 and U8 fields cause
// ErrNonSerializable — those types exist for in-memory use only.
func Encode(m *Message) (*SerializedData, error) {
	return frame.Encode(m)
}

// Decode parses a frame's bytes (such as SerializedData.Bytes) back into a
// Message, discarding any
// diagnostic warnings. Use frame.Decode directly to supply a logger.
func Decode(data []byte) (*Message, error) {
	return frame.Decode(data, nil)
}
