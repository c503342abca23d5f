// Package wire implements architecture-independent packing and unpacking
// of fixed-width integers and IEEE-754 floats into big-endian byte
// sequences.
//
// Every function here is pure and total: callers are responsible for
// passing slices of the correct width. None of this package depends on
// the host's native byte order or float layout.
package wire
