// Package endian provides byte order engines for decoding stream bytes.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, and maps the query
// model's schema.Endianness values onto the standard library's engines. The
// returned engines are the stdlib's immutable byte order values and are safe
// for concurrent use.
package endian

import (
	"encoding/binary"

	"github.com/neonimp/neoncore/schema"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so any stdlib
// byte order value can be used directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine, the engine default.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}

// Of returns the engine for a schema endianness. EndianUnset resolves to
// little-endian, matching the document-level default.
func Of(e schema.Endianness) EndianEngine {
	if e == schema.EndianBig {
		return Big()
	}

	return Little()
}
