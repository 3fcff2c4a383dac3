// Package endian provides the byte order used by multi-byte fields of envelope frames.
//
// It combines binary.ByteOrder and binary.AppendByteOrder into a single EndianEngine, so
// frames can be both appended to and read from with one value:
//
//	engine := endian.GetLittleEndianEngine()
//	frame = engine.AppendUint64(frame, checksum)
//	checksum = engine.Uint64(frame[offset:])
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian, the byte order of envelope frames.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
