// Package envelope wraps a payload in a checksummed, optionally compressed frame and
// encodes the frame as a base254 string.
//
// The decoded frame is laid out as:
//
//	offset 0:  version (1)
//	offset 1:  flags (bit 0: checksum present)
//	offset 2:  compression type (format.CompressionType)
//	offset 3:  xxHash64 of the original payload, little endian (only with checksum flag)
//	rest:      compressed payload
//
// The base254 format itself only validates its magic bytes; the checksum lets Unpack
// detect payloads altered in transit.
//
// # Usage
//
//	s, err := envelope.Pack(data, envelope.WithCompression(format.CompressionZstd))
//	...
//	data, err := envelope.Unpack(s)
package envelope
