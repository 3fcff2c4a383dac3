// Package format defines the byte layout shared by the base254 encoder and decoder.
//
// An encoded buffer is laid out as:
//
//	offset 0:        'b'  (MagicFirst)
//	offset 1:        254  (MagicSecond)
//	offset 2:        null replacement marker (1..255)
//	offset 3:        escape marker (1..255)
//	offset 4..N-2:   transformed payload, never containing 0x00
//	offset N-1:      0x00 terminator
package format

const (
	MagicFirst  = 'b' // MagicFirst is the first magic byte (0x62).
	MagicSecond = 254 // MagicSecond is the second magic byte (0xFE).
	Terminator  = 0   // Terminator is the only zero byte of an encoded buffer.
)

// offsets and sizes in the encoded buffer
const (
	MagicSize          = 2                           // number of magic bytes
	NullMarkerOffset   = 2                           // byte offset of the null replacement marker
	EscapeMarkerOffset = 3                           // byte offset of the escape marker
	HeaderSize         = 4                           // magic bytes and both markers
	PayloadOffset      = HeaderSize                  // byte offset where the payload starts
	TerminatorSize     = 1                           // trailing terminator
	MinEncodedSize     = HeaderSize + TerminatorSize // size of the encoding of empty input
)
