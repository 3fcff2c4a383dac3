// Package base254 converts arbitrary binary data to a zero-terminated string and back.
//
// An encoded string contains exactly one zero byte, its terminator, so it can travel
// through APIs that assume C-style strings. Zero bytes of the input are replaced by a
// marker byte chosen from the least frequent byte values of the input; literal
// occurrences of the markers are escaped with a second marker.
//
// # Format
//
//	'b' | 254 | null replacement | escape | payload ... | 0x00
//
// When the null replacement value never occurs in the input, the escape marker is set
// to the same value and the decoder never treats any byte as an escape.
//
// # Basic Usage
//
//	encoded := base254.Encode(data)
//
//	decoded, err := base254.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//	defer decoded.Release()
//	use(decoded.Bytes())
//
// # Size
//
// The encoded size is len(data) + 5 plus one byte per input byte that equals a marker.
// Because markers are the least used values, the worst case is len(data)/128 extra
// bytes and on average it is about len(data)/133.
//
// # Thread Safety
//
// All functions are safe for concurrent use. A Data value must be released by a single
// goroutine.
package base254

import (
	"github.com/arloliu/base254/internal/histogram"
)

// Markers holds the two reserved byte values of an encoding.
type Markers struct {
	// NullReplacement is emitted in place of every zero byte of the input.
	NullReplacement byte
	// Escape precedes literal occurrences of either marker. Equal to NullReplacement
	// when no escaping is needed.
	Escape byte
}

// Sentinel reports whether escaping is disabled, which is signaled by both markers
// holding the same value.
func (m Markers) Sentinel() bool {
	return m.NullReplacement == m.Escape
}

// isMarker reports whether b collides with one of the markers.
func (m Markers) isMarker(b byte) bool {
	return b == m.NullReplacement || b == m.Escape
}

// Analyze scans data once and selects its markers.
//
// The null replacement is the value in [1,255] that occurs least often, lower values
// winning ties. If it does not occur at all, Escape equals NullReplacement. Otherwise
// Escape is the second least used value. Zero is never selected.
//
// Analyze never fails; empty input yields Markers{1, 1}.
func Analyze(data []byte) Markers {
	nullReplacement, escape := histogram.New(data).Select()

	return Markers{NullReplacement: nullReplacement, Escape: escape}
}
