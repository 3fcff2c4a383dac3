package base254

import (
	"bytes"
	"fmt"

	"github.com/arloliu/base254/errs"
	"github.com/arloliu/base254/format"
)

// Encode selects markers with Analyze and encodes data with them.
//
// The returned slice is newly allocated, owned by the caller and ends with the only
// zero byte it contains.
func Encode(data []byte) []byte {
	m := Analyze(data)
	encoded := make([]byte, 0, EncodedLen(data, m))

	return appendEncoded(encoded, data, m)
}

// EncodeWithMarkers encodes data with caller supplied markers.
//
// Unlike Encode, it can fail: markers chosen by the caller may be zero, or may be equal
// while their value occurs in data. Such an encoding would not decode back to data, so it
// is rejected instead of being produced.
//
// Returns:
//   - []byte: Encoded string, terminator included
//   - error: ErrInvalidMarker if a marker is zero, ErrMarkerCollision if the markers are
//     equal and their value occurs in data
func EncodeWithMarkers(data []byte, m Markers) ([]byte, error) {
	if err := m.validateFor(data); err != nil {
		return nil, err
	}

	encoded := make([]byte, 0, EncodedLen(data, m))

	return appendEncoded(encoded, data, m), nil
}

// AppendEncode appends the encoding of data with markers m to dst and returns the
// extended slice. dst is grown at most once.
func AppendEncode(dst, data []byte, m Markers) ([]byte, error) {
	if err := m.validateFor(data); err != nil {
		return dst, err
	}

	required := EncodedLen(data, m)
	if cap(dst)-len(dst) < required {
		grown := make([]byte, len(dst), len(dst)+required)
		copy(grown, dst)
		dst = grown
	}

	return appendEncoded(dst, data, m), nil
}

// EncodedLen returns the exact size of the encoding of data with markers m:
// header, one byte per input byte, one extra byte per marker collision and the
// terminator.
func EncodedLen(data []byte, m Markers) int {
	size := format.HeaderSize + len(data) + format.TerminatorSize
	for _, b := range data {
		if m.isMarker(b) {
			size++
		}
	}

	return size
}

func (m Markers) validateFor(data []byte) error {
	if m.NullReplacement == 0 || m.Escape == 0 {
		return fmt.Errorf("markers (%d, %d): %w", m.NullReplacement, m.Escape, errs.ErrInvalidMarker)
	}

	if m.Sentinel() && bytes.IndexByte(data, m.NullReplacement) >= 0 {
		return fmt.Errorf("marker %d: %w", m.NullReplacement, errs.ErrMarkerCollision)
	}

	return nil
}

// appendEncoded writes header, payload and terminator. The caller guarantees dst has
// enough capacity.
func appendEncoded(dst, data []byte, m Markers) []byte {
	dst = append(dst, format.MagicFirst, format.MagicSecond, m.NullReplacement, m.Escape)

	for _, b := range data {
		switch {
		case b == 0:
			dst = append(dst, m.NullReplacement)
		case m.isMarker(b):
			dst = append(dst, m.Escape, b)
		default:
			dst = append(dst, b)
		}
	}

	return append(dst, format.Terminator)
}
