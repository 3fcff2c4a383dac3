package base254

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/base254/errs"
	"github.com/arloliu/base254/format"
	"github.com/arloliu/base254/internal/pool"
)

// decodeState is the state of the payload scanner.
type decodeState uint8

const (
	stateNormal  decodeState = iota // next byte is a plain, null replacement or escape byte
	stateEscaped                    // next byte is a literal
)

func (s decodeState) String() string {
	switch s {
	case stateNormal:
		return "Normal"
	case stateEscaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// Data is a decoded payload backed by pooled storage.
//
// The caller owns Data and must call Release exactly once when done with it.
type Data struct {
	buf *pool.ByteBuffer
}

// Bytes returns the decoded bytes. The slice is only valid until Release is called.
func (d *Data) Bytes() []byte {
	if d == nil || d.buf == nil {
		return nil
	}

	return d.buf.Bytes()
}

// Size returns the number of decoded bytes.
func (d *Data) Size() int {
	if d == nil || d.buf == nil {
		return 0
	}

	return d.buf.Len()
}

// WriteTo writes the decoded bytes to w.
func (d *Data) WriteTo(w io.Writer) (int64, error) {
	if d == nil || d.buf == nil {
		return 0, nil
	}

	return d.buf.WriteTo(w)
}

// Release returns the storage to the pool. Further calls are no-ops.
func (d *Data) Release() {
	if d == nil || d.buf == nil {
		return
	}

	pool.PutDecodeBuffer(d.buf)
	d.buf = nil
}

// Decode decodes a base254 string whose terminator lies within buf.
//
// Bytes after the terminator are ignored. A buffer without terminator is reported as
// ErrTruncatedInput instead of being scanned past its end.
//
// Returns:
//   - *Data: Decoded payload, to be released by the caller
//   - error: ErrMalformedHeader or ErrTruncatedInput
func Decode(buf []byte) (*Data, error) {
	if err := checkMagic(buf); err != nil {
		return nil, err
	}

	end := bytes.IndexByte(buf, format.Terminator)
	if end < 0 {
		return nil, fmt.Errorf("no terminator in %d bytes: %w", len(buf), errs.ErrTruncatedInput)
	}

	return decode(buf[:end])
}

// DecodeBounded decodes a base254 string scanning at most limit bytes of buf.
//
// Scanning stops at the terminator or after limit bytes, whichever comes first. A limit
// within buf may end the scan without a terminator; a limit beyond len(buf) requires the
// terminator to lie within buf. A limit of zero means no explicit limit and behaves like
// Decode.
//
// Returns:
//   - *Data: Decoded payload, to be released by the caller
//   - error: ErrInvalidLimit for a negative limit, ErrTruncatedInput for a limit in 1..3,
//     a short buffer, a missing terminator or a dangling escape, ErrMalformedHeader for a
//     bad header
func DecodeBounded(buf []byte, limit int) (*Data, error) {
	switch {
	case limit < 0:
		return nil, fmt.Errorf("limit %d: %w", limit, errs.ErrInvalidLimit)
	case limit == 0:
		return Decode(buf)
	case limit < format.HeaderSize:
		return nil, fmt.Errorf("limit %d shorter than header: %w", limit, errs.ErrTruncatedInput)
	}

	clamped := limit > len(buf)
	if !clamped {
		buf = buf[:limit]
	}
	if err := checkMagic(buf); err != nil {
		return nil, err
	}

	end := bytes.IndexByte(buf, format.Terminator)
	switch {
	case end >= 0:
		buf = buf[:end]
	case clamped:
		// the limit reaches past buf, so the terminator must lie within buf
		return nil, fmt.Errorf("no terminator in %d bytes (limit %d): %w", len(buf), limit, errs.ErrTruncatedInput)
	}

	return decode(buf)
}

// decode decodes an unterminated base254 string: header followed by the payload bytes.
// src must not contain the terminator.
func decode(src []byte) (*Data, error) {
	m, err := parseHeader(src)
	if err != nil {
		return nil, err
	}

	payload := src[format.PayloadOffset:]
	// escape pairs only shrink the output, so the payload length is an upper bound
	bb := pool.GetDecodeBuffer(len(payload))

	state := stateNormal
	for _, c := range payload {
		switch {
		case state == stateEscaped:
			_ = bb.WriteByte(c)
			state = stateNormal
		case c == m.Escape && !m.Sentinel():
			state = stateEscaped
		case c == m.NullReplacement:
			_ = bb.WriteByte(0)
		default:
			_ = bb.WriteByte(c)
		}
	}

	if state != stateNormal {
		pool.PutDecodeBuffer(bb)
		return nil, fmt.Errorf("payload ends in %s state: %w", state, errs.ErrTruncatedInput)
	}

	return &Data{buf: bb}, nil
}

// checkMagic validates the magic bytes at the start of buf.
func checkMagic(buf []byte) error {
	if len(buf) < format.MagicSize {
		return fmt.Errorf("%d bytes: %w", len(buf), errs.ErrTruncatedInput)
	}

	if buf[0] != format.MagicFirst || buf[1] != format.MagicSecond {
		return fmt.Errorf("magic %#02x %#02x: %w", buf[0], buf[1], errs.ErrMalformedHeader)
	}

	return nil
}

// parseHeader reads the markers of a buffer whose magic bytes were validated. A zero
// marker cuts the header short, so both markers are non-zero on success.
func parseHeader(src []byte) (Markers, error) {
	if len(src) < format.HeaderSize {
		return Markers{}, fmt.Errorf("header of %d bytes: %w", len(src), errs.ErrTruncatedInput)
	}

	return Markers{
		NullReplacement: src[format.NullMarkerOffset],
		Escape:          src[format.EscapeMarkerOffset],
	}, nil
}
