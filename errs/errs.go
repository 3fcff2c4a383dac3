// Package errs defines the sentinel errors returned by base254 and its sub-packages.
//
// Errors are wrapped with call-site context, so callers should compare with errors.Is:
//
//	data, err := base254.Decode(buf)
//	if errors.Is(err, errs.ErrMalformedHeader) {
//	    // not a base254 string
//	}
package errs

import "errors"

var (
	// ErrMalformedHeader is returned when a buffer does not start with the base254 magic bytes.
	ErrMalformedHeader = errors.New("malformed base254 header")

	// ErrTruncatedInput is returned when the input ends before its header is complete or in
	// the middle of an escape pair, and when no terminator can be found.
	ErrTruncatedInput = errors.New("truncated base254 input")

	// ErrInvalidLimit is returned when a negative scan limit is given.
	ErrInvalidLimit = errors.New("invalid scan limit")

	// ErrInvalidMarker is returned when a marker byte is zero.
	ErrInvalidMarker = errors.New("invalid marker byte")

	// ErrMarkerCollision is returned when identical markers are used for data that
	// contains the marker value, which cannot be represented without escaping.
	ErrMarkerCollision = errors.New("marker byte occurs in data but escaping is disabled")

	// ErrInvalidEnvelope is returned when a decoded envelope frame is malformed.
	ErrInvalidEnvelope = errors.New("invalid envelope frame")

	// ErrChecksumMismatch is returned when the envelope checksum does not match its payload.
	ErrChecksumMismatch = errors.New("envelope checksum mismatch")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
