package envelope

import (
	"fmt"

	"github.com/arloliu/base254"
	"github.com/arloliu/base254/compress"
	"github.com/arloliu/base254/endian"
	"github.com/arloliu/base254/errs"
	"github.com/arloliu/base254/format"
	"github.com/arloliu/base254/internal/hash"
	"github.com/arloliu/base254/internal/options"
)

const (
	Version = 1 // Version is the frame version written by Pack.

	FlagChecksum = 0x01 // FlagChecksum marks a frame carrying an xxHash64 checksum.

	frameHeaderSize = 3 // version, flags, compression
	checksumSize    = 8
)

var engine = endian.GetLittleEndianEngine()

// Pack compresses data, frames it and encodes the frame as a base254 string.
//
// Returns:
//   - []byte: Zero-terminated base254 string
//   - error: Invalid option or compression failure
func Pack(data []byte, opts ...Option) ([]byte, error) {
	packed, _, err := PackWithStats(data, opts...)
	return packed, err
}

// PackWithStats is Pack that also reports the effect of the compression step.
func PackWithStats(data []byte, opts ...Option) ([]byte, compress.CompressionStats, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, compress.CompressionStats{}, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	compressed, stats, err := compress.CompressWithStats(codec, cfg.compression, data)
	if err != nil {
		return nil, stats, err
	}

	size := frameHeaderSize + len(compressed)
	var flags byte
	if cfg.checksum {
		flags |= FlagChecksum
		size += checksumSize
	}

	frame := make([]byte, 0, size)
	frame = append(frame, Version, flags, byte(cfg.compression))
	if cfg.checksum {
		frame = engine.AppendUint64(frame, hash.Checksum(data))
	}
	frame = append(frame, compressed...)

	return base254.Encode(frame), stats, nil
}

// Unpack decodes a base254 string produced by Pack and returns the original payload.
//
// Returns:
//   - []byte: Original payload, owned by the caller
//   - error: base254 decoding errors, ErrInvalidEnvelope, ErrUnsupportedCompression,
//     decompression errors or ErrChecksumMismatch
func Unpack(s []byte) ([]byte, error) {
	return UnpackBounded(s, 0)
}

// UnpackBounded is Unpack with a scan limit, see base254.DecodeBounded.
func UnpackBounded(s []byte, limit int) ([]byte, error) {
	decoded, err := base254.DecodeBounded(s, limit)
	if err != nil {
		return nil, err
	}
	defer decoded.Release()

	return unframe(decoded.Bytes())
}

// unframe parses a frame. The returned payload never aliases frame.
func unframe(frame []byte) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, fmt.Errorf("frame of %d bytes: %w", len(frame), errs.ErrInvalidEnvelope)
	}

	if frame[0] != Version {
		return nil, fmt.Errorf("frame version %d: %w", frame[0], errs.ErrInvalidEnvelope)
	}

	flags := frame[1]
	if flags&^FlagChecksum != 0 {
		return nil, fmt.Errorf("unknown frame flags %#02x: %w", flags, errs.ErrInvalidEnvelope)
	}

	compression := format.CompressionType(frame[2])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	body := frame[frameHeaderSize:]
	var sum uint64
	hasChecksum := flags&FlagChecksum != 0
	if hasChecksum {
		if len(body) < checksumSize {
			return nil, fmt.Errorf("missing checksum: %w", errs.ErrInvalidEnvelope)
		}
		sum = engine.Uint64(body)
		body = body[checksumSize:]
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, err
	}

	if compression == format.CompressionNone {
		payload = append([]byte(nil), payload...)
	}
	if payload == nil {
		payload = []byte{}
	}

	if hasChecksum && hash.Checksum(payload) != sum {
		return nil, fmt.Errorf("%s payload of %d bytes: %w", compression, len(payload), errs.ErrChecksumMismatch)
	}

	return payload, nil
}
