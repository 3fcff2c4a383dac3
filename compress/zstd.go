package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdMaxDecompressedSize bounds the memory a single Decompress call may allocate, the
// same bound LZ4 decompression uses.
const zstdMaxDecompressedSize = lz4MaxDecompressedSize

// EncodeAll and DecodeAll may be called concurrently on one encoder or decoder, so a single
// shared instance of each serves every ZstdCompressor.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // envelopes carry their own checksum
			zstd.WithZeroFrames(true),
		)
	})

	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(0), // GOMAXPROCS concurrent DecodeAll calls
			zstd.WithDecoderMaxMemory(zstdMaxDecompressedSize),
		)
	})
)

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in codecs.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Compress compresses data into a single Zstandard frame. Empty input still produces a
// frame, so Decompress can tell it apart from a missing payload.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, err := zstdEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder unavailable: %w", err)
	}

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses Zstandard frames. Output larger than 128MiB is rejected.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd decoder unavailable: %w", err)
	}

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
