// Package compress provides the compression codecs available to envelope frames.
//
// A base254 string grows by at least five bytes and by one byte per marker collision, so
// payloads that compress well are cheaper to transport when they are compressed before
// being encoded. The envelope package selects a codec by format.CompressionType and
// stores the type in the frame so Unpack can pick the matching decompressor.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): returns its input unchanged
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Compressed output of any algorithm may contain zero bytes; it is the base254 layer that
// makes the result zero-terminator safe.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for concurrent use.
package compress
