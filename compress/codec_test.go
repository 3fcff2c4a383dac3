package compress

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/arloliu/base254/errs"
	"github.com/arloliu/base254/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func testPayloads() map[string][]byte {
	rng := rand.New(rand.NewSource(3))
	random := make([]byte, 8192)
	_, _ = rng.Read(random)

	return map[string][]byte{
		"zeros":      make([]byte, 4096),
		"repetitive": bytes.Repeat([]byte("payload with \x00 embedded zero "), 200),
		"random":     random,
		"tiny":       {0x00},
	}
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "envelope")
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "envelope")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.ErrorContains(t, err, "envelope")
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range testPayloads() {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(data, decompressed))
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed, ct.String())
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte("abc")
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])
}

func TestCompressWithStats(t *testing.T) {
	data := make([]byte, 10000)
	compressed, stats, err := CompressWithStats(NewS2Compressor(), format.CompressionS2, data)
	require.NoError(t, err)

	require.Equal(t, format.CompressionS2, stats.Algorithm)
	require.Equal(t, int64(10000), stats.OriginalSize)
	require.Equal(t, int64(len(compressed)), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)
}

func TestCompressionStats_EmptyInput(t *testing.T) {
	stats := CompressionStats{}
	require.Zero(t, stats.CompressionRatio())
	require.Equal(t, 100.0, stats.SpaceSavings())
}

func TestZstdCompressor_EmptyInputProducesFrame(t *testing.T) {
	compressed, err := NewZstdCompressor().Compress(nil)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := NewZstdCompressor().Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestZstdCompressor_ConcurrentUse(t *testing.T) {
	codec := NewZstdCompressor()
	payloads := testPayloads()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for name, data := range payloads {
				compressed, err := codec.Compress(data)
				if !assert.NoError(t, err, "worker %d %s", id, name) {
					return
				}
				decompressed, err := codec.Decompress(compressed)
				if !assert.NoError(t, err, "worker %d %s", id, name) {
					return
				}
				assert.True(t, bytes.Equal(data, decompressed), "worker %d %s", id, name)
			}
		}(i)
	}
	wg.Wait()
}
