package envelope

import (
	"github.com/arloliu/base254/compress"
	"github.com/arloliu/base254/format"
	"github.com/arloliu/base254/internal/options"
)

// config holds the settings of a Pack call.
type config struct {
	compression format.CompressionType
	checksum    bool
}

func defaultConfig() *config {
	return &config{
		compression: format.CompressionNone,
		checksum:    true,
	}
}

// Option configures Pack.
type Option = options.Option[*config]

// WithCompression sets the compression applied to the payload before encoding.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.CreateCodec(compression, "envelope"); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// WithChecksum enables or disables the xxHash64 checksum of the payload. Enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.checksum = enabled
	})
}
