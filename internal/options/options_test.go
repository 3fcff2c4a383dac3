package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	level    int
	checksum bool
	calls    []string
}

func withLevel(level int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if level < 0 {
			return errors.New("level cannot be negative")
		}
		c.level = level
		c.calls = append(c.calls, "level")

		return nil
	})
}

func withChecksum(enabled bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.checksum = enabled
		c.calls = append(c.calls, "checksum")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withChecksum(true), withLevel(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.level)
		require.True(t, cfg.checksum)
		require.Equal(t, []string{"checksum", "level"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLevel(-1), withChecksum(true))
		require.EqualError(t, err, "level cannot be negative")
		require.False(t, cfg.checksum)
		require.Empty(t, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{level: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.level)
	})
}

func TestApply_PrimitiveTarget(t *testing.T) {
	var n int
	err := Apply(&n, Option[*int](NoError(func(p *int) { *p = 42 })))
	require.NoError(t, err)
	require.Equal(t, 42, n)
}
