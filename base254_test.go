package base254

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// allByteValues returns every byte value once, in ascending order.
func allByteValues() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	return data
}

func randomBytes(seed int64, size int) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	_, _ = rng.Read(data)

	return data
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Markers
	}{
		{name: "empty", data: nil, want: Markers{NullReplacement: 1, Escape: 1}},
		{name: "zeros only", data: make([]byte, 10), want: Markers{NullReplacement: 1, Escape: 1}},
		{name: "absent value becomes sentinel", data: []byte{0x00, 0x41, 0x41}, want: Markers{NullReplacement: 1, Escape: 1}},
		{name: "all values once", data: allByteValues(), want: Markers{NullReplacement: 1, Escape: 2}},
		{
			name: "least and second least used",
			data: append(bytes.Repeat(allByteValues(), 2), append(allByteValues()[1:6], allByteValues()[7:]...)...),
			want: Markers{NullReplacement: 6, Escape: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Analyze(tt.data))
		})
	}
}

func TestAnalyze_MarkersAreNonZero(t *testing.T) {
	inputs := [][]byte{
		nil,
		make([]byte, 300),
		allByteValues(),
		bytes.Repeat(allByteValues()[1:], 4),
		randomBytes(1, 4096),
	}

	for _, data := range inputs {
		m := Analyze(data)
		require.NotZero(t, m.NullReplacement)
		require.NotZero(t, m.Escape)
	}
}

func TestAnalyze_SentinelOnlyWhenUnused(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		data := randomBytes(seed, 1+int(seed)*97)
		m := Analyze(data)
		if m.Sentinel() {
			require.Equal(t, -1, bytes.IndexByte(data, m.NullReplacement))
		} else {
			require.NotEqual(t, -1, bytes.IndexByte(data, m.NullReplacement))
		}
	}
}

func TestMarkers_Sentinel(t *testing.T) {
	require.True(t, Markers{NullReplacement: 9, Escape: 9}.Sentinel())
	require.False(t, Markers{NullReplacement: 9, Escape: 10}.Sentinel())
}
