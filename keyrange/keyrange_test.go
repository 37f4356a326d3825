package keyrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvrpc/keyrange"
)

func TestSingle(t *testing.T) {
	t.Parallel()

	keyRange, err := keyrange.Single([]byte("foo"))
	require.NoError(t, err)

	assert.Equal(t, []byte("foo"), keyRange.Key())
	assert.Empty(t, keyRange.RangeEnd())
	assert.True(t, keyRange.IsSingleKey())
}

func TestSingle_EmptyKey(t *testing.T) {
	t.Parallel()

	_, err := keyrange.Single(nil)
	require.ErrorIs(t, err, keyrange.ErrEmptyKey)
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   []byte
		expected []byte
	}{
		{
			name:     "simple prefix",
			prefix:   []byte("foo"),
			expected: []byte("fop"),
		},
		{
			name:     "single byte",
			prefix:   []byte("a"),
			expected: []byte("b"),
		},
		{
			name:     "trailing 0xFF dropped",
			prefix:   []byte{'f', 'o', 0xFF},
			expected: []byte("fp"),
		},
		{
			name:     "all 0xFF becomes unbounded",
			prefix:   []byte{0xFF},
			expected: []byte{0x00},
		},
		{
			name:     "long all 0xFF becomes unbounded",
			prefix:   []byte{0xFF, 0xFF, 0xFF},
			expected: []byte{0x00},
		},
		{
			name:     "0xFE increments to 0xFF",
			prefix:   []byte{0xFE},
			expected: []byte{0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			keyRange, err := keyrange.Prefix(tt.prefix)
			require.NoError(t, err)

			assert.Equal(t, tt.prefix, keyRange.Key())
			assert.Equal(t, tt.expected, keyRange.RangeEnd())
			assert.False(t, keyRange.IsSingleKey())
		})
	}
}

func TestPrefix_EmptyPrefix(t *testing.T) {
	t.Parallel()

	_, err := keyrange.Prefix([]byte{})
	require.ErrorIs(t, err, keyrange.ErrEmptyKey)
}

func TestPrefix_DoesNotMutateArgument(t *testing.T) {
	t.Parallel()

	prefix := []byte("foo")

	keyRange, err := keyrange.Prefix(prefix)
	require.NoError(t, err)

	assert.Equal(t, []byte("foo"), prefix)
	assert.Equal(t, []byte("fop"), keyRange.RangeEnd())
}

func TestAll(t *testing.T) {
	t.Parallel()

	keyRange := keyrange.All()

	assert.Empty(t, keyRange.Key())
	assert.Equal(t, []byte{0x00}, keyRange.RangeEnd())
	assert.False(t, keyRange.IsSingleKey())
}

func TestFrom(t *testing.T) {
	t.Parallel()

	keyRange, err := keyrange.From([]byte("m"))
	require.NoError(t, err)

	assert.Equal(t, []byte("m"), keyRange.Key())
	assert.Equal(t, []byte{0x00}, keyRange.RangeEnd())
	assert.False(t, keyRange.IsSingleKey())
}

func TestFrom_EmptyKey(t *testing.T) {
	t.Parallel()

	_, err := keyrange.From(nil)
	require.ErrorIs(t, err, keyrange.ErrEmptyKey)
}

func TestNew(t *testing.T) {
	t.Parallel()

	keyRange, err := keyrange.New([]byte("a"), []byte("q"))
	require.NoError(t, err)

	assert.Equal(t, []byte("a"), keyRange.Key())
	assert.Equal(t, []byte("q"), keyRange.RangeEnd())
	assert.False(t, keyRange.IsSingleKey())
}

func TestNew_EmptyKey(t *testing.T) {
	t.Parallel()

	_, err := keyrange.New(nil, []byte("q"))
	require.ErrorIs(t, err, keyrange.ErrEmptyKey)
}

func TestNew_EmptyRangeEndIsSingleKey(t *testing.T) {
	t.Parallel()

	keyRange, err := keyrange.New([]byte("a"), nil)
	require.NoError(t, err)

	assert.True(t, keyRange.IsSingleKey())
}

func TestPrefixRangeEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   []byte
		expected []byte
	}{
		{"simple", []byte("foo"), []byte("fop")},
		{"trailing 0xFF", []byte{'a', 0xFF, 0xFF}, []byte("b")},
		{"all 0xFF", []byte{0xFF, 0xFF}, []byte{0x00}},
		{"empty", []byte{}, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, keyrange.PrefixRangeEnd(tt.prefix))
		})
	}
}
