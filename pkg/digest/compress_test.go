package digest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	original := []byte("hello\nworld\nhello\nworld\nhello\nworld")

	compressed, err := Compress(original)
	require.NoError(t, err)
	require.NotNil(t, compressed)
	assert.False(t, bytes.Equal(original, compressed))

	restored, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestCompressNilStaysNil(t *testing.T) {
	compressed, err := Compress(nil)
	require.NoError(t, err)
	assert.Nil(t, compressed)

	restored, err := Decompress(nil)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestCompressEmptySlice(t *testing.T) {
	compressed, err := Compress([]byte{})
	require.NoError(t, err)

	restored, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	_, err := Decompress([]byte("definitely not gzip"))
	assert.Error(t, err)
}
