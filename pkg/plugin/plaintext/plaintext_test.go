package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/pkg/plugin"
)

func TestExtractorCanProcess(t *testing.T) {
	ex, err := newExtractor(plugin.Settings{})
	require.NoError(t, err)

	assert.True(t, ex.CanProcess("report.txt", "", 100))
	assert.True(t, ex.CanProcess("README.MD", "", 100))
	assert.True(t, ex.CanProcess("submission.bin", "text/plain", 100))
	assert.False(t, ex.CanProcess("photo.jpg", "image/jpeg", 100))
	assert.False(t, ex.CanProcess("archive.zip", "application/zip", 100))
}

func TestExtractorCustomExtensions(t *testing.T) {
	ex, err := newExtractor(plugin.Settings{"extensions": []any{".go", ".py"}})
	require.NoError(t, err)

	assert.True(t, ex.CanProcess("main.go", "", 100))
	assert.True(t, ex.CanProcess("script.PY", "", 100))
	assert.False(t, ex.CanProcess("notes.txt", "", 100), "defaults are replaced, not extended")
}

func TestExtractorRejectsBadSettings(t *testing.T) {
	_, err := newExtractor(plugin.Settings{"extensions": "not-a-list"})
	assert.Error(t, err)

	_, err = newExtractor(plugin.Settings{"extensions": []any{42}})
	assert.Error(t, err)
}

func TestExtractorNormalizesContent(t *testing.T) {
	ex, err := newExtractor(plugin.Settings{})
	require.NoError(t, err)

	digests, warnings, err := ex.Process("a.txt", "text/plain", []byte("hello \r\nworld\t\r\n\r\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []byte("hello\nworld"), digests[DigestType])
}

func TestExtractorInvalidUTF8YieldsNullDigest(t *testing.T) {
	ex, err := newExtractor(plugin.Settings{})
	require.NoError(t, err)

	digests, warnings, err := ex.Process("a.txt", "text/plain", []byte{0xff, 0xfe, 0x00})
	require.NoError(t, err)

	// The type is present so the file is recorded as attempted, but the
	// digest itself is null and a warning explains why.
	require.Contains(t, digests, DigestType)
	assert.Nil(t, digests[DigestType])
	assert.Contains(t, warnings[DigestType], "not valid UTF-8")
}

func TestComparerIdenticalTextsScoreOne(t *testing.T) {
	c, err := newComparer(plugin.Settings{})
	require.NoError(t, err)

	score, err := c.Compare(DigestType, 1, []byte("hello\nworld"), 2, []byte("hello\nworld"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestComparerSimilarTextsScoreBetween(t *testing.T) {
	c, err := newComparer(plugin.Settings{})
	require.NoError(t, err)

	score, err := c.Compare(DigestType, 1, []byte("hello\nworld"), 2, []byte("hello\nworld\nextra"))
	require.NoError(t, err)
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
}

func TestComparerEmptyDigests(t *testing.T) {
	c, err := newComparer(plugin.Settings{})
	require.NoError(t, err)

	score, err := c.Compare(DigestType, 1, nil, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score, "two empty digests are identical")

	score, err = c.Compare(DigestType, 1, nil, 2, []byte("something"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestComparerRejectsForeignDigestType(t *testing.T) {
	c, err := newComparer(plugin.Settings{})
	require.NoError(t, err)

	_, err = c.Compare("ast", 1, []byte("a"), 2, []byte("b"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"trailing spaces", "a  \nb\t", "a\nb"},
		{"trailing newlines", "a\nb\n\n\n", "a\nb"},
		{"empty", "", ""},
		{"interior whitespace kept", "a  b\nc", "a  b\nc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}
