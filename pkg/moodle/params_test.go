package moodle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsEncodeScalars(t *testing.T) {
	vals, err := Params{
		"name":    "course",
		"id":      int64(42),
		"count":   7,
		"enabled": true,
		"hidden":  false,
		"ratio":   0.5,
	}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "course", vals.Get("name"))
	assert.Equal(t, "42", vals.Get("id"))
	assert.Equal(t, "7", vals.Get("count"))
	assert.Equal(t, "1", vals.Get("enabled"))
	assert.Equal(t, "0", vals.Get("hidden"))
	assert.Equal(t, "0.5", vals.Get("ratio"))
}

func TestParamsEncodeTime(t *testing.T) {
	ts := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	vals, err := Params{"since": ts}.Encode()
	require.NoError(t, err)
	assert.Equal(t, "1769941800", vals.Get("since"))
}

func TestParamsEncodeSlices(t *testing.T) {
	vals, err := Params{"courseids": []int64{10, 20, 30}}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "10", vals.Get("courseids[0]"))
	assert.Equal(t, "20", vals.Get("courseids[1]"))
	assert.Equal(t, "30", vals.Get("courseids[2]"))
}

func TestParamsEncodeNestedStructures(t *testing.T) {
	vals, err := Params{
		"messages": []any{
			map[string]any{"touserid": int64(5), "text": "hello"},
			map[string]any{"touserid": int64(6), "text": "bye"},
		},
	}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "5", vals.Get("messages[0][touserid]"))
	assert.Equal(t, "hello", vals.Get("messages[0][text]"))
	assert.Equal(t, "6", vals.Get("messages[1][touserid]"))
	assert.Equal(t, "bye", vals.Get("messages[1][text]"))
}

func TestParamsEncodeMapKeysSorted(t *testing.T) {
	vals, err := Params{
		"options": map[string]any{"b": 2, "a": 1, "c": 3},
	}.Encode()
	require.NoError(t, err)

	assert.Equal(t, "1", vals.Get("options[a]"))
	assert.Equal(t, "2", vals.Get("options[b]"))
	assert.Equal(t, "3", vals.Get("options[c]"))
}

func TestParamsEncodeRejectsNil(t *testing.T) {
	_, err := Params{"bad": nil}.Encode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestParamsEncodeRejectsUnsupportedType(t *testing.T) {
	_, err := Params{"bad": struct{ X int }{1}}.Encode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestParamsEncodeDeterministic(t *testing.T) {
	p := Params{"z": 1, "a": 2, "m": 3}
	first, err := p.Encode()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := p.Encode()
		require.NoError(t, err)
		assert.Equal(t, first.Encode(), again.Encode())
	}
}
