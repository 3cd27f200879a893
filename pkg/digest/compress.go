package digest

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// Compress gzips raw digest bytes at maximum compression. Compression
// happens exactly once, at the pool boundary; everything past it sees
// compressed bytes only. nil stays nil: an absent digest is stored as
// NULL, never as compressed emptiness.
func Compress(raw []byte) ([]byte, error) {
	if raw == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating gzip writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compressing digest: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing gzip stream: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress is the inverse of Compress. nil stays nil.
func Decompress(compressed []byte) ([]byte, error) {
	if compressed == nil {
		return nil, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		_ = zr.Close()
		return nil, fmt.Errorf("decompressing digest: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip stream: %w", err)
	}
	return raw, nil
}
