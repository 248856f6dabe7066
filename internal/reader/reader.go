package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Magic bytes used to detect compressed input
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ReadFile materializes a document file into an in-memory string, which
// is the only input form the parsing core accepts. Gzip and zstd
// compressed files are decompressed transparently, detected by their
// magic bytes rather than the file extension.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(raw, path)
}

// Decode turns raw file bytes into document text, decompressing when a
// known compression magic is present. The name is used for error
// reporting only.
func Decode(raw []byte, name string) (string, error) {
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("failed to open gzip stream %s: %w", name, err)
		}
		defer zr.Close()
		text, err := io.ReadAll(zr)
		if err != nil {
			return "", fmt.Errorf("failed to decompress %s: %w", name, err)
		}
		return string(text), nil

	case bytes.HasPrefix(raw, zstdMagic):
		zr, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("failed to open zstd stream %s: %w", name, err)
		}
		defer zr.Close()
		text, err := io.ReadAll(zr)
		if err != nil {
			return "", fmt.Errorf("failed to decompress %s: %w", name, err)
		}
		return string(text), nil

	default:
		return string(raw), nil
	}
}
