package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const sample = "a,b,c\n1,2,3\n"

func TestReadFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sample {
		t.Errorf("content = %q, want %q", got, sample)
	}
}

func TestReadFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sample)); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	// Deliberately no .gz extension; detection is by magic bytes.
	path := filepath.Join(t.TempDir(), "compressed.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sample {
		t.Errorf("content = %q, want %q", got, sample)
	}
}

func TestReadFile_Zstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	if _, err := zw.Write([]byte(sample)); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	path := filepath.Join(t.TempDir(), "compressed.zst")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sample {
		t.Errorf("content = %q, want %q", got, sample)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDecode_TruncatedGzip(t *testing.T) {
	if _, err := Decode([]byte{0x1f, 0x8b, 0x00}, "broken"); err == nil {
		t.Error("truncated gzip stream should fail")
	}
}
