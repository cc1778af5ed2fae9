package internals

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf(`WriteFile: %v`, err)
	}
	return path
}

func TestHashFileEmptyFile(t *testing.T) {
	path := writeTestFile(t, `empty.bin`, []byte{})
	digest, err := HashFile(path, HashSHA256)
	if err != nil {
		t.Fatalf(`HashFile: %v`, err)
	}
	expected := `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`
	if digest != expected {
		t.Errorf(`digest of empty file: expected %s, got %s`, expected, digest)
	}
}

func TestHashFileDeterminism(t *testing.T) {
	path := writeTestFile(t, `data.bin`, exampleContent)
	first, err := HashFile(path, HashSHA256)
	if err != nil {
		t.Fatalf(`HashFile: %v`, err)
	}
	second, err := HashFile(path, HashSHA256)
	if err != nil {
		t.Fatalf(`HashFile: %v`, err)
	}
	if first != second {
		t.Errorf(`hashing the same file twice differs: %s vs %s`, first, second)
	}
}

// TestChunkSizeIndependence checks that the chunk size does not leak
// into the digest, using a file larger than the default chunk size
func TestChunkSizeIndependence(t *testing.T) {
	content := bytes.Repeat(exampleContent, 1000) // ~28 KiB, spans multiple chunks
	path := writeTestFile(t, `large.bin`, content)

	reference, err := HashFileChunked(path, HashSHA256, DefaultChunkSize)
	if err != nil {
		t.Fatalf(`HashFileChunked: %v`, err)
	}
	for _, chunkSize := range []int{1, 7, 64, 4096, 1 << 20} {
		digest, err := HashFileChunked(path, HashSHA256, chunkSize)
		if err != nil {
			t.Fatalf(`HashFileChunked(chunk=%d): %v`, chunkSize, err)
		}
		if digest != reference {
			t.Errorf(`chunk size %d yields %s, chunk size %d yields %s`, chunkSize, digest, DefaultChunkSize, reference)
		}
	}
}

func TestHashFileMissingFile(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), `does-not-exist`), HashSHA256)
	if err == nil {
		t.Error(`expected error for missing file, got nil`)
	}
}

func TestHashFileChunkedRejectsNonPositiveChunkSize(t *testing.T) {
	path := writeTestFile(t, `data.bin`, exampleContent)
	for _, chunkSize := range []int{0, -1} {
		if _, err := HashFileChunked(path, HashSHA256, chunkSize); err == nil {
			t.Errorf(`chunk size %d accepted`, chunkSize)
		}
	}
}
