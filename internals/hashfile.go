package internals

import (
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the number of bytes read from a file per read call
// while feeding the digest accumulator. The bound keeps peak memory
// independent of file size.
const DefaultChunkSize = 8192

// HashFile computes the digest of the file at path with the given
// algorithm, streaming the file in chunks of DefaultChunkSize bytes.
func HashFile(path string, algo HashAlgo) (string, error) {
	return HashFileChunked(path, algo, DefaultChunkSize)
}

// HashFileChunked computes the digest of the file at path with the given
// algorithm and chunk size. The file content is fed into the accumulator
// in read order and never held in memory as a whole. Open failures and
// mid-stream read failures are reported the same way: a wrapped error,
// no digest.
func HashFileChunked(path string, algo HashAlgo, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		return "", fmt.Errorf(`chunk size must be positive, got %d`, chunkSize)
	}

	fd, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(`opening '%s' for hashing: %w`, path, err)
	}
	defer fd.Close()

	accumulator := algo.Algorithm()
	chunk := make([]byte, chunkSize)
	for {
		n, err := fd.Read(chunk)
		if n > 0 {
			if err := accumulator.ReadBytes(chunk[:n]); err != nil {
				return "", fmt.Errorf(`hashing '%s': %w`, path, err)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf(`reading '%s': %w`, path, err)
		}
	}

	return accumulator.HexDigest(), nil
}
