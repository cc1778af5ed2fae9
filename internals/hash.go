package internals

import (
	"fmt"
	"strings"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for supported digest algorithms.
type HashAlgo string

const (
	HashSHA256   HashAlgo = `sha256`
	HashSHA1     HashAlgo = `sha1`
	HashMD5      HashAlgo = `md5`
	HashSHA512   HashAlgo = `sha512`
	HashSHA3_256 HashAlgo = `sha3-256`
	HashBLAKE2b  HashAlgo = `blake2b`
	HashBLAKE3   HashAlgo = `blake3`
	HashXXH64    HashAlgo = `xxhash64`
)

// DefaultHash is used whenever the user did not pick an algorithm
const DefaultHash HashAlgo = HashSHA256

// Hash defines a uniform interface for incremental digest accumulators
type Hash interface {
	// Name returns the hash algorithm's identifier
	Name() string
	// OutputSize returns the digest output size in bytes
	OutputSize() int
	// ReadBytes updates the accumulator state with the given bytes
	ReadBytes(data []byte) error
	// Reset reinitializes the accumulator state
	Reset()
	// HexDigest finalizes the accumulator into a lowercase hex digest
	HexDigest() string
}

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers
func SupportedHashAlgorithms() []string {
	return []string{
		string(HashSHA256),
		string(HashSHA1),
		string(HashMD5),
		string(HashSHA512),
		string(HashSHA3_256),
		string(HashBLAKE2b),
		string(HashBLAKE3),
		string(HashXXH64),
	}
}

// ParseHashAlgo validates name against the closed set of supported
// algorithm identifiers. Unknown names are rejected here, before any
// file is opened.
func ParseHashAlgo(name string) (HashAlgo, error) {
	for _, algo := range SupportedHashAlgorithms() {
		if algo == name {
			return HashAlgo(name), nil
		}
	}
	return HashAlgo(``), fmt.Errorf(`unsupported hash algorithm '%s'; expected one of: %s`,
		name, strings.Join(SupportedHashAlgorithms(), `, `))
}

// DigestSize returns the output size in bytes for a given hash algorithm.
func (h HashAlgo) DigestSize() int {
	switch h {
	case HashSHA256:
		return 32
	case HashSHA1:
		return 20
	case HashMD5:
		return 16
	case HashSHA512:
		return 64
	case HashSHA3_256:
		return 32
	case HashBLAKE2b:
		return 32
	case HashBLAKE3:
		return 32
	case HashXXH64:
		return 8
	}
	return 0
}

// Algorithm returns a freshly initialized Hash instance for the given
// hash algorithm.
func (h HashAlgo) Algorithm() Hash {
	switch h {
	case HashSHA256:
		return NewSHA256()
	case HashSHA1:
		return NewSHA1()
	case HashMD5:
		return NewMD5()
	case HashSHA512:
		return NewSHA512()
	case HashSHA3_256:
		return NewSHA3_256()
	case HashBLAKE2b:
		return NewBLAKE2b()
	case HashBLAKE3:
		return NewBLAKE3()
	case HashXXH64:
		return NewXXH64()
	}
	panic(fmt.Sprintf(`unknown hash algorithm '%s'`, string(h)))
}
