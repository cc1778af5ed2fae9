package internals

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA3_256 implements the Keccak-based cryptographic hash algorithm standardized by NIST (2015)
type SHA3_256 struct {
	h hash.Hash
}

// NewSHA3_256 returns a properly initialized SHA3_256 instance
func NewSHA3_256() *SHA3_256 {
	c := new(SHA3_256)
	c.h = sha3.New256()
	return c
}

// Name returns the hash algorithm's identifier
func (c *SHA3_256) Name() string {
	return string(HashSHA3_256)
}

// OutputSize returns the hash output size in bytes
func (c *SHA3_256) OutputSize() int {
	return 32
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA3_256) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *SHA3_256) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *SHA3_256) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
