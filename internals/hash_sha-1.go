package internals

import (
	"crypto/sha1"
	"encoding/hex"
	"hash"
)

// SHA1 implements the cryptographic hash algorithm invented by NSA (1995).
// Collisions are practical since 2017; it is kept for compatibility with
// legacy digest records only.
type SHA1 struct {
	h hash.Hash
}

// NewSHA1 returns a properly initialized SHA1 instance
func NewSHA1() *SHA1 {
	c := new(SHA1)
	c.h = sha1.New()
	return c
}

// Name returns the hash algorithm's identifier
func (c *SHA1) Name() string {
	return string(HashSHA1)
}

// OutputSize returns the hash output size in bytes
func (c *SHA1) OutputSize() int {
	return sha1.Size
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA1) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *SHA1) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *SHA1) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
