package internals

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// SHA256 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA256 struct {
	h hash.Hash
}

// NewSHA256 returns a properly initialized SHA256 instance
func NewSHA256() *SHA256 {
	c := new(SHA256)
	c.h = sha256.New()
	return c
}

// Name returns the hash algorithm's identifier
func (c *SHA256) Name() string {
	return string(HashSHA256)
}

// OutputSize returns the hash output size in bytes
func (c *SHA256) OutputSize() int {
	return sha256.Size
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA256) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *SHA256) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *SHA256) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
