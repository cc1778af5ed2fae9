package internals

import (
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// SHA512 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA512 struct {
	h hash.Hash
}

// NewSHA512 returns a properly initialized SHA512 instance
func NewSHA512() *SHA512 {
	c := new(SHA512)
	c.h = sha512.New()
	return c
}

// Name returns the hash algorithm's identifier
func (c *SHA512) Name() string {
	return string(HashSHA512)
}

// OutputSize returns the hash output size in bytes
func (c *SHA512) OutputSize() int {
	return sha512.Size
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA512) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *SHA512) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *SHA512) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
