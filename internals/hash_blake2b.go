package internals

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// BLAKE2b implements the BLAKE2b cryptographic hash algorithm (2012)
// in its 256 bit output variant
type BLAKE2b struct {
	h hash.Hash
}

// NewBLAKE2b returns a properly initialized BLAKE2b instance
func NewBLAKE2b() *BLAKE2b {
	c := new(BLAKE2b)
	// New256 only fails for keys longer than 64 bytes; unkeyed here
	c.h, _ = blake2b.New256(nil)
	return c
}

// Name returns the hash algorithm's identifier
func (c *BLAKE2b) Name() string {
	return string(HashBLAKE2b)
}

// OutputSize returns the hash output size in bytes
func (c *BLAKE2b) OutputSize() int {
	return blake2b.Size256
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *BLAKE2b) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *BLAKE2b) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *BLAKE2b) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
