package internals

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// BLAKE3 implements the BLAKE3 cryptographic hash algorithm (2020)
type BLAKE3 struct {
	h *blake3.Hasher
}

// NewBLAKE3 returns a properly initialized BLAKE3 instance
func NewBLAKE3() *BLAKE3 {
	c := new(BLAKE3)
	c.h = blake3.New()
	return c
}

// Name returns the hash algorithm's identifier
func (c *BLAKE3) Name() string {
	return string(HashBLAKE3)
}

// OutputSize returns the hash output size in bytes
func (c *BLAKE3) OutputSize() int {
	return 32
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *BLAKE3) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Reset reinitializes the hash state
func (c *BLAKE3) Reset() {
	c.h.Reset()
}

// HexDigest finalizes the hash state into a lowercase hex digest
func (c *BLAKE3) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
