package internals

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// XXH64 is a fast non-cryptographic checksum; fine for change detection,
// unsuitable for integrity claims against an adversary
type XXH64 struct {
	h *xxhash.Digest
}

func NewXXH64() *XXH64 {
	c := new(XXH64)
	c.h = xxhash.New()
	return c
}

func (c *XXH64) Name() string {
	return string(HashXXH64)
}

func (c *XXH64) OutputSize() int {
	return 8
}

func (c *XXH64) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

func (c *XXH64) Reset() {
	c.h.Reset()
}

func (c *XXH64) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
