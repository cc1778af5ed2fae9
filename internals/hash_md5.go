package internals

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
)

// MD5 is broken as a cryptographic hash; supported for legacy records
type MD5 struct {
	h hash.Hash
}

func NewMD5() *MD5 {
	c := new(MD5)
	c.h = md5.New()
	return c
}

func (c *MD5) Name() string {
	return string(HashMD5)
}

func (c *MD5) OutputSize() int {
	return md5.Size
}

func (c *MD5) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

func (c *MD5) Reset() {
	c.h.Reset()
}

func (c *MD5) HexDigest() string {
	return hex.EncodeToString(c.h.Sum([]byte{}))
}
