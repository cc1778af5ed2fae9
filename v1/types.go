package v1

import "github.com/jameswintermute/hasher/internals"

type DigestResult = internals.DigestResult
type HashAlgo = internals.HashAlgo
type TypeDescriber = internals.TypeDescriber

// RunParameters configures one batch run via the stable API
type RunParameters struct {
	Paths     []string
	Algorithm string
	Output    string
	ChunkSize int
	Describer TypeDescriber
}
