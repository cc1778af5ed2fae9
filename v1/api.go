package v1

import (
	"os"

	"github.com/jameswintermute/hasher/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-31"

// SupportedHashAlgorithms returns the closed set of algorithm identifiers
func SupportedHashAlgorithms() []string {
	return internals.SupportedHashAlgorithms()
}

// HashFile returns the lowercase hex digest of one file
func HashFile(path string, algorithm string) (string, error) {
	algo, err := internals.ParseHashAlgo(algorithm)
	if err != nil {
		return "", err
	}
	return internals.HashFile(path, algo)
}

// Run executes one batch run: collect files under params.Paths, hash
// them sequentially and append records to params.Output. Records are
// echoed to stdout, notices go to stdout/stderr. Returns the exit code
// a CLI wrapper should terminate with.
func Run(params RunParameters) (int, error) {
	algo, err := internals.ParseHashAlgo(params.Algorithm)
	if err != nil {
		return 2, err
	}
	config := &internals.RunConfig{
		Paths:     params.Paths,
		Algorithm: algo,
		Output:    params.Output,
		ChunkSize: params.ChunkSize,
		Describer: params.Describer,
	}
	w := internals.NewPlainOutput(os.Stdout)
	log := &internals.PlainConsole{Out: os.Stdout, Err: os.Stderr}
	return config.Run(w, log)
}
