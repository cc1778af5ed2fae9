package internals

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// RunConfig collects everything one batch run needs. A zero Describer
// falls back to file(1) detection, a zero ChunkSize to DefaultChunkSize.
type RunConfig struct {
	Paths      []string      `json:"paths"`
	Algorithm  HashAlgo      `json:"algorithm"`
	Output     string        `json:"output"`
	ChunkSize  int           `json:"chunk-size"`
	JSONOutput bool          `json:"json"`
	Describer  TypeDescriber `json:"-"`
}

// Run executes the batch on the given parameter set: collect the file
// list, then hash the files one at a time in collection order, appending
// one record per success to the run log. Result lines are written to
// Output w, notices to log. It returns a tuple (exit code, error).
//
// Per-file failures are isolated: an unreadable file produces an error
// notice and no record, and the batch continues, so the exit code is 0
// even if individual files failed. Only an empty resolved file set is
// fatal; in that case the output destination is not created or touched.
func (c *RunConfig) Run(w Output, log Console) (int, error) {
	chunkSize := c.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	describer := c.Describer
	if describer == nil {
		describer = FileCommand{}
	}

	files, invalid := CollectFiles(c.Paths, log)
	for _, path := range invalid {
		log.Errorfln(`Invalid path: %s`, path)
	}
	if len(files) == 0 {
		return 1, fmt.Errorf(`no valid files found`)
	}

	runLog, err := NewRunLog(c.Output)
	if err != nil {
		return 2, err
	}
	defer runLog.Close()

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ``
	}

	total := len(files)
	for i, path := range files {
		if !c.JSONOutput {
			w.Printfln(`[%d/%d] Processing: %s`, i+1, total, path)
		}

		digest, err := HashFileChunked(path, c.Algorithm, chunkSize)
		if err != nil {
			log.Errorfln(`Failed to hash %s: %s`, path, err)
			continue
		}

		result := DigestResult{
			Path:      path,
			Algorithm: string(c.Algorithm),
			Digest:    digest,
			Type:      describer.Describe(path),
			Timestamp: time.Now(),
			WorkDir:   workDir,
		}
		if err := runLog.Record(result); err != nil {
			return 2, err
		}
		log.Infofln(`Hashed '%s'`, path)

		if c.JSONOutput {
			b, err := json.Marshal(&result)
			if err != nil {
				return 2, fmt.Errorf(`could not serialize result JSON: %w`, err)
			}
			w.Println(string(b))
		} else {
			w.Println(FormatRecord(result))
		}
	}

	return 0, nil
}
