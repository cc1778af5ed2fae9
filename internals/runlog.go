package internals

import (
	"fmt"
	"os"
	"time"
)

// timestampLayout is the ISO-like local timestamp used in record lines
const timestampLayout = `2006-01-02 15:04:05`

// DigestResult is the outcome of hashing one file. It is created per
// file, written to the run log, echoed, and then discarded; results are
// not retained in memory across files.
type DigestResult struct {
	Path      string    `json:"path"`
	Algorithm string    `json:"algorithm"`
	Digest    string    `json:"digest"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	WorkDir   string    `json:"workdir"`
}

// FormatRecord renders one run log line for a successfully hashed file
func FormatRecord(result DigestResult) string {
	return fmt.Sprintf(`[%s] File: '%s' | Hash (%s): %s | Type: %s | Dir: %s`,
		result.Timestamp.Format(timestampLayout),
		result.Path,
		result.Algorithm,
		result.Digest,
		result.Type,
		result.WorkDir,
	)
}

// DefaultRunLogPath derives the default run log filename from the
// given (local) time's date
func DefaultRunLogPath(now time.Time) string {
	return fmt.Sprintf(`hasher-%s.txt`, now.Format(`2006-01-02`))
}

// RunLog is the append-only destination for digest records. It is
// opened once per run; records of repeated runs against the same path
// accumulate. The file is never truncated.
type RunLog struct {
	File     *os.File
	FilePath string
}

// NewRunLog returns a freshly-initialized RunLog appending to filePath.
// The file is created if it does not exist yet.
func NewRunLog(filePath string) (*RunLog, error) {
	fd, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf(`opening run log '%s': %w`, filePath, err)
	}
	return &RunLog{File: fd, FilePath: filePath}, nil
}

// Record appends one record line for result. Each line is written as a
// complete unit, so an interrupted run leaves only whole lines behind.
func (r *RunLog) Record(result DigestResult) error {
	_, err := fmt.Fprintln(r.File, FormatRecord(result))
	if err != nil {
		return fmt.Errorf(`appending to run log '%s': %w`, r.FilePath, err)
	}
	return nil
}

// Close releases the run log file descriptor
func (r *RunLog) Close() error {
	return r.File.Close()
}
