package internals

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runBatch executes a RunConfig against buffered streams
func runBatch(t *testing.T, config *RunConfig) (code int, runErr error, stdout, notices, errors string) {
	t.Helper()
	outBuf := new(bytes.Buffer)
	infoBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	if config.Describer == nil {
		config.Describer = StaticDescriber{Description: `data`}
	}
	code, runErr = config.Run(NewPlainOutput(outBuf), &PlainConsole{Out: infoBuf, Err: errBuf})
	return code, runErr, outBuf.String(), infoBuf.String(), errBuf.String()
}

func countLogLines(t *testing.T, path string) int {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf(`reading run log: %v`, err)
	}
	trimmed := strings.TrimRight(string(content), "\n")
	if trimmed == `` {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}

// TestRunMixedInputs drives one valid file, one nonexistent path and one
// valid directory through a batch: records appear for files under the
// valid entries only, exactly one invalid-path notice is emitted, and
// partial success is still overall success (exit code 0)
func TestRunMixedInputs(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, `single.txt`)
	if err := os.WriteFile(single, []byte(`alpha`), 0644); err != nil {
		t.Fatal(err)
	}
	tree := filepath.Join(dir, `tree`)
	if err := os.MkdirAll(tree, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{`one.txt`, `two.txt`} {
		if err := os.WriteFile(filepath.Join(tree, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	missing := filepath.Join(dir, `no-such-path`)
	output := filepath.Join(dir, `run.log`)

	config := &RunConfig{
		Paths:     []string{single, missing, tree},
		Algorithm: HashSHA256,
		Output:    output,
	}
	code, runErr, stdout, _, errors := runBatch(t, config)
	if runErr != nil {
		t.Fatalf(`Run: %v`, runErr)
	}
	if code != 0 {
		t.Errorf(`partial success must exit 0, got %d`, code)
	}
	if got := countLogLines(t, output); got != 3 {
		t.Errorf(`expected 3 records, got %d`, got)
	}
	if n := strings.Count(errors, `Invalid path:`); n != 1 {
		t.Errorf(`expected exactly 1 invalid-path notice, got %d (%q)`, n, errors)
	}
	if !strings.Contains(stdout, `Hash (sha256):`) {
		t.Errorf(`record lines must be echoed to stdout, got %q`, stdout)
	}
}

// TestRunEmptyFileSet checks that an empty resolved set exits nonzero
// and does not create the output destination
func TestRunEmptyFileSet(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, `empty`)
	if err := os.MkdirAll(empty, 0755); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, `run.log`)

	config := &RunConfig{
		Paths:     []string{empty},
		Algorithm: HashSHA256,
		Output:    output,
	}
	code, runErr, _, _, _ := runBatch(t, config)
	if code != 1 {
		t.Errorf(`empty file set must exit 1, got %d`, code)
	}
	if runErr == nil {
		t.Error(`empty file set must report an error`)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error(`output destination must not be created for an empty file set`)
	}
}

// TestRunAppendOnlyAcrossRuns checks that two runs against the same
// destination accumulate both runs' records
func TestRunAppendOnlyAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, `run.log`)

	for i, content := range []string{`first`, `second`} {
		path := filepath.Join(dir, content+`.txt`)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		config := &RunConfig{
			Paths:     []string{path},
			Algorithm: HashSHA256,
			Output:    output,
		}
		code, runErr, _, _, _ := runBatch(t, config)
		if runErr != nil || code != 0 {
			t.Fatalf(`run %d failed: code=%d err=%v`, i+1, code, runErr)
		}
	}
	if got := countLogLines(t, output); got != 2 {
		t.Errorf(`expected 2 records after two runs, got %d`, got)
	}
}

// TestRunRecordFields checks the content of a record line end to end
func TestRunRecordFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `payload.bin`)
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, `run.log`)

	config := &RunConfig{
		Paths:     []string{path},
		Algorithm: HashSHA1,
		Output:    output,
		Describer: StaticDescriber{Description: `empty payload`},
	}
	code, runErr, _, notices, _ := runBatch(t, config)
	if runErr != nil || code != 0 {
		t.Fatalf(`run failed: code=%d err=%v`, code, runErr)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimRight(string(content), "\n")
	for _, fragment := range []string{
		`File: '` + path + `'`,
		`Hash (sha1): da39a3ee5e6b4b0d3255bfef95601890afd80709`,
		`Type: empty payload`,
		`Dir: `,
	} {
		if !strings.Contains(line, fragment) {
			t.Errorf(`record line lacks %q: %s`, fragment, line)
		}
	}
	if !strings.Contains(notices, `Hashed '`+path+`'`) {
		t.Errorf(`missing success notice, got %q`, notices)
	}
}

// TestRunJSONOutput checks that --json emits one parseable JSON object
// per record while the run log keeps its plain line format
func TestRunJSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `j.txt`)
	if err := os.WriteFile(path, []byte(`json`), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, `run.log`)

	config := &RunConfig{
		Paths:      []string{path},
		Algorithm:  HashSHA256,
		Output:     output,
		JSONOutput: true,
	}
	code, runErr, stdout, _, _ := runBatch(t, config)
	if runErr != nil || code != 0 {
		t.Fatalf(`run failed: code=%d err=%v`, code, runErr)
	}

	var result DigestResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &result); err != nil {
		t.Fatalf(`stdout is not a JSON record: %v (%q)`, err, stdout)
	}
	if result.Path != path || result.Algorithm != `sha256` || len(result.Digest) != 64 {
		t.Errorf(`unexpected JSON record: %+v`, result)
	}
	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `| Hash (sha256): `) {
		t.Errorf(`run log must keep the plain line format, got %q`, string(content))
	}
}

// TestRunContinuesAfterFileFailure checks per-file error isolation:
// a file that cannot be opened produces a notice and no record, and
// the remaining files are still processed
func TestRunContinuesAfterFileFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip(`permission checks do not bind for root`)
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, `locked.txt`)
	if err := os.WriteFile(locked, []byte(`secret`), 0000); err != nil {
		t.Fatal(err)
	}
	readable := filepath.Join(dir, `readable.txt`)
	if err := os.WriteFile(readable, []byte(`ok`), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, `run.log`)

	config := &RunConfig{
		Paths:     []string{dir},
		Algorithm: HashSHA256,
		Output:    output,
	}
	code, runErr, _, _, errors := runBatch(t, config)
	if runErr != nil {
		t.Fatalf(`Run: %v`, runErr)
	}
	if code != 0 {
		t.Errorf(`per-file failure must not abort the batch, got exit %d`, code)
	}
	if got := countLogLines(t, output); got != 1 {
		t.Errorf(`expected 1 record for the readable file, got %d`, got)
	}
	if !strings.Contains(errors, `Failed to hash `+locked) {
		t.Errorf(`missing failure notice for %s, got %q`, locked, errors)
	}
}
