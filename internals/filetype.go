package internals

import (
	"os/exec"
	"strings"
)

// UnknownType is reported when the kind of content cannot be determined
const UnknownType = `unknown`

// TypeDescriber tells what kind of content a file contains. The batch
// processor consults it once per successfully hashed file; the hashing
// core itself has no dependency on any particular detection tool.
type TypeDescriber interface {
	Describe(path string) string
}

// FileCommand describes files by invoking the file(1) utility in its
// brief output mode.
type FileCommand struct{}

// Describe returns the file(1) description of path, or UnknownType if
// the utility is missing or fails
func (FileCommand) Describe(path string) string {
	out, err := exec.Command(`file`, `-b`, `--`, path).Output()
	if err != nil {
		return UnknownType
	}
	description := strings.TrimSpace(string(out))
	if description == "" {
		return UnknownType
	}
	return description
}

// StaticDescriber reports the same description for every file.
// It serves as a stub where no external detection tool is wanted.
type StaticDescriber struct {
	Description string
}

func (s StaticDescriber) Describe(path string) string {
	return s.Description
}
