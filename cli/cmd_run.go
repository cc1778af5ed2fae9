package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/jameswintermute/hasher/internals"
)

// RunCommand defines the validated CLI parameters
type RunCommand struct {
	Paths      []string `json:"paths"`
	Output     string   `json:"output"`
	Algorithm  string   `json:"algorithm"`
	HashAlgos  bool     `json:"hash-algos"`
	JSONOutput bool     `json:"json"`
	NoColor    bool     `json:"no-color"`
}

// cliRunCommand defines the CLI arguments as kingpin requires them
type cliRunCommand struct {
	Paths      *[]string
	Output     *string
	Algorithm  *string
	HashAlgos  *bool
	JSONOutput *bool
	NoColor    *bool
}

func newCLIRunCommand(app *kingpin.Application) *cliRunCommand {
	c := new(cliRunCommand)
	c.Paths = app.Arg("paths", "files or directories to hash").Strings()
	c.Output = app.Flag("output", "destination log file; defaults to hasher-<date>.txt").Short('o').Default(envOr("HASHER_OUTPUT", "")).String()
	c.Algorithm = app.Flag("algo", "hash algorithm to use").Short('a').Default(envOr("HASHER_ALGORITHM", string(internals.DefaultHash))).String()
	c.HashAlgos = app.Flag("hash-algos", "list supported hash algorithms and terminate").Bool()
	c.JSONOutput = app.Flag("json", "return results as JSON, not as plain text").Bool()
	c.NoColor = app.Flag("no-color", "disable colored notices").Bool()
	return c
}

func (c *cliRunCommand) Validate() (*RunCommand, error) {
	// validity checks (check conditions not covered by kingpin)
	if len(*c.Paths) == 0 && !*c.HashAlgos {
		return nil, fmt.Errorf(`at least one file or directory path is required`)
	}

	// migrate cliRunCommand to RunCommand
	cmd := new(RunCommand)
	cmd.Paths = make([]string, len(*c.Paths))
	copy(cmd.Paths, *c.Paths)
	cmd.Output = *c.Output
	cmd.Algorithm = *c.Algorithm
	cmd.HashAlgos = *c.HashAlgos
	cmd.JSONOutput = *c.JSONOutput
	cmd.NoColor = *c.NoColor

	// handle environment variables
	envJSON, errJSON := envToBool(`HASHER_JSON`)
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}
	if _, ok := os.LookupEnv(`NO_COLOR`); ok {
		cmd.NoColor = true
	}

	// default values
	if cmd.Output == `` {
		cmd.Output = internals.DefaultRunLogPath(time.Now())
	}

	return cmd, nil
}
