package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/jameswintermute/hasher/internals"
)

var app *kingpin.Application
var run *cliRunCommand

// errorResponse is the uniform datastructure to report errors to the user
type errorResponse struct {
	ErrorMessage string `json:"error"`
	ExitCode     int    `json:"-"`
}

func (e *errorResponse) String() string {
	return `cli: error: ` + e.ErrorMessage
}

func (e *errorResponse) JSON() string {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON marshalling error: %s", err)
		return ""
	}
	return string(jsonBytes)
}

func (e *errorResponse) Print() int {
	if jsonOutput() {
		fmt.Fprintln(os.Stderr, e.JSON())
	} else {
		fmt.Fprintln(os.Stderr, e.String())
	}
	return e.ExitCode
}

func init() {
	app = kingpin.New(`hasher`, `Compute file digests, recursively for directories, and append them to a run log.`)
	app.Version(`1.0.0`).Author(`jameswintermute`)
	app.HelpFlag.Short('h')

	run = newCLIRunCommand(app)
}

// listHashAlgos writes the supported algorithm identifiers to w
func listHashAlgos(w internals.Output, asJSON bool) int {
	type dataSet struct {
		SupHashAlgos []string `json:"supported-hash-algorithms"`
	}
	data := dataSet{SupHashAlgos: internals.SupportedHashAlgorithms()}

	if asJSON {
		b, err := json.Marshal(&data)
		if err != nil {
			resp := &errorResponse{err.Error(), 6}
			return resp.Print()
		}
		w.Println(string(b))
		return 0
	}
	for _, name := range data.SupHashAlgos {
		w.Println(name)
	}
	return 0
}

func cli() int {
	_, err := app.Parse(os.Args[1:])
	if err != nil {
		resp := &errorResponse{err.Error(), 2}
		return resp.Print()
	}

	settings, err := run.Validate()
	if err != nil {
		resp := &errorResponse{err.Error(), 2}
		return resp.Print()
	}

	w := internals.NewPlainOutput(os.Stdout)
	log := newColorConsole(os.Stdout, os.Stderr, !settings.NoColor)

	if settings.HashAlgos {
		return listHashAlgos(w, settings.JSONOutput)
	}

	// reject unknown algorithm names before any file is opened
	algo, err := internals.ParseHashAlgo(settings.Algorithm)
	if err != nil {
		resp := &errorResponse{err.Error(), 2}
		return resp.Print()
	}

	config := &internals.RunConfig{
		Paths:      settings.Paths,
		Algorithm:  algo,
		Output:     settings.Output,
		JSONOutput: settings.JSONOutput,
	}
	exitCode, err := config.Run(w, log)
	if err != nil {
		log.Errorfln(`%s`, err)
	}
	return exitCode
}

func main() {
	exitcode := cli()
	os.Exit(exitcode)
}
