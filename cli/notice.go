package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/jameswintermute/hasher/internals"
)

// Notice styling is pure: each function takes a message and returns the
// decorated line. No shared mutable color state is involved.

func styleInfo(p termenv.Profile, msg string) string {
	return termenv.String(`[INFO]`).Foreground(p.Color(`2`)).String() + ` ` + msg
}

func styleError(p termenv.Profile, msg string) string {
	return termenv.String(`[ERROR]`).Foreground(p.Color(`1`)).String() + ` ` + msg
}

// colorConsole implements internals.Console with ANSI-styled level
// prefixes. With color disabled it degrades to plain prefixes.
type colorConsole struct {
	out     io.Writer
	err     io.Writer
	profile termenv.Profile
}

func newColorConsole(out, err io.Writer, color bool) *colorConsole {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &colorConsole{out: out, err: err, profile: profile}
}

func (c *colorConsole) Infofln(format string, args ...interface{}) {
	fmt.Fprintln(c.out, styleInfo(c.profile, fmt.Sprintf(format, args...)))
}

func (c *colorConsole) Errorfln(format string, args ...interface{}) {
	fmt.Fprintln(c.err, styleError(c.profile, fmt.Sprintf(format, args...)))
}

// interface conformance
var _ internals.Console = (*colorConsole)(nil)
