package internals

import (
	"fmt"
	"io"
)

// Output defines a uniform interface to write to some stream
type Output interface {
	Print(text string) (int, error)
	Println(text string) (int, error)
	Printf(format string, args ...interface{}) (int, error)
	Printfln(format string, args ...interface{}) (int, error)
}

// PlainOutput is a specific Output device which writes data in a raw format
type PlainOutput struct {
	Device io.Writer
}

// NewPlainOutput returns an Output writing raw text to device
func NewPlainOutput(device io.Writer) *PlainOutput {
	return &PlainOutput{Device: device}
}

func (o *PlainOutput) Print(text string) (int, error) {
	return o.Device.Write([]byte(text))
}

func (o *PlainOutput) Println(text string) (int, error) {
	n1, err1 := o.Device.Write([]byte(text))
	if err1 != nil {
		return n1, err1
	}
	n2, err2 := o.Device.Write([]byte{'\n'})
	return n1 + n2, err2
}

func (o *PlainOutput) Printf(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format, args...)))
}

func (o *PlainOutput) Printfln(format string, args ...interface{}) (int, error) {
	return o.Device.Write([]byte(fmt.Sprintf(format+"\n", args...)))
}

// Console receives the progress and error notices of a run.
// Informational notices go to the user's attention stream, error
// notices to the error stream. Implementations decide the styling;
// the processing core only decides the wording.
type Console interface {
	Infofln(format string, args ...interface{})
	Errorfln(format string, args ...interface{})
}

// PlainConsole writes unstyled notices with level prefixes
type PlainConsole struct {
	Out io.Writer
	Err io.Writer
}

func (c *PlainConsole) Infofln(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, "[INFO] "+format+"\n", args...)
}

func (c *PlainConsole) Errorfln(format string, args ...interface{}) {
	fmt.Fprintf(c.Err, "[ERROR] "+format+"\n", args...)
}
