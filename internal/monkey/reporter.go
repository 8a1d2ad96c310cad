package monkey

import (
	"io"

	"github.com/fatih/color"
)

// Reporter separates finding errors from showing them to the user. Syntax
// errors and runtime errors are tracked separately so that a caller can pick
// the right exit status.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes each error on its own line, optionally in red.
type SimpleReporter struct {
	writer        io.Writer
	paint         *color.Color
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter writing to writer, in red if useColor
// is set.
func NewSimpleReporter(writer io.Writer, useColor bool) Reporter {
	paint := color.New(color.FgRed)
	if useColor {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}
	return &SimpleReporter{writer: writer, paint: paint}
}

// Report records err and writes it on its own line. An *Error counts as a
// runtime error, anything else as a syntax error.
func (reporter *SimpleReporter) Report(err error) {
	if _, isRuntimeErr := err.(*Error); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	reporter.paint.Fprintln(reporter.writer, err)
}

// HadError reports whether a syntax error was reported since the last Reset.
func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

// HadRuntimeError reports whether a runtime error was reported since the last
// Reset.
func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset forgets the errors reported so far.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
