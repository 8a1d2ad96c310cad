package monkey

import (
	"fmt"
	"strings"
)

// ParseError is a syntax error found by the parser, with the token that was
// expected (if the parser was looking for a specific one) and the token that
// was found instead.
type ParseError struct {
	Expected TokenType
	Found    Token
	Message  string
}

// NewParseError creates a new parse error
func NewParseError(expected TokenType, found Token, message string) *ParseError {
	return &ParseError{expected, found, message}
}

func (err *ParseError) Error() string {
	if err.Expected == "" {
		return err.Message
	}
	return fmt.Sprintf("%s, got %s instead", err.Message, err.Found)
}

// formatParseErrors renders every accumulated parse error on its own line.
func formatParseErrors(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "parse error: "+err.Error())
	}
	return strings.Join(lines, "\n")
}

// Error is the runtime error produced when evaluation fails. It is also a
// Value, so it can be displayed like any other evaluation result.
type Error struct {
	Message string
}

func newError(format string, args ...interface{}) *Error {
	return &Error{fmt.Sprintf(format, args...)}
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) Type() ValueType {
	return ERROR_VALUE
}

func (err *Error) Inspect() string {
	return "ERROR: " + err.Message
}
