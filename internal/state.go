package internal

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Lexer errors
var ErrInvalidToken = errors.New("invalid token")

// Parser errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTooDeep         = errors.New("nesting too deep")
)

// ParseError tells why and where a parse stopped early
type ParseError struct {
	Err   error
	Token Token
	// Expected names what the parser was looking for, if anything in particular
	Expected string
}

// Span returns the source range of the offending token
func (e *ParseError) Span() Span {
	return e.Token.Span
}

func (e *ParseError) Error() string {
	pos := e.Token.Span.Start
	msg := fmt.Sprintf("line %d, col %d: %v", pos.Line+1, pos.Col+1, e.Err)
	if e.Token.Kind == EOF {
		msg += " at end of input"
	} else {
		msg += fmt.Sprintf(" %q", e.Token.Lexeme)
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return msg
}

// Cause returns the sentinel error, for errors.Cause
func (e *ParseError) Cause() error {
	return e.Err
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(tok Token, expected string) *ParseError {
	err := ErrUnexpectedToken
	if tok.Kind == Invalid {
		err = ErrInvalidToken
	}
	return &ParseError{
		Err:      errors.WithStack(err),
		Token:    tok,
		Expected: expected,
	}
}

var nopLogger = func() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}()

func discardLogger() logrus.FieldLogger {
	return nopLogger
}
