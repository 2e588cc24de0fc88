package internal

import (
	"github.com/sirupsen/logrus"
)

// Options configures ParseSource
type Options struct {
	Logger   logrus.FieldLogger
	MaxDepth int
}

// ParseSource runs a fresh lexer and parser over source. The returned nodes
// are every top-level node parsed before the first error, if any.
func ParseSource(source string, opts Options) ([]Node, error) {
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	lexer := NewLexer(source, WithLexerLogger(log))
	parser := NewParser(lexer,
		WithLogger(log),
		WithMaxDepth(opts.MaxDepth),
	)

	nodes := parser.Parse()
	return nodes, parser.Err()
}

// Tokenize returns every token of source, the trailing EOF token included
func Tokenize(source string, opts Options) []Token {
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	return NewLexer(source, WithLexerLogger(log)).Tokens()
}
