package internal

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const eofRune rune = -1

// escapers are the characters that form an escape sequence after a backslash.
// Escapes are kept verbatim in the string token, never substituted.
const escapers = "'\"\\nrtbfv0"

// Lexer turns source text into tokens on demand
type Lexer struct {
	source string
	start  Position
	cur    Position

	log logrus.FieldLogger
}

// LexerOption configures a Lexer
type LexerOption func(*Lexer)

// WithLexerLogger sets the logger that receives invalid token reports
func WithLexerLogger(log logrus.FieldLogger) LexerOption {
	return func(l *Lexer) {
		l.log = log
	}
}

// NewLexer creates a lexer positioned at the start of source
func NewLexer(source string, opts ...LexerOption) *Lexer {
	l := &Lexer{
		source: source,
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next returns the next token and advances past it. Once the source is
// exhausted every call returns an EOF token.
func (l *Lexer) Next() Token {
	tok := l.scan()
	if tok.Kind == Invalid {
		l.log.WithFields(logrus.Fields{
			"line":   tok.Span.Start.Line,
			"col":    tok.Span.Start.Col,
			"lexeme": tok.Lexeme,
		}).Debug("invalid token")
	}
	return tok
}

// Peek returns what Next would return without advancing
func (l *Lexer) Peek() Token {
	start, cur := l.start, l.cur
	tok := l.scan()
	l.start, l.cur = start, cur
	return tok
}

// Pos returns the position of the cursor
func (l *Lexer) Pos() Position {
	return l.cur
}

// Tokens scans the remaining source, the trailing EOF token included
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func (l *Lexer) scan() Token {
	if !l.skipWhitespace() {
		return l.emit(Invalid, nil)
	}
	l.start = l.cur
	if l.isAtEnd() {
		return l.emit(EOF, nil)
	}

	c := l.advance()
	switch {
	case isIdentifierStart(c):
		return l.identifier()
	case isDigit(c):
		return l.number(c)
	case c == '.':
		if isDigit(l.peekChar()) {
			return l.number(c)
		}
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			l.advance()
			l.advance()
			return l.emit(UnaryOperator, OpSpread)
		}
		return l.emit(Punctuator, byte(c))
	case c == '\'' || c == '"':
		return l.string(c)
	case isPunct(c):
		return l.emit(Punctuator, byte(c))
	case isOperatorStart(c):
		return l.operator(c)
	}
	return l.emit(Invalid, nil)
}

// skipWhitespace consumes whitespace and comments. It reports false when it
// stops inside an unterminated block comment.
func (l *Lexer) skipWhitespace() bool {
	for !l.isAtEnd() {
		c := l.peekChar()
		switch {
		case unicode.IsSpace(c):
			l.advance()
		case c == '/' && l.peekCharAt(1) == '/':
			for !l.isAtEnd() && l.peekChar() != '\n' {
				l.advance()
			}
		case c == '/' && l.peekCharAt(1) == '*':
			l.start = l.cur
			l.advance()
			l.advance()
			for !(l.peekChar() == '*' && l.peekCharAt(1) == '/') {
				if l.isAtEnd() {
					return false
				}
				l.advance()
			}
			l.advance()
			l.advance()
		default:
			return true
		}
	}
	return true
}

func (l *Lexer) identifier() Token {
	for isIdentifierPart(l.peekChar()) {
		l.advance()
	}

	lexeme := l.lexeme()
	if kw, ok := keywords[lexeme]; ok {
		return l.emit(KeywordToken, kw)
	}
	if op, ok := LookupBinary(lexeme); ok {
		return l.emit(BinaryOperator, op)
	}
	if op, ok := LookupUnary(lexeme); ok {
		return l.emit(UnaryOperator, op)
	}
	switch lexeme {
	case "true":
		return l.emit(BooleanLiteral, true)
	case "false":
		return l.emit(BooleanLiteral, false)
	}
	return l.emit(Identifier, lexeme)
}

func (l *Lexer) number(first rune) Token {
	kind := IntegerLiteral
	if first == '.' {
		kind = DoubleLiteral
	}

scan:
	for {
		c := l.peekChar()
		switch {
		case isDigit(c):
			l.advance()
		case c == '.' && kind == IntegerLiteral:
			l.advance()
			kind = DoubleLiteral
		case c == 'e' || c == 'E':
			l.advance()
			kind = DoubleLiteral
			if l.peekChar() == '+' || l.peekChar() == '-' {
				l.advance()
			}
			if !isDigit(l.peekChar()) {
				return l.invalidRun()
			}
			for isDigit(l.peekChar()) {
				l.advance()
			}
			break scan
		default:
			break scan
		}
	}

	if isIdentifierPart(l.peekChar()) {
		return l.invalidRun()
	}

	lexeme := l.lexeme()
	if len(lexeme) > 1 && lexeme[0] == '0' && isDigit(rune(lexeme[1])) {
		return l.emit(Invalid, nil)
	}

	if kind == IntegerLiteral {
		value, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return l.emit(Invalid, nil)
		}
		return l.emit(IntegerLiteral, value)
	}

	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !isRangeErr(err) {
		return l.emit(Invalid, nil)
	}
	return l.emit(DoubleLiteral, value)
}

// invalidRun swallows the rest of a malformed number so it is reported as one token
func (l *Lexer) invalidRun() Token {
	for isIdentifierPart(l.peekChar()) {
		l.advance()
	}
	return l.emit(Invalid, nil)
}

func (l *Lexer) string(closer rune) Token {
	for {
		if l.isAtEnd() {
			return l.emit(Invalid, nil)
		}
		c := l.advance()
		if c == closer {
			break
		}
		if c == '\\' && !l.isAtEnd() && strings.ContainsRune(escapers, l.peekChar()) {
			l.advance()
		}
	}

	literal := l.source[l.start.Offset+1 : l.cur.Offset-1]
	return l.emit(StringLiteral, literal)
}

// operator applies maximal munch starting from the already consumed c
func (l *Lexer) operator(c rune) Token {
	switch c {
	case '=', '!':
		if l.match('=') {
			l.match('=')
		}
	case '+', '-':
		if !l.match(c) {
			l.match('=')
		}
	case '*':
		l.match('*')
		l.match('=')
	case '/', '%', '^':
		l.match('=')
	case '&', '|':
		if !l.match(c) {
			l.match('=')
		}
	case '<':
		l.match('<')
		l.match('=')
	case '>':
		if l.match('>') {
			l.match('>')
		}
		l.match('=')
	}

	lexeme := l.lexeme()
	if op, ok := LookupBinary(lexeme); ok {
		return l.emit(BinaryOperator, op)
	}
	if op, ok := LookupUnary(lexeme); ok {
		return l.emit(UnaryOperator, op)
	}
	return l.emit(Invalid, nil)
}

func (l *Lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.cur.Offset:])
	l.cur.Offset += size
	if c == '\n' {
		l.cur.Line++
		l.cur.Col = 0
	} else {
		l.cur.Col++
	}
	return c
}

func (l *Lexer) peekChar() rune {
	return l.peekCharAt(0)
}

// peekCharAt looks n characters past the cursor
func (l *Lexer) peekCharAt(n int) rune {
	offset := l.cur.Offset
	for i := 0; ; i++ {
		if offset >= len(l.source) {
			return eofRune
		}
		c, size := utf8.DecodeRuneInString(l.source[offset:])
		if i == n {
			return c
		}
		offset += size
	}
}

func (l *Lexer) match(c rune) bool {
	if l.peekChar() != c {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) lexeme() string {
	return l.source[l.start.Offset:l.cur.Offset]
}

func (l *Lexer) emit(kind TokenKind, literal interface{}) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: l.start, End: l.cur},
		Lexeme:  l.lexeme(),
		literal: literal,
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.cur.Offset >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return c == '$' || c == '_' || unicode.IsLetter(c)
}

func isIdentifierPart(c rune) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isPunct(c rune) bool {
	return strings.ContainsRune("{}[]();:,", c)
}

func isOperatorStart(c rune) bool {
	return strings.ContainsRune("=+-*/%<>&^|!~", c)
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
