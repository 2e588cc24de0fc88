package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(source string) []Token {
	return NewLexer(source).Tokens()
}

// checkSingle scans source and expects exactly one token before EOF
func checkSingle(t *testing.T, source string, kind TokenKind) Token {
	t.Helper()
	tokens := scanAll(source)
	require.Len(t, tokens, 2, "source %q: %v", source, tokens)
	assert.Equal(t, kind, tokens[0].Kind, "source %q", source)
	assert.Equal(t, EOF, tokens[1].Kind)
	return tokens[0]
}

func TestIntegers(t *testing.T) {
	assert.Equal(t, int64(42), checkSingle(t, "42", IntegerLiteral).Int())
	assert.Equal(t, int64(0), checkSingle(t, "0", IntegerLiteral).Int())
	assert.Equal(t, int64(math.MaxInt64), checkSingle(t, "9223372036854775807", IntegerLiteral).Int())
}

func TestDoubles(t *testing.T) {
	assert.Equal(t, 3.14, checkSingle(t, "3.14", DoubleLiteral).Float())
	assert.Equal(t, 0.5, checkSingle(t, ".5", DoubleLiteral).Float())
	assert.Equal(t, 1.0, checkSingle(t, "1.", DoubleLiteral).Float())
	assert.Equal(t, 1000.0, checkSingle(t, "1e3", DoubleLiteral).Float())
	assert.Equal(t, 0.01, checkSingle(t, "1E-2", DoubleLiteral).Float())
	assert.Equal(t, 250.0, checkSingle(t, "2.5e+2", DoubleLiteral).Float())
	assert.True(t, math.IsInf(checkSingle(t, "1e400", DoubleLiteral).Float(), 1))
}

func TestInvalidNumbers(t *testing.T) {
	for _, source := range []string{"007", "1e", "1e+", "3abc", "1e5e3", "9223372036854775808"} {
		tok := checkSingle(t, source, Invalid)
		assert.Equal(t, source, tok.Lexeme)
	}
}

func TestStrings(t *testing.T) {
	tok := checkSingle(t, `"hello"`, StringLiteral)
	assert.Equal(t, "hello", tok.Text())
	assert.Equal(t, `"hello"`, tok.Lexeme)

	assert.Equal(t, "", checkSingle(t, `''`, StringLiteral).Text())
	assert.Equal(t, `a\nb`, checkSingle(t, `"a\nb"`, StringLiteral).Text())
	assert.Equal(t, `it\'s`, checkSingle(t, `'it\'s'`, StringLiteral).Text())
	assert.Equal(t, `say \"hi\"`, checkSingle(t, `"say \"hi\""`, StringLiteral).Text())
	assert.Equal(t, `"`, checkSingle(t, `'"'`, StringLiteral).Text())

	checkSingle(t, `"unterminated`, Invalid)
	checkSingle(t, `'ends with escape\'`, Invalid)
}

func TestKeywordsAndWords(t *testing.T) {
	tests := []struct {
		source string
		kind   TokenKind
	}{
		{"if", KeywordToken},
		{"function", KeywordToken},
		{"null", KeywordToken},
		{"this", KeywordToken},
		{"true", BooleanLiteral},
		{"false", BooleanLiteral},
		{"typeof", UnaryOperator},
		{"new", UnaryOperator},
		{"super", UnaryOperator},
		{"in", BinaryOperator},
		{"instanceof", BinaryOperator},
		{"iffy", Identifier},
		{"$el", Identifier},
		{"_x1", Identifier},
		{"héllo", Identifier},
	}
	for _, test := range tests {
		tok := checkSingle(t, test.source, test.kind)
		assert.Equal(t, test.source, tok.Lexeme)
	}

	assert.Equal(t, KwWhile, checkSingle(t, "while", KeywordToken).Keyword())
	assert.True(t, checkSingle(t, "true", BooleanLiteral).Bool())
	assert.False(t, checkSingle(t, "false", BooleanLiteral).Bool())
	assert.Equal(t, OpTypeof, checkSingle(t, "typeof", UnaryOperator).Unary())
	assert.Equal(t, OpInstanceof, checkSingle(t, "instanceof", BinaryOperator).Binary())
	assert.Equal(t, "héllo", checkSingle(t, "héllo", Identifier).Text())
}

func TestOperatorsMaximalMunch(t *testing.T) {
	binary := []string{
		"=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=", "&=", "^=", "|=",
		"||", "&&", "|", "^", "&", "==", "!=", "===", "!==",
		">", "<", ">=", "<=", "<<", ">>", ">>>", "+", "-", "*", "/", "%", "**",
	}
	for _, lexeme := range binary {
		tok := checkSingle(t, lexeme, BinaryOperator)
		assert.Equal(t, lexeme, tok.Lexeme)
		assert.Equal(t, lexeme, tok.Binary().String())
	}

	unary := map[string]UnaryOp{
		"!":   OpNot,
		"~":   OpBitNot,
		"++":  OpPreInc,
		"--":  OpPreDec,
		"...": OpSpread,
	}
	for lexeme, op := range unary {
		tok := checkSingle(t, lexeme, UnaryOperator)
		assert.Equal(t, op, tok.Unary(), lexeme)
	}
}

func TestPunctuators(t *testing.T) {
	for _, c := range "{}[]();:,." {
		tok := checkSingle(t, string(c), Punctuator)
		assert.Equal(t, byte(c), tok.Punct())
	}
}

func TestTokenSequence(t *testing.T) {
	tokens := scanAll("a+++b")
	require.Len(t, tokens, 5)
	assert.Equal(t, Identifier, tokens[0].Kind)
	assert.Equal(t, OpPreInc, tokens[1].Unary())
	assert.Equal(t, OpAdd, tokens[2].Binary())
	assert.Equal(t, Identifier, tokens[3].Kind)

	tokens = scanAll("a.b...c")
	var lexemes []string
	for _, tok := range tokens {
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"a", ".", "b", "...", "c", ""}, lexemes)
}

func TestComments(t *testing.T) {
	tokens := scanAll("a // line comment\nb /* block\ncomment */ c")
	require.Len(t, tokens, 4)
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, "b", tokens[1].Lexeme)
	assert.Equal(t, "c", tokens[2].Lexeme)
	assert.Equal(t, 2, tokens[2].Span.Start.Line)

	tok := checkSingle(t, "/* never closed", Invalid)
	assert.Equal(t, "/* never closed", tok.Lexeme)
}

func TestInvalidCharacters(t *testing.T) {
	for _, source := range []string{"@", "#", "`", "\\"} {
		tok := checkSingle(t, source, Invalid)
		assert.Equal(t, source, tok.Lexeme)
	}
}

func TestPositions(t *testing.T) {
	tokens := scanAll("let x\n  = 1")
	require.Len(t, tokens, 5)

	assert.Equal(t, Span{Start: Position{0, 0, 0}, End: Position{3, 0, 3}}, tokens[0].Span)
	assert.Equal(t, Position{4, 0, 4}, tokens[1].Span.Start)
	assert.Equal(t, Position{8, 1, 2}, tokens[2].Span.Start)
	assert.Equal(t, Position{10, 1, 4}, tokens[3].Span.Start)
	assert.Equal(t, 1, tokens[3].Span.Len())

	tokens = scanAll("é = 1")
	assert.Equal(t, Position{3, 0, 2}, tokens[1].Span.Start)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	l := NewLexer("foo = 1")
	first := l.Peek()
	assert.Equal(t, first, l.Peek())
	assert.Equal(t, Position{}, l.Pos())
	assert.Equal(t, first, l.Next())
	assert.Equal(t, "=", l.Peek().Lexeme)
}

func TestEndOfInputRepeats(t *testing.T) {
	l := NewLexer("  x  ")
	assert.Equal(t, Identifier, l.Next().Kind)
	for i := 0; i < 3; i++ {
		tok := l.Next()
		assert.Equal(t, EOF, tok.Kind)
		assert.Equal(t, 5, tok.Span.Start.Offset)
	}
	assert.Equal(t, EOF, l.Peek().Kind)

	assert.Equal(t, EOF, NewLexer("").Next().Kind)
}
