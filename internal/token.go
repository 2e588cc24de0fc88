package internal

import "fmt"

// TokenKind holds the kind of a token
type TokenKind int

const (
	EOF TokenKind = iota
	Invalid

	Identifier
	KeywordToken
	IntegerLiteral
	DoubleLiteral
	StringLiteral
	BooleanLiteral
	Punctuator
	BinaryOperator
	UnaryOperator
)

var tokenKindNames = [...]string{
	EOF:            "EndOfInput",
	Invalid:        "Invalid",
	Identifier:     "Identifier",
	KeywordToken:   "Keyword",
	IntegerLiteral: "IntegerLiteral",
	DoubleLiteral:  "DoubleLiteral",
	StringLiteral:  "StringLiteral",
	BooleanLiteral: "BooleanLiteral",
	Punctuator:     "Punctuator",
	BinaryOperator: "BinaryOperator",
	UnaryOperator:  "UnaryOperator",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindNames[k]
}

// Keyword identifies a reserved word
type Keyword int

const (
	KwNone Keyword = iota
	KwAwait
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwElse
	KwEval
	KwExport
	KwExtends
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImplements
	KwLet
	KwNull
	KwReturn
	KwStatic
	KwSwitch
	KwThis
	KwThrow
	KwTry
	KwVar
	KwWhile
	KwWith
	KwYield
)

// super, in, instanceof, delete, typeof, void and new are left out on purpose:
// they lex as operators.
var keywords = map[string]Keyword{
	"await":      KwAwait,
	"break":      KwBreak,
	"case":       KwCase,
	"catch":      KwCatch,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"default":    KwDefault,
	"do":         KwDo,
	"else":       KwElse,
	"eval":       KwEval,
	"export":     KwExport,
	"extends":    KwExtends,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"if":         KwIf,
	"implements": KwImplements,
	"let":        KwLet,
	"null":       KwNull,
	"return":     KwReturn,
	"static":     KwStatic,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"try":        KwTry,
	"var":        KwVar,
	"while":      KwWhile,
	"with":       KwWith,
	"yield":      KwYield,
}

var keywordNames = func() map[Keyword]string {
	names := make(map[Keyword]string, len(keywords))
	for name, kw := range keywords {
		names[kw] = name
	}
	return names
}()

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "<none>"
}

// Token is a lexeme classified by the lexer. The active payload depends on Kind.
type Token struct {
	Kind   TokenKind
	Span   Span
	Lexeme string

	literal interface{}
}

// Int returns the value of an IntegerLiteral
func (t Token) Int() int64 {
	v, _ := t.literal.(int64)
	return v
}

// Float returns the value of a DoubleLiteral
func (t Token) Float() float64 {
	v, _ := t.literal.(float64)
	return v
}

// Bool returns the value of a BooleanLiteral
func (t Token) Bool() bool {
	v, _ := t.literal.(bool)
	return v
}

// Text returns the name of an Identifier or the stored text of a StringLiteral
func (t Token) Text() string {
	v, _ := t.literal.(string)
	return v
}

// Punct returns the character of a Punctuator
func (t Token) Punct() byte {
	v, _ := t.literal.(byte)
	return v
}

// Binary returns the operator of a BinaryOperator
func (t Token) Binary() BinaryOp {
	v, _ := t.literal.(BinaryOp)
	return v
}

// Unary returns the operator of a UnaryOperator
func (t Token) Unary() UnaryOp {
	v, _ := t.literal.(UnaryOp)
	return v
}

// Keyword returns the reserved word of a Keyword token
func (t Token) Keyword() Keyword {
	v, _ := t.literal.(Keyword)
	return v
}

func (t Token) isPunct(ch byte) bool {
	return t.Kind == Punctuator && t.Punct() == ch
}

func (t Token) isKeyword(kw Keyword) bool {
	return t.Kind == KeywordToken && t.Keyword() == kw
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
