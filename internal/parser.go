package internal

import (
	"github.com/sirupsen/logrus"
)

const defaultMaxDepth = 512

// Parser builds AST nodes from the tokens of a Lexer
type Parser struct {
	lexer *Lexer

	peeked    Token
	hasPeeked bool
	previous  Token

	depth    int
	maxDepth int

	err *ParseError
	log logrus.FieldLogger
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithLogger sets the logger that receives parse halts
func WithLogger(log logrus.FieldLogger) ParserOption {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxDepth bounds how deeply statements and expressions may nest
func WithMaxDepth(depth int) ParserOption {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// NewParser creates a parser reading from lexer
func NewParser(lexer *Lexer, opts ...ParserOption) *Parser {
	p := &Parser{
		lexer:    lexer,
		maxDepth: defaultMaxDepth,
		log:      discardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the top-level nodes of the program. It stops at the first
// invalid or unexpected token and returns every node completed before it;
// Err reports why.
func (p *Parser) Parse() []Node {
	var nodes []Node
	for p.err == nil {
		tok := p.peek()

		var node Node
		switch {
		case tok.Kind == EOF:
			return nodes
		case tok.Kind == Invalid:
			p.fail(tok, "")
		case tok.isKeyword(KwFunction):
			node = p.function()
		case isDeclarationStart(tok):
			node = p.varDecl()
		default:
			if st := p.statement(); st != nil {
				node = st
			}
		}

		if p.err != nil {
			break
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	p.log.WithFields(logrus.Fields{
		"line":  p.err.Token.Span.Start.Line,
		"col":   p.err.Token.Span.Start.Col,
		"nodes": len(nodes),
	}).WithError(p.err).Debug("parse halted")
	return nodes
}

// Err returns the reason Parse stopped early, or nil
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

func (p *Parser) declaration() Stmt {
	tok := p.peek()
	if tok.isKeyword(KwFunction) {
		fn := p.function()
		return &ExprStmt{Expression: fn, Loc: p.spanFrom(tok)}
	}
	if isDeclarationStart(tok) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) varDecl() Stmt {
	st := p.varDeclaration()
	p.matchPunct(';')
	return st
}

func (p *Parser) varDeclaration() *VarStmt {
	keyword := p.advance()

	st := &VarStmt{Kind: declKinds[keyword.Keyword()]}
	st.Name = p.consumeIdentifier()
	if tok := p.peek(); tok.Kind == BinaryOperator && tok.Binary() == OpAssign {
		p.advance()
		st.Initializer = p.expression()
	}
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) statement() Stmt {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	tok := p.peek()
	switch tok.Kind {
	case KeywordToken:
		switch tok.Keyword() {
		case KwIf:
			return p.ifStmt()
		case KwFor:
			return p.forLoop()
		case KwWhile:
			return p.while()
		case KwReturn:
			return p.ret()
		case KwBreak:
			p.advance()
			p.matchPunct(';')
			return &BreakStmt{Loc: tok.Span}
		case KwContinue:
			p.advance()
			p.matchPunct(';')
			return &ContinueStmt{Loc: tok.Span}
		case KwTry:
			return p.tryStmt()
		}
	case Punctuator:
		switch tok.Punct() {
		case '{':
			return p.block()
		case ';':
			p.advance()
			return nil
		}
	}
	return p.expressionStmt()
}

func (p *Parser) ifStmt() Stmt {
	keyword := p.advance()

	st := &IfStmt{}
	p.consumePunct('(')
	st.Condition = p.expression()
	p.consumePunct(')')
	st.Then = p.statement()
	if p.matchKeyword(KwElse) {
		st.Else = p.statement()
	}
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) forLoop() Stmt {
	keyword := p.advance()

	st := &ForStmt{}
	p.consumePunct('(')
	if !p.matchPunct(';') {
		if isDeclarationStart(p.peek()) {
			st.Initializer = p.varDeclaration()
		} else {
			start := p.peek()
			st.Initializer = &ExprStmt{Expression: p.expression(), Loc: p.spanFrom(start)}
		}
		p.consumePunct(';')
	}
	if !p.checkPunct(';') {
		st.Condition = p.expression()
	}
	p.consumePunct(';')
	if !p.checkPunct(')') {
		st.Update = p.expression()
	}
	p.consumePunct(')')
	st.Body = p.statement()
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) while() Stmt {
	keyword := p.advance()

	st := &WhileStmt{}
	p.consumePunct('(')
	st.Condition = p.expression()
	p.consumePunct(')')
	st.Body = p.statement()
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) ret() Stmt {
	keyword := p.advance()

	st := &ReturnStmt{}
	if !p.atStatementEnd() {
		st.Value = p.expression()
	}
	p.matchPunct(';')
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) tryStmt() Stmt {
	keyword := p.advance()

	st := &TryStmt{Body: p.block()}
	if p.matchKeyword(KwCatch) {
		catch := p.previous
		clause := &CatchClause{}
		p.consumePunct('(')
		clause.Name = p.consumeIdentifier()
		p.consumePunct(')')
		clause.Body = p.block()
		clause.Loc = p.spanFrom(catch)
		st.Catch = clause
	}
	if p.matchKeyword(KwFinally) {
		st.Finally = p.block()
	}
	if st.Catch == nil && st.Finally == nil {
		p.fail(p.peek(), "'catch' or 'finally'")
	}
	st.Loc = p.spanFrom(keyword)
	return st
}

func (p *Parser) block() *BlockStmt {
	open := p.consumePunct('{')

	block := &BlockStmt{}
	for p.err == nil && !p.checkPunct('}') && p.peek().Kind != EOF {
		if st := p.declaration(); st != nil {
			block.Stmts = append(block.Stmts, st)
		}
	}
	p.consumePunct('}')
	block.Loc = p.spanFrom(open)
	return block
}

func (p *Parser) expressionStmt() Stmt {
	start := p.peek()
	st := &ExprStmt{Expression: p.expression()}
	st.Loc = p.spanFrom(start)
	p.matchPunct(';')
	return st
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) assignment() Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	start := p.peek()
	expr := p.logicalOr()
	if op, ok := p.matchPrecedence(PrecAssign); ok {
		value := p.assignment()
		return &BinaryExpr{Op: op, Left: expr, Right: value, Loc: p.spanFrom(start)}
	}
	return expr
}

func (p *Parser) logicalOr() Expr {
	return p.leftAssoc(PrecLogicalOr, p.logicalAnd)
}

func (p *Parser) logicalAnd() Expr {
	return p.leftAssoc(PrecLogicalAnd, p.bitwiseOr)
}

func (p *Parser) bitwiseOr() Expr {
	return p.leftAssoc(PrecBitOr, p.bitwiseXor)
}

func (p *Parser) bitwiseXor() Expr {
	return p.leftAssoc(PrecBitXor, p.bitwiseAnd)
}

func (p *Parser) bitwiseAnd() Expr {
	return p.leftAssoc(PrecBitAnd, p.equality)
}

func (p *Parser) equality() Expr {
	return p.leftAssoc(PrecEquality, p.relational)
}

func (p *Parser) relational() Expr {
	return p.leftAssoc(PrecRelational, p.shift)
}

func (p *Parser) shift() Expr {
	return p.leftAssoc(PrecShift, p.additive)
}

func (p *Parser) additive() Expr {
	return p.leftAssoc(PrecAdditive, p.multiplicative)
}

func (p *Parser) multiplicative() Expr {
	return p.leftAssoc(PrecMultiplicative, p.exponent)
}

// leftAssoc parses a run of operators of one precedence level, each iteration
// making the tree built so far the left operand.
func (p *Parser) leftAssoc(prec Precedence, operand func() Expr) Expr {
	start := p.peek()
	expr := operand()
	for {
		op, ok := p.matchPrecedence(prec)
		if !ok {
			return expr
		}
		right := operand()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Loc: p.spanFrom(start)}
	}
}

func (p *Parser) exponent() Expr {
	start := p.peek()
	expr := p.unary()
	if op, ok := p.matchPrecedence(PrecExponent); ok {
		if !p.enter() {
			return nil
		}
		defer p.leave()
		right := p.exponent()
		return &BinaryExpr{Op: op, Left: expr, Right: right, Loc: p.spanFrom(start)}
	}
	return expr
}

func (p *Parser) unary() Expr {
	tok := p.peek()
	op, ok := prefixOperator(tok)
	if !ok {
		return p.postfix()
	}
	if !p.enter() {
		return nil
	}
	defer p.leave()

	p.advance()
	operand := p.unary()
	return &UnaryExpr{Op: op, Operand: operand, Loc: p.spanFrom(tok)}
}

// prefixOperator reinterprets tok as a prefix operator. The lexer always
// produces "+" and "-" as binary operators, so they map to their unary forms here.
func prefixOperator(tok Token) (UnaryOp, bool) {
	switch tok.Kind {
	case UnaryOperator:
		if op := tok.Unary(); !op.IsPostfix() {
			return op, true
		}
	case BinaryOperator:
		switch tok.Binary() {
		case OpAdd:
			return OpPlus, true
		case OpSub:
			return OpNeg, true
		}
	}
	return UnaryIllegal, false
}

func (p *Parser) postfix() Expr {
	start := p.peek()
	expr := p.call()
	if tok := p.peek(); tok.Kind == UnaryOperator {
		if op, ok := tok.Unary().Postfix(); ok {
			p.advance()
			return &UnaryExpr{Op: op, Operand: expr, Postfix: true, Loc: p.spanFrom(start)}
		}
	}
	return expr
}

func (p *Parser) call() Expr {
	start := p.peek()
	expr := p.primary()
	for p.err == nil {
		switch {
		case p.matchPunct('('):
			args := p.arguments(')')
			p.consumePunct(')')
			expr = &CallExpr{Callee: expr, Arguments: args, Loc: p.spanFrom(start)}
		case p.matchPunct('.'):
			name := p.peek()
			if !isIdentifierName(name) {
				p.fail(name, "property name")
				return expr
			}
			p.advance()
			property := &LiteralExpr{Kind: LitString, Value: name.Lexeme, Loc: name.Span}
			expr = &BinaryExpr{Op: OpMember, Left: expr, Right: property, Loc: p.spanFrom(start)}
		case p.matchPunct('['):
			index := p.expression()
			p.consumePunct(']')
			expr = &BinaryExpr{Op: OpSubscript, Left: expr, Right: index, Loc: p.spanFrom(start)}
		default:
			return expr
		}
	}
	return expr
}

// arguments parses a comma separated expression list up to, not including, closer
func (p *Parser) arguments(closer byte) []Expr {
	var args []Expr
	for p.err == nil && !p.checkPunct(closer) {
		args = append(args, p.expression())
		if !p.matchPunct(',') {
			break
		}
	}
	return args
}

func (p *Parser) primary() Expr {
	tok := p.peek()
	switch tok.Kind {
	case Identifier:
		p.advance()
		return &IdentifierExpr{Name: tok.Text(), Loc: tok.Span}
	case IntegerLiteral:
		p.advance()
		return &LiteralExpr{Kind: LitInteger, Value: tok.Int(), Loc: tok.Span}
	case DoubleLiteral:
		p.advance()
		return &LiteralExpr{Kind: LitDouble, Value: tok.Float(), Loc: tok.Span}
	case StringLiteral:
		p.advance()
		return &LiteralExpr{Kind: LitString, Value: tok.Text(), Loc: tok.Span}
	case BooleanLiteral:
		p.advance()
		return &LiteralExpr{Kind: LitBoolean, Value: tok.Bool(), Loc: tok.Span}
	case KeywordToken:
		switch tok.Keyword() {
		case KwNull:
			p.advance()
			return &LiteralExpr{Kind: LitNull, Loc: tok.Span}
		case KwThis:
			p.advance()
			return &IdentifierExpr{Name: tok.Lexeme, Loc: tok.Span}
		case KwFunction:
			if fn := p.function(); fn != nil {
				return fn
			}
			return nil
		}
	case Punctuator:
		switch tok.Punct() {
		case '(':
			p.advance()
			expr := p.expression()
			p.consumePunct(')')
			return expr
		case '[':
			return p.array()
		case '{':
			return p.object()
		}
	}

	p.fail(tok, "expression")
	return nil
}

func (p *Parser) array() Expr {
	open := p.advance()
	array := &ArrayExpr{Elements: p.arguments(']')}
	p.consumePunct(']')
	array.Loc = p.spanFrom(open)
	return array
}

func (p *Parser) object() Expr {
	open := p.advance()

	object := &ObjectExpr{Properties: make(map[string]Expr)}
	for p.err == nil && !p.checkPunct('}') {
		key := p.peek()
		if !isPropertyKey(key) {
			p.fail(key, "property key")
			return nil
		}
		p.advance()
		p.consumePunct(':')
		object.Properties[propertyName(key)] = p.expression()
		if !p.matchPunct(',') {
			break
		}
	}
	p.consumePunct('}')
	object.Loc = p.spanFrom(open)
	return object
}

func (p *Parser) function() *FunctionExpr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	keyword := p.advance()

	fn := &FunctionExpr{}
	if p.peek().Kind == Identifier {
		fn.Name = p.consumeIdentifier()
	}
	p.consumePunct('(')
	for p.err == nil && !p.checkPunct(')') {
		fn.Params = append(fn.Params, p.consumeIdentifier())
		if !p.matchPunct(',') {
			break
		}
	}
	p.consumePunct(')')
	fn.Body = p.block()
	fn.Loc = p.spanFrom(keyword)
	return fn
}

func (p *Parser) consumeIdentifier() *IdentifierExpr {
	tok := p.peek()
	if tok.Kind != Identifier {
		p.fail(tok, "identifier")
		return nil
	}
	p.advance()
	return &IdentifierExpr{Name: tok.Text(), Loc: tok.Span}
}

func (p *Parser) consumePunct(ch byte) Token {
	tok := p.peek()
	if !tok.isPunct(ch) {
		p.fail(tok, "'"+string(ch)+"'")
		return tok
	}
	return p.advance()
}

func (p *Parser) matchPunct(ch byte) bool {
	if !p.checkPunct(ch) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) checkPunct(ch byte) bool {
	return p.peek().isPunct(ch)
}

func (p *Parser) matchKeyword(kw Keyword) bool {
	if !p.peek().isKeyword(kw) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) matchPrecedence(prec Precedence) (BinaryOp, bool) {
	tok := p.peek()
	if tok.Kind != BinaryOperator || tok.Binary().Precedence() != prec {
		return BinaryIllegal, false
	}
	p.advance()
	return tok.Binary(), true
}

func (p *Parser) atStatementEnd() bool {
	tok := p.peek()
	return tok.Kind == EOF || tok.isPunct(';') || tok.isPunct('}')
}

// peek returns the next token. Once the parse has failed it returns EOF so
// every production unwinds without consuming more input.
func (p *Parser) peek() Token {
	if p.err != nil {
		return Token{Kind: EOF, Span: p.err.Token.Span}
	}
	if !p.hasPeeked {
		p.peeked = p.lexer.Peek()
		p.hasPeeked = true
	}
	return p.peeked
}

func (p *Parser) advance() Token {
	if p.err != nil {
		return p.peek()
	}
	p.previous = p.lexer.Next()
	p.hasPeeked = false
	return p.previous
}

func (p *Parser) spanFrom(start Token) Span {
	end := p.previous.Span.End
	if end.Offset < start.Span.End.Offset {
		end = start.Span.End
	}
	return Span{Start: start.Span.Start, End: end}
}

func (p *Parser) enter() bool {
	if p.depth >= p.maxDepth {
		if p.err == nil {
			p.err = &ParseError{Err: ErrTooDeep, Token: p.peek()}
		}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) fail(tok Token, expected string) {
	if p.err != nil {
		return
	}
	p.err = newParseError(tok, expected)
}

var declKinds = map[Keyword]DeclKind{
	KwVar:   DeclVar,
	KwLet:   DeclLet,
	KwConst: DeclConst,
}

func isDeclarationStart(tok Token) bool {
	if tok.Kind != KeywordToken {
		return false
	}
	_, ok := declKinds[tok.Keyword()]
	return ok
}

// isIdentifierName reports whether tok is spelled like an identifier, reserved
// words and keyword operators included
func isIdentifierName(tok Token) bool {
	switch tok.Kind {
	case Identifier, KeywordToken, BooleanLiteral:
		return true
	case BinaryOperator, UnaryOperator:
		return tok.Lexeme != "" && isIdentifierStart(rune(tok.Lexeme[0]))
	}
	return false
}

func isPropertyKey(tok Token) bool {
	switch tok.Kind {
	case StringLiteral, IntegerLiteral, DoubleLiteral:
		return true
	}
	return isIdentifierName(tok)
}

func propertyName(tok Token) string {
	if tok.Kind == StringLiteral {
		return tok.Text()
	}
	return tok.Lexeme
}
