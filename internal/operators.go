package internal

// BinaryOp identifies a binary operator
type BinaryOp int

const (
	BinaryIllegal BinaryOp = iota

	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpExpAssign
	OpShlAssign
	OpShrAssign
	OpShrUnsignedAssign
	OpBitAndAssign
	OpBitXorAssign
	OpBitOrAssign

	OpLogicalOr
	OpLogicalAnd

	OpBitOr
	OpBitXor
	OpBitAnd

	OpEq
	OpNeq
	OpStrictEq
	OpStrictNeq

	OpGt
	OpLt
	OpGte
	OpLte
	OpIn
	OpInstanceof

	OpShl
	OpShr
	OpShrUnsigned

	OpAdd
	OpSub

	OpMul
	OpDiv
	OpMod

	OpExp

	// Structural forms, built by the parser rather than looked up by lexeme.
	OpMember
	OpSubscript
)

// UnaryOp identifies a prefix or postfix operator
type UnaryOp int

const (
	UnaryIllegal UnaryOp = iota

	OpNot
	OpBitNot
	OpPlus
	OpNeg
	OpPreInc
	OpPreDec
	OpTypeof
	OpVoid
	OpDelete
	OpNew
	OpSuper
	OpSpread

	OpPostInc
	OpPostDec
)

// Precedence is the binding power of a binary operator, higher binds tighter
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssign
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponent
	PrecUnary
	PrecPostfix
	PrecCall
)

// Associativity of a binary operator
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

type binaryInfo struct {
	lexeme string
	prec   Precedence
	assoc  Associativity
}

var binaryTable = [...]binaryInfo{
	BinaryIllegal: {"<illegal>", PrecNone, AssocLeft},

	OpAssign:            {"=", PrecAssign, AssocRight},
	OpAddAssign:         {"+=", PrecAssign, AssocRight},
	OpSubAssign:         {"-=", PrecAssign, AssocRight},
	OpMulAssign:         {"*=", PrecAssign, AssocRight},
	OpDivAssign:         {"/=", PrecAssign, AssocRight},
	OpModAssign:         {"%=", PrecAssign, AssocRight},
	OpExpAssign:         {"**=", PrecAssign, AssocRight},
	OpShlAssign:         {"<<=", PrecAssign, AssocRight},
	OpShrAssign:         {">>=", PrecAssign, AssocRight},
	OpShrUnsignedAssign: {">>>=", PrecAssign, AssocRight},
	OpBitAndAssign:      {"&=", PrecAssign, AssocRight},
	OpBitXorAssign:      {"^=", PrecAssign, AssocRight},
	OpBitOrAssign:       {"|=", PrecAssign, AssocRight},

	OpLogicalOr:  {"||", PrecLogicalOr, AssocLeft},
	OpLogicalAnd: {"&&", PrecLogicalAnd, AssocLeft},

	OpBitOr:  {"|", PrecBitOr, AssocLeft},
	OpBitXor: {"^", PrecBitXor, AssocLeft},
	OpBitAnd: {"&", PrecBitAnd, AssocLeft},

	OpEq:        {"==", PrecEquality, AssocLeft},
	OpNeq:       {"!=", PrecEquality, AssocLeft},
	OpStrictEq:  {"===", PrecEquality, AssocLeft},
	OpStrictNeq: {"!==", PrecEquality, AssocLeft},

	OpGt:         {">", PrecRelational, AssocLeft},
	OpLt:         {"<", PrecRelational, AssocLeft},
	OpGte:        {">=", PrecRelational, AssocLeft},
	OpLte:        {"<=", PrecRelational, AssocLeft},
	OpIn:         {"in", PrecRelational, AssocLeft},
	OpInstanceof: {"instanceof", PrecRelational, AssocLeft},

	OpShl:         {"<<", PrecShift, AssocLeft},
	OpShr:         {">>", PrecShift, AssocLeft},
	OpShrUnsigned: {">>>", PrecShift, AssocLeft},

	OpAdd: {"+", PrecAdditive, AssocLeft},
	OpSub: {"-", PrecAdditive, AssocLeft},

	OpMul: {"*", PrecMultiplicative, AssocLeft},
	OpDiv: {"/", PrecMultiplicative, AssocLeft},
	OpMod: {"%", PrecMultiplicative, AssocLeft},

	OpExp: {"**", PrecExponent, AssocRight},

	OpMember:    {".", PrecCall, AssocLeft},
	OpSubscript: {"[]", PrecCall, AssocLeft},
}

var unaryLexemes = [...]string{
	UnaryIllegal: "<illegal>",
	OpNot:        "!",
	OpBitNot:     "~",
	OpPlus:       "+",
	OpNeg:        "-",
	OpPreInc:     "++",
	OpPreDec:     "--",
	OpTypeof:     "typeof",
	OpVoid:       "void",
	OpDelete:     "delete",
	OpNew:        "new",
	OpSuper:      "super",
	OpSpread:     "...",
	OpPostInc:    "++",
	OpPostDec:    "--",
}

// binaryOps and unaryOps are filled once at init and only read afterwards.
var (
	binaryOps = map[string]BinaryOp{}
	unaryOps  = map[string]UnaryOp{}
)

func init() {
	for op, info := range binaryTable {
		if BinaryOp(op) == BinaryIllegal || info.prec == PrecCall {
			continue
		}
		binaryOps[info.lexeme] = BinaryOp(op)
	}
	for op := OpNot; op <= OpSpread; op++ {
		unaryOps[unaryLexemes[op]] = op
	}
}

// LookupBinary returns the binary operator spelled by lexeme
func LookupBinary(lexeme string) (BinaryOp, bool) {
	op, ok := binaryOps[lexeme]
	return op, ok
}

// LookupUnary returns the prefix operator spelled by lexeme
func LookupUnary(lexeme string) (UnaryOp, bool) {
	op, ok := unaryOps[lexeme]
	return op, ok
}

func (op BinaryOp) valid() bool {
	return op > BinaryIllegal && int(op) < len(binaryTable)
}

// Precedence returns the binding power of op
func (op BinaryOp) Precedence() Precedence {
	if !op.valid() {
		return PrecNone
	}
	return binaryTable[op].prec
}

// Associativity returns whether op groups to the left or to the right
func (op BinaryOp) Associativity() Associativity {
	if !op.valid() {
		return AssocLeft
	}
	return binaryTable[op].assoc
}

// IsAssignment reports whether op is "=" or one of the compound assignments
func (op BinaryOp) IsAssignment() bool {
	return op.Precedence() == PrecAssign
}

func (op BinaryOp) String() string {
	if !op.valid() {
		return binaryTable[BinaryIllegal].lexeme
	}
	return binaryTable[op].lexeme
}

// IsPostfix reports whether op is a postfix increment or decrement
func (op UnaryOp) IsPostfix() bool {
	return op == OpPostInc || op == OpPostDec
}

// Postfix returns the postfix form of a prefix increment or decrement
func (op UnaryOp) Postfix() (UnaryOp, bool) {
	switch op {
	case OpPreInc:
		return OpPostInc, true
	case OpPreDec:
		return OpPostDec, true
	}
	return UnaryIllegal, false
}

func (op UnaryOp) String() string {
	if op <= UnaryIllegal || int(op) >= len(unaryLexemes) {
		return unaryLexemes[UnaryIllegal]
	}
	return unaryLexemes[op]
}
