package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryTable(t *testing.T) {
	tests := []struct {
		lexeme string
		op     BinaryOp
		prec   Precedence
		assoc  Associativity
	}{
		{"=", OpAssign, PrecAssign, AssocRight},
		{">>>=", OpShrUnsignedAssign, PrecAssign, AssocRight},
		{"||", OpLogicalOr, PrecLogicalOr, AssocLeft},
		{"&&", OpLogicalAnd, PrecLogicalAnd, AssocLeft},
		{"|", OpBitOr, PrecBitOr, AssocLeft},
		{"^", OpBitXor, PrecBitXor, AssocLeft},
		{"&", OpBitAnd, PrecBitAnd, AssocLeft},
		{"!==", OpStrictNeq, PrecEquality, AssocLeft},
		{"instanceof", OpInstanceof, PrecRelational, AssocLeft},
		{">>>", OpShrUnsigned, PrecShift, AssocLeft},
		{"-", OpSub, PrecAdditive, AssocLeft},
		{"%", OpMod, PrecMultiplicative, AssocLeft},
		{"**", OpExp, PrecExponent, AssocRight},
	}
	for _, test := range tests {
		op, ok := LookupBinary(test.lexeme)
		assert.True(t, ok, test.lexeme)
		assert.Equal(t, test.op, op, test.lexeme)
		assert.Equal(t, test.prec, op.Precedence(), test.lexeme)
		assert.Equal(t, test.assoc, op.Associativity(), test.lexeme)
		assert.Equal(t, test.lexeme, op.String())
	}
}

func TestStructuralOperatorsAreNotLexemes(t *testing.T) {
	_, ok := LookupBinary(".")
	assert.False(t, ok)
	_, ok = LookupBinary("[]")
	assert.False(t, ok)

	assert.Equal(t, PrecCall, OpMember.Precedence())
	assert.Equal(t, "[]", OpSubscript.String())
	assert.Equal(t, PrecNone, BinaryIllegal.Precedence())
	assert.Equal(t, "<illegal>", BinaryOp(999).String())
}

func TestAssignmentOperators(t *testing.T) {
	for _, op := range []BinaryOp{OpAssign, OpAddAssign, OpExpAssign, OpBitOrAssign} {
		assert.True(t, op.IsAssignment(), op.String())
	}
	for _, op := range []BinaryOp{OpEq, OpAdd, OpLogicalOr, OpMember} {
		assert.False(t, op.IsAssignment(), op.String())
	}
}

func TestUnaryOperators(t *testing.T) {
	op, ok := LookupUnary("++")
	assert.True(t, ok)
	assert.Equal(t, OpPreInc, op)
	assert.False(t, op.IsPostfix())

	post, ok := op.Postfix()
	assert.True(t, ok)
	assert.Equal(t, OpPostInc, post)
	assert.True(t, post.IsPostfix())
	assert.Equal(t, "++", post.String())

	_, ok = OpNot.Postfix()
	assert.False(t, ok)

	for lexeme, want := range map[string]UnaryOp{"!": OpNot, "~": OpBitNot, "delete": OpDelete, "void": OpVoid, "...": OpSpread} {
		op, ok := LookupUnary(lexeme)
		assert.True(t, ok, lexeme)
		assert.Equal(t, want, op, lexeme)
	}

	_, ok = LookupUnary("?")
	assert.False(t, ok)
	assert.Equal(t, "<illegal>", UnaryIllegal.String())
}
