package internal

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("x = 'y'", Options{})
	require.Len(t, tokens, 4)

	kinds := []TokenKind{Identifier, BinaryOperator, StringLiteral, EOF}
	for i, kind := range kinds {
		assert.Equal(t, kind, tokens[i].Kind)
	}
	assert.Equal(t, "EndOfInput", tokens[3].String())
	assert.Equal(t, `StringLiteral "'y'"`, tokens[2].String())
}

func TestTokenizeLogsInvalidTokens(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tokens := Tokenize("a #", Options{Logger: logger})
	require.Len(t, tokens, 3)
	assert.Equal(t, Invalid, tokens[1].Kind)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "invalid token", hook.LastEntry().Message)
	assert.Equal(t, "#", hook.LastEntry().Data["lexeme"])
	assert.Equal(t, 2, hook.LastEntry().Data["col"])
}

func TestParseSourceWithoutError(t *testing.T) {
	nodes, err := ParseSource("a; b; c", Options{MaxDepth: 10})
	assert.NoError(t, err)
	assert.Len(t, nodes, 3)
}
