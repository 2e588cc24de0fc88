package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsfront/internal"
)

func init() {
	color.Disable()
}

func TestWriteTokens(t *testing.T) {
	var buf bytes.Buffer
	invalid := writeTokens(&buf, internal.Tokenize("let x\n= 1", internal.Options{}))
	assert.Nil(t, invalid)
	assert.Equal(t, "1:1 Keyword let\n1:5 Identifier x\n2:1 BinaryOperator =\n2:3 IntegerLiteral 1\n2:4 EndOfInput \n", buf.String())
}

func TestWriteTokensStopsAtInvalid(t *testing.T) {
	var buf bytes.Buffer
	invalid := writeTokens(&buf, internal.Tokenize("a @ b", internal.Options{}))
	require.NotNil(t, invalid)
	assert.Equal(t, "@", invalid.Lexeme)
	assert.Equal(t, "1:1 Identifier a\n1:3 Invalid @\n", buf.String())
}

func TestWriteTree(t *testing.T) {
	nodes, err := internal.ParseSource("x = 1 + 2", internal.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, "sexpr", nodes))
	assert.Equal(t, "(= x (+ 1 2))\n", buf.String())

	buf.Reset()
	require.NoError(t, writeTree(&buf, "JSON", nodes))
	assert.Contains(t, buf.String(), `"type": "ExpressionStatement"`)

	buf.Reset()
	require.NoError(t, writeTree(&buf, "yaml", nodes))
	assert.Contains(t, buf.String(), "type: BinaryOp")

	assert.Error(t, writeTree(&buf, "xml", nodes))
}

func TestReportParseError(t *testing.T) {
	_, err := internal.ParseSource("a = ]", internal.Options{})
	require.Error(t, err)

	var buf bytes.Buffer
	reportParseError(&buf, "prog.js", "a = ]", err)
	assert.Equal(t, "prog.js: line 1, col 5: unexpected token \"]\", expected expression\n  a = ]\n      ^\n", buf.String())
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.js")
	require.NoError(t, os.WriteFile(path, []byte("let a = 1"), 0o644))

	abs, source, err := readSource([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, abs)
	assert.Equal(t, "let a = 1", source)

	_, _, err = readSource([]string{filepath.Join(t.TempDir(), "missing.js")})
	assert.Error(t, err)
}
