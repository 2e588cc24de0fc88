package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseOK(t *testing.T, source string) []Node {
	t.Helper()
	nodes, err := ParseSource(source, Options{})
	require.NoError(t, err)
	return nodes
}

func TestPrintTree(t *testing.T) {
	nodes := parseOK(t, "let a = [1, 2]\nwhile (a) a = a - 1")

	var buf bytes.Buffer
	require.NoError(t, PrintTree(&buf, nodes))
	assert.Equal(t, "(let a (array 1 2))\n(while a (= a (- a 1)))\n", buf.String())
}

func TestSexprOfHandBuiltNodes(t *testing.T) {
	assert.Equal(t, "(var ())", Sexpr(&VarStmt{Kind: DeclVar}))
	assert.Equal(t, "(if () ())", Sexpr(&IfStmt{}))
	assert.Equal(t, "(try ())", Sexpr(&TryStmt{}))
	assert.Equal(t, `"x"`, Sexpr(&LiteralExpr{Kind: LitString, Value: "x"}))
	assert.Equal(t, "()", Sexpr(nil))
}

func TestDump(t *testing.T) {
	nodes := parseOK(t, "x = -1")
	tree := Dump(nodes[0])

	assert.Equal(t, "ExpressionStatement", tree["type"])
	assert.Equal(t, "0:0-0:6", tree["span"])

	assign := tree["expression"].(Tree)
	assert.Equal(t, "BinaryOp", assign["type"])
	assert.Equal(t, "=", assign["op"])
	assert.Equal(t, "Identifier", assign["left"].(Tree)["type"])

	neg := assign["right"].(Tree)
	assert.Equal(t, "UnaryOp", neg["type"])
	assert.Equal(t, "-", neg["op"])
	assert.Equal(t, false, neg["postfix"])
	assert.Equal(t, int64(1), neg["operand"].(Tree)["value"])
}

func TestDumpStatements(t *testing.T) {
	nodes := parseOK(t, "function f(a) { try { return a } catch (e) {} }")
	fn := Dump(nodes[0])
	assert.Equal(t, "Function", fn["type"])
	assert.Equal(t, "f", fn["name"])
	assert.Equal(t, []interface{}{"a"}, fn["params"])

	body := fn["body"].(Tree)["body"].([]Tree)
	require.Len(t, body, 1)
	try := body[0]
	assert.Equal(t, "TryCatch", try["type"])
	assert.Equal(t, "e", try["catch"].(Tree)["name"])
	assert.Nil(t, try["finally"])
}

func TestDumpEncodes(t *testing.T) {
	nodes := parseOK(t, "const o = {k: [true, null, 'v']}; for (;;) { break }")
	trees := DumpAll(nodes)
	require.Len(t, trees, 2)

	data, err := json.Marshal(trees)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "VariableDeclaration", decoded[0]["type"])
	assert.Equal(t, "const", decoded[0]["kind"])
	assert.Equal(t, "For", decoded[1]["type"])

	out, err := yaml.Marshal(trees)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: Object")
}
