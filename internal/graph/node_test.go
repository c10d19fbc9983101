package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConst(t *testing.T) {
	n := Const(3.5)

	assert.Equal(t, KindConstant, n.Kind())
	assert.Equal(t, 3.5, n.Value())
	assert.Empty(t, n.Operands())
}

func TestVar(t *testing.T) {
	n := Var("x")

	assert.Equal(t, KindVariable, n.Kind())
	assert.Equal(t, "x", n.Name())
	assert.Empty(t, n.Operands())
}

func TestFreshVar_UniqueIdentities(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := FreshVar()
		require.Equal(t, KindVariable, n.Kind())
		require.NotEmpty(t, n.Name())
		require.False(t, seen[n.Name()], "duplicate identity %q", n.Name())
		seen[n.Name()] = true
	}
}

func TestOperationNode(t *testing.T) {
	a, b := Var("a"), Var("b")
	n := Add(a, b)

	assert.Equal(t, KindOperation, n.Kind())
	assert.Equal(t, OpAdd, n.Operator())

	operands := n.Operands()
	require.Len(t, operands, 2)
	assert.Same(t, a, operands[0])
	assert.Same(t, b, operands[1])
}

func TestOperands_ReturnsCopy(t *testing.T) {
	n := Mul(Var("a"), Var("b"))

	operands := n.Operands()
	operands[0] = Const(99)

	fresh := n.Operands()
	assert.Equal(t, KindVariable, fresh[0].Kind())
	assert.Equal(t, "a", fresh[0].Name())
}

func TestSharedSubexpression_ByReference(t *testing.T) {
	x := Var("x")
	sq := Mul(x, x)
	f := Add(sq, sq) // sq shared by both operands

	operands := f.Operands()
	assert.Same(t, operands[0], operands[1])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "constant", KindConstant.String())
	assert.Equal(t, "variable", KindVariable.String())
	assert.Equal(t, "operation", KindOperation.String())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "pow", OpPow.String())
	assert.Equal(t, "cos", OpCos.String())
	assert.Equal(t, "op(99)", Op(99).String())
}

func TestRegistry_ArityMatchesConstructors(t *testing.T) {
	unary := []Op{OpNeg, OpExp, OpLog, OpSin, OpCos}
	for _, op := range unary {
		def, err := lookup(op)
		require.NoError(t, err)
		assert.Equal(t, 1, def.arity, "%s", op)
	}

	binary := []Op{OpAdd, OpSub, OpMul, OpDiv, OpPow}
	for _, op := range binary {
		def, err := lookup(op)
		require.NoError(t, err)
		assert.Equal(t, 2, def.arity, "%s", op)
	}
}
