package graph

import "fmt"

// Op identifies a registered operator.
type Op uint8

// Registered operators. The zero value is reserved so that a leaf node's
// operator field is never a valid tag.
const (
	opInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
	OpExp
	OpLog
	OpSin
	OpCos
)

// String returns the operator's registered name.
func (op Op) String() string {
	if def, ok := registry[op]; ok {
		return def.name
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// opDef is one registry entry: the forward rule plus the local-derivative
// rule for each operand position.
//
// partial builds the graph of d(op)/d(operands[i]) expressed in terms of the
// original operands. It returns Nodes, not numbers, which is what makes
// derivative graphs differentiable again.
type opDef struct {
	name    string
	symbol  string
	arity   int
	prefix  bool // rendered as name(x) rather than infix
	forward func(args []float64) float64
	partial func(operands []*Node, i int) *Node
}

// registry is the closed catalog of supported operators. Each entry lives in
// the operator's own file alongside its derivative rule.
var registry = map[Op]opDef{
	OpAdd: addDef,
	OpSub: subDef,
	OpMul: mulDef,
	OpDiv: divDef,
	OpPow: powDef,
	OpNeg: negDef,
	OpExp: expDef,
	OpLog: logDef,
	OpSin: sinDef,
	OpCos: cosDef,
}

// lookup resolves an operator tag to its registry entry.
func lookup(op Op) (opDef, error) {
	def, ok := registry[op]
	if !ok {
		return opDef{}, &UnsupportedOperationError{Op: op}
	}
	return def, nil
}

// apply builds an Operation node. The public constructors are fixed-arity,
// so the operand count always matches the registry entry.
func apply(op Op, operands ...*Node) *Node {
	return &Node{kind: KindOperation, op: op, operands: operands}
}
