package graph

import "strconv"

// String renders the graph as an infix expression: constants and variable
// names appear verbatim, binary operations are parenthesized, and unary
// transcendentals render as name(operand). The rendering is deterministic.
func (n *Node) String() string {
	switch n.kind {
	case KindConstant:
		return strconv.FormatFloat(n.value, 'g', -1, 64)
	case KindVariable:
		return n.name
	}

	def, err := lookup(n.op)
	if err != nil {
		return "<" + n.op.String() + ">"
	}

	switch {
	case n.op == OpNeg:
		return "-" + n.operands[0].String()
	case def.prefix:
		return def.name + "(" + n.operands[0].String() + ")"
	default:
		return "(" + n.operands[0].String() + " " + def.symbol + " " + n.operands[1].String() + ")"
	}
}
