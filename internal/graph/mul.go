package graph

// Mul builds the node a * b.
//
// Local derivatives (product rule):
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func Mul(a, b *Node) *Node {
	return apply(OpMul, a, b)
}

var mulDef = opDef{
	name:   "mul",
	symbol: "*",
	arity:  2,
	forward: func(args []float64) float64 {
		return args[0] * args[1]
	},
	partial: func(operands []*Node, i int) *Node {
		// The partial with respect to one operand is the other operand.
		return operands[1-i]
	},
}
