package graph

// Div builds the node a / b.
//
// Local derivatives (quotient rule):
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
func Div(a, b *Node) *Node {
	return apply(OpDiv, a, b)
}

var divDef = opDef{
	name:   "div",
	symbol: "/",
	arity:  2,
	forward: func(args []float64) float64 {
		return args[0] / args[1]
	},
	partial: func(operands []*Node, i int) *Node {
		a, b := operands[0], operands[1]
		if i == 0 {
			return Div(Const(1), b)
		}
		return Neg(Div(a, Mul(b, b)))
	},
}
