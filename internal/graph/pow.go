package graph

import "math"

// Pow builds the node a^n for a constant exponent n.
//
// The exponent is stored as a Constant operand and is not differentiable:
// no gradient flows to it.
//
// Local derivative:
//   - d(a^n)/da = n * a^(n-1)
func Pow(a *Node, n float64) *Node {
	return apply(OpPow, a, Const(n))
}

var powDef = opDef{
	name:   "pow",
	symbol: "^",
	arity:  2,
	forward: func(args []float64) float64 {
		return math.Pow(args[0], args[1])
	},
	partial: func(operands []*Node, i int) *Node {
		if i == 1 {
			// The exponent is a fixed constant.
			return Const(0)
		}
		n := operands[1].value
		return Mul(Const(n), Pow(operands[0], n-1))
	},
}
