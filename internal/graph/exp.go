package graph

import "math"

// Exp builds the node e^a.
//
// Local derivative:
//   - d(exp(a))/da = exp(a)
func Exp(a *Node) *Node {
	return apply(OpExp, a)
}

var expDef = opDef{
	name:   "exp",
	symbol: "exp",
	arity:  1,
	prefix: true,
	forward: func(args []float64) float64 {
		return math.Exp(args[0])
	},
	partial: func(operands []*Node, i int) *Node {
		return Exp(operands[0])
	},
}
