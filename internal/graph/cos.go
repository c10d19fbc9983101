package graph

import "math"

// Cos builds the node cos(a).
//
// Local derivative:
//   - d(cos(a))/da = -sin(a)
func Cos(a *Node) *Node {
	return apply(OpCos, a)
}

var cosDef = opDef{
	name:   "cos",
	symbol: "cos",
	arity:  1,
	prefix: true,
	forward: func(args []float64) float64 {
		return math.Cos(args[0])
	},
	partial: func(operands []*Node, i int) *Node {
		return Neg(Sin(operands[0]))
	},
}
