package graph

import "math"

// Sin builds the node sin(a).
//
// Local derivative:
//   - d(sin(a))/da = cos(a)
func Sin(a *Node) *Node {
	return apply(OpSin, a)
}

var sinDef = opDef{
	name:   "sin",
	symbol: "sin",
	arity:  1,
	prefix: true,
	forward: func(args []float64) float64 {
		return math.Sin(args[0])
	},
	partial: func(operands []*Node, i int) *Node {
		return Cos(operands[0])
	},
}
