package graph

import "math"

// Log builds the node ln(a).
//
// The forward rule follows IEEE semantics: a non-positive operand evaluates
// to NaN or -Inf rather than erroring.
//
// Local derivative:
//   - d(ln(a))/da = 1/a
func Log(a *Node) *Node {
	return apply(OpLog, a)
}

var logDef = opDef{
	name:   "log",
	symbol: "log",
	arity:  1,
	prefix: true,
	forward: func(args []float64) float64 {
		return math.Log(args[0])
	},
	partial: func(operands []*Node, i int) *Node {
		return Div(Const(1), operands[0])
	},
}
