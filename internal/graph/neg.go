package graph

// Neg builds the node -a.
//
// Local derivative:
//   - d(-a)/da = -1
func Neg(a *Node) *Node {
	return apply(OpNeg, a)
}

var negDef = opDef{
	name:   "neg",
	symbol: "-",
	arity:  1,
	forward: func(args []float64) float64 {
		return -args[0]
	},
	partial: func(operands []*Node, i int) *Node {
		return Const(-1)
	},
}
