package graph

// Sub builds the node a - b.
//
// Local derivatives:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func Sub(a, b *Node) *Node {
	return apply(OpSub, a, b)
}

var subDef = opDef{
	name:   "sub",
	symbol: "-",
	arity:  2,
	forward: func(args []float64) float64 {
		return args[0] - args[1]
	},
	partial: func(operands []*Node, i int) *Node {
		if i == 0 {
			return Const(1)
		}
		return Const(-1)
	},
}
