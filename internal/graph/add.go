package graph

// Add builds the node a + b.
//
// Local derivatives:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func Add(a, b *Node) *Node {
	return apply(OpAdd, a, b)
}

var addDef = opDef{
	name:   "add",
	symbol: "+",
	arity:  2,
	forward: func(args []float64) float64 {
		return args[0] + args[1]
	},
	partial: func(operands []*Node, i int) *Node {
		return Const(1)
	},
}
