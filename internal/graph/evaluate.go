package graph

// Evaluate computes the node's value under the given variable bindings.
//
// Every variable reachable from the node must appear in bindings, otherwise
// Evaluate returns an *UnboundVariableError naming the missing identity.
// Evaluation is a pure function of the bindings: the graph is never mutated
// and repeated calls return the same value. Sub-results are memoized per
// call, so shared sub-expressions are computed once.
func (n *Node) Evaluate(bindings map[string]float64) (float64, error) {
	return n.eval(bindings, make(map[*Node]float64))
}

func (n *Node) eval(bindings map[string]float64, memo map[*Node]float64) (float64, error) {
	if v, ok := memo[n]; ok {
		return v, nil
	}

	var v float64
	switch n.kind {
	case KindConstant:
		v = n.value

	case KindVariable:
		bound, ok := bindings[n.name]
		if !ok {
			return 0, &UnboundVariableError{Name: n.name}
		}
		v = bound

	case KindOperation:
		def, err := lookup(n.op)
		if err != nil {
			return 0, err
		}
		if len(n.operands) != def.arity {
			return 0, &ArityError{Op: n.op, Got: len(n.operands), Want: def.arity}
		}
		args := make([]float64, len(n.operands))
		for i, operand := range n.operands {
			arg, err := operand.eval(bindings, memo)
			if err != nil {
				return 0, err
			}
			args[i] = arg
		}
		v = def.forward(args)
	}

	memo[n] = v
	return v, nil
}
