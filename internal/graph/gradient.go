package graph

// Gradient returns, for every variable reachable from n, a new Node
// representing ∂n/∂variable.
//
// The result is built by reverse-mode accumulation over the DAG: each node
// carries a symbolic adjoint (itself a Node), the root's adjoint starts at
// Constant 1, and an operation propagates its adjoint to operand i as
// adjoint * partial_i. A node's adjoint is propagated only after every
// consumer has contributed, so a sub-expression shared by several parents
// has its contributions summed rather than overwritten.
//
// Variables not reachable from n are omitted from the map; the gradient of
// a Constant is the empty map. The returned Nodes are ordinary graphs:
// evaluate them for derivative values, or call Gradient on them for
// second-order derivatives.
func (n *Node) Gradient() (map[string]*Node, error) {
	pending := consumerCounts(n)
	adjoint := map[*Node]*Node{n: Const(1)}

	ready := []*Node{n}
	for len(ready) > 0 {
		cur := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		if cur.kind != KindOperation {
			continue
		}

		def, err := lookup(cur.op)
		if err != nil {
			return nil, err
		}
		if len(cur.operands) != def.arity {
			return nil, &ArityError{Op: cur.op, Got: len(cur.operands), Want: def.arity}
		}

		g := adjoint[cur]
		for i, operand := range cur.operands {
			contrib := mulFold(g, def.partial(cur.operands, i))
			adjoint[operand] = addFold(adjoint[operand], contrib)
			pending[operand]--
			if pending[operand] == 0 {
				ready = append(ready, operand)
			}
		}
	}

	// Collect adjoints at Variable nodes, merging distinct nodes that share
	// an identity. Adjoints accumulated at constants are discarded.
	grads := make(map[string]*Node)
	for node, adj := range adjoint {
		if node.kind == KindVariable {
			grads[node.name] = addFold(grads[node.name], adj)
		}
	}
	return grads, nil
}

// GradientOf returns the gradient graph of n with respect to the named
// variable. It returns a *VariableNotFoundError if the variable is not
// reachable from n.
func (n *Node) GradientOf(name string) (*Node, error) {
	grads, err := n.Gradient()
	if err != nil {
		return nil, err
	}
	g, ok := grads[name]
	if !ok {
		return nil, &VariableNotFoundError{Name: name}
	}
	return g, nil
}

// consumerCounts walks forward from root once and counts, per node, how many
// operand edges in the sub-DAG point at it. This replaces parent pointers:
// a node's adjoint is final exactly when its count reaches zero.
func consumerCounts(root *Node) map[*Node]int {
	counts := make(map[*Node]int)
	seen := make(map[*Node]bool)
	stack := []*Node{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		for _, operand := range cur.operands {
			counts[operand]++
			stack = append(stack, operand)
		}
	}
	return counts
}

// addFold builds a + b, folding away nil and zero terms and merging
// constants so adjoint accumulation does not bloat derivative graphs.
func addFold(a, b *Node) *Node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case isConst(a, 0):
		return b
	case isConst(b, 0):
		return a
	case a.kind == KindConstant && b.kind == KindConstant:
		return Const(a.value + b.value)
	}
	return Add(a, b)
}

// mulFold builds a * b, folding multiplicative identities and merging
// constants.
func mulFold(a, b *Node) *Node {
	switch {
	case isConst(a, 0) || isConst(b, 0):
		return Const(0)
	case isConst(a, 1):
		return b
	case isConst(b, 1):
		return a
	case a.kind == KindConstant && b.kind == KindConstant:
		return Const(a.value * b.value)
	}
	return Mul(a, b)
}

func isConst(n *Node, v float64) bool {
	return n.kind == KindConstant && n.value == v
}
