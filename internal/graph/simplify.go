package graph

// Simplify returns an equivalent, usually smaller graph. The receiver is
// not modified and evaluation under any bindings is unchanged.
//
// Applied rewrites:
//   - operations whose operands are all constants fold to a Constant
//   - x + 0 and x * 1 collapse to x; x * 0 folds to 0
//   - constant factors merge across nested products: (2 * x) * 3 → 6 * x
//   - x^1 collapses to x; x^0 folds to 1
func (n *Node) Simplify() *Node {
	if n.kind != KindOperation {
		return n
	}

	operands := make([]*Node, len(n.operands))
	changed := false
	allConst := true
	for i, operand := range n.operands {
		operands[i] = operand.Simplify()
		if operands[i] != operand {
			changed = true
		}
		if operands[i].kind != KindConstant {
			allConst = false
		}
	}

	if allConst {
		if def, err := lookup(n.op); err == nil {
			args := make([]float64, len(operands))
			for i, operand := range operands {
				args[i] = operand.value
			}
			return Const(def.forward(args))
		}
	}

	switch n.op {
	case OpAdd:
		if isConst(operands[0], 0) {
			return operands[1]
		}
		if isConst(operands[1], 0) {
			return operands[0]
		}
	case OpMul:
		if folded := simplifyMul(operands[0], operands[1]); folded != nil {
			return folded
		}
	case OpPow:
		if isConst(operands[1], 1) {
			return operands[0]
		}
		if isConst(operands[1], 0) {
			return Const(1)
		}
	}

	if !changed {
		return n
	}
	return &Node{kind: KindOperation, op: n.op, operands: operands}
}

// simplifyMul folds multiplicative identities and merges a constant with a
// constant factor of a nested product. Returns nil when no rewrite applies.
func simplifyMul(a, b *Node) *Node {
	switch {
	case isConst(a, 0) || isConst(b, 0):
		return Const(0)
	case isConst(a, 1):
		return b
	case isConst(b, 1):
		return a
	}
	if a.kind == KindConstant && b.kind == KindOperation && b.op == OpMul {
		return mergeConstFactor(a.value, b)
	}
	if b.kind == KindConstant && a.kind == KindOperation && a.op == OpMul {
		return mergeConstFactor(b.value, a)
	}
	return nil
}

// mergeConstFactor rewrites c * (k * x) or c * (x * k) as (c*k) * x when the
// inner product carries a constant factor k.
func mergeConstFactor(c float64, product *Node) *Node {
	x, y := product.operands[0], product.operands[1]
	if x.kind == KindConstant {
		return mulFold(Const(c*x.value), y)
	}
	if y.kind == KindConstant {
		return mulFold(Const(c*y.value), x)
	}
	return nil
}
