// Package graph implements the symbolic computation graph at the core of gradix.
//
// A Node is an immutable vertex in a directed acyclic graph: a constant, a
// named variable, or a registered operation applied to operand Nodes.
// Evaluation walks the graph forward under a set of variable bindings;
// differentiation walks it in reverse and emits a new graph per variable.
// Because a derivative is an ordinary graph, it can be evaluated at a point
// or differentiated again for higher-order derivatives.
package graph

import "github.com/google/uuid"

// Kind discriminates the three Node variants.
type Kind uint8

const (
	// KindConstant is a fixed value leaf.
	KindConstant Kind = iota
	// KindVariable is a named leaf whose value is supplied at evaluation time.
	KindVariable
	// KindOperation is a registered operator applied to operand Nodes.
	KindOperation
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindOperation:
		return "operation"
	}
	return "invalid"
}

// Node is an immutable vertex in a computation graph.
//
// Nodes are created by wrapping a constant, declaring a variable, or
// applying a registered operator to existing Nodes. Once constructed a Node
// never changes: differentiation and simplification allocate new Nodes, and
// sub-expressions may be shared by reference between any number of parents.
type Node struct {
	kind     Kind
	op       Op      // operator tag, set only when kind == KindOperation
	operands []*Node // ordered children, empty for leaves
	value    float64 // constant value, set only when kind == KindConstant
	name     string  // variable identity, set only when kind == KindVariable
}

// Const wraps a fixed value in a Constant node.
func Const(v float64) *Node {
	return &Node{kind: KindConstant, value: v}
}

// Var declares a Variable node with the given identity.
//
// Two Variable nodes with the same identity denote the same variable: they
// read the same binding during evaluation and their gradient contributions
// merge into a single entry.
func Var(name string) *Node {
	return &Node{kind: KindVariable, name: name}
}

// FreshVar declares a Variable with a generated identity, for callers that
// need a unique variable without choosing a name.
func FreshVar() *Node {
	return Var("v_" + uuid.NewString()[:8])
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// Operator returns the operator tag of an Operation node.
// For leaves it returns the zero Op.
func (n *Node) Operator() Op {
	return n.op
}

// Operands returns a copy of the node's children, so callers cannot reach
// into the graph and mutate it.
func (n *Node) Operands() []*Node {
	if len(n.operands) == 0 {
		return nil
	}
	out := make([]*Node, len(n.operands))
	copy(out, n.operands)
	return out
}

// Value returns the value of a Constant node.
func (n *Node) Value() float64 {
	return n.value
}

// Name returns the identity of a Variable node.
func (n *Node) Name() string {
	return n.name
}
