package graph

import "fmt"

// UnboundVariableError reports evaluation reaching a variable with no bound
// value in the supplied bindings.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("graph: unbound variable %q", e.Name)
}

// UnsupportedOperationError reports an operation node whose operator has no
// registry entry.
type UnsupportedOperationError struct {
	Op Op
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("graph: unsupported operation tag %d", uint8(e.Op))
}

// ArityError reports an operand count that does not match the operator's
// registered arity.
type ArityError struct {
	Op   Op
	Got  int
	Want int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("graph: %s expects %d operand(s), got %d", e.Op, e.Want, e.Got)
}

// VariableNotFoundError reports a gradient request for a variable that is
// not reachable from the differentiated node.
type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("graph: no gradient for variable %q (not reachable from the root)", e.Name)
}
