// Copyright 2025 Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for gradix computation graphs.
//
// A graph is built by composing immutable Nodes: constants, named
// variables, and the registered operators. Evaluating a node computes its
// value under a set of variable bindings; differentiating it returns, per
// variable, a new graph for the partial derivative. Derivative graphs use
// the same operator vocabulary, so differentiating twice yields second
// derivatives with no special-casing.
//
// Example:
//
//	x := graph.Var("x")
//	f := graph.Add(graph.Pow(x, 3), graph.Mul(graph.Const(2), x)) // x³ + 2x
//
//	df, _ := f.GradientOf("x")                 // graph for 3x² + 2
//	v, _ := df.Evaluate(map[string]float64{"x": 2}) // 14
package graph

import (
	"github.com/gradix-ml/gradix/internal/graph"
)

// Node is an immutable vertex in a computation graph: a constant, a named
// variable, or an operator applied to operand Nodes.
type Node = graph.Node

// Kind discriminates the three Node variants.
type Kind = graph.Kind

// Node kinds.
const (
	KindConstant  Kind = graph.KindConstant
	KindVariable  Kind = graph.KindVariable
	KindOperation Kind = graph.KindOperation
)

// Op identifies a registered operator.
type Op = graph.Op

// Registered operators.
const (
	OpAdd Op = graph.OpAdd
	OpSub Op = graph.OpSub
	OpMul Op = graph.OpMul
	OpDiv Op = graph.OpDiv
	OpPow Op = graph.OpPow
	OpNeg Op = graph.OpNeg
	OpExp Op = graph.OpExp
	OpLog Op = graph.OpLog
	OpSin Op = graph.OpSin
	OpCos Op = graph.OpCos
)

// Error types raised by evaluation and differentiation.
type (
	// UnboundVariableError reports a variable with no bound value.
	UnboundVariableError = graph.UnboundVariableError
	// UnsupportedOperationError reports an operator with no registry entry.
	UnsupportedOperationError = graph.UnsupportedOperationError
	// ArityError reports an operand count mismatch.
	ArityError = graph.ArityError
	// VariableNotFoundError reports a gradient request for a variable that
	// is not reachable from the differentiated node.
	VariableNotFoundError = graph.VariableNotFoundError
)

// Const wraps a fixed value in a Constant node.
func Const(v float64) *Node { return graph.Const(v) }

// Var declares a Variable node with the given identity. Variables with the
// same identity denote the same variable.
func Var(name string) *Node { return graph.Var(name) }

// FreshVar declares a Variable with a generated unique identity.
func FreshVar() *Node { return graph.FreshVar() }

// Add builds a + b.
func Add(a, b *Node) *Node { return graph.Add(a, b) }

// Sub builds a - b.
func Sub(a, b *Node) *Node { return graph.Sub(a, b) }

// Mul builds a * b.
func Mul(a, b *Node) *Node { return graph.Mul(a, b) }

// Div builds a / b.
func Div(a, b *Node) *Node { return graph.Div(a, b) }

// Pow builds a^n for a constant exponent n. No gradient flows to n.
func Pow(a *Node, n float64) *Node { return graph.Pow(a, n) }

// Neg builds -a.
func Neg(a *Node) *Node { return graph.Neg(a) }

// Exp builds e^a.
func Exp(a *Node) *Node { return graph.Exp(a) }

// Log builds ln(a).
func Log(a *Node) *Node { return graph.Log(a) }

// Sin builds sin(a).
func Sin(a *Node) *Node { return graph.Sin(a) }

// Cos builds cos(a).
func Cos(a *Node) *Node { return graph.Cos(a) }
