// Copyright 2025 Gradix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numgrad provides numeric differentiation by central difference.
//
// It approximates ∂f/∂x by perturbing one variable binding and re-evaluating
// the graph. The symbolic engine never depends on it; it exists to
// cross-validate gradients in tests and examples:
//
//	sym, _ := f.GradientOf("x")
//	symVal, _ := sym.Evaluate(point)
//	numVal, _ := numgrad.Gradient(f, "x", point, numgrad.DefaultEpsilon)
//	// symVal ≈ numVal
package numgrad

import (
	"github.com/gradix-ml/gradix/graph"
	"github.com/gradix-ml/gradix/internal/numgrad"
)

// DefaultEpsilon is a reasonable perturbation for float64 graphs.
const DefaultEpsilon = numgrad.DefaultEpsilon

// Gradient approximates ∂n/∂name at the given point by central difference.
func Gradient(n *graph.Node, name string, bindings map[string]float64, eps float64) (float64, error) {
	return numgrad.Gradient(n, name, bindings, eps)
}

// GradientAll approximates the gradient with respect to every variable
// reachable from n.
func GradientAll(n *graph.Node, bindings map[string]float64, eps float64) (map[string]float64, error) {
	return numgrad.GradientAll(n, bindings, eps)
}
