// Package numgrad approximates gradients by central-difference perturbation.
//
// The graph is treated as a black box: one binding is perturbed by ±eps, the
// graph is re-evaluated, and the difference quotient approximates the
// derivative. Its only job is to cross-check the symbolic engine.
package numgrad

import "github.com/gradix-ml/gradix/internal/graph"

// DefaultEpsilon is a reasonable perturbation for float64 graphs. The
// approximation error of the central difference is proportional to eps².
const DefaultEpsilon = 1e-6

// Gradient approximates ∂n/∂name at the given point:
//
//	(f(x+eps) - f(x-eps)) / (2*eps)
//
// The named variable must appear in bindings.
func Gradient(n *graph.Node, name string, bindings map[string]float64, eps float64) (float64, error) {
	if _, ok := bindings[name]; !ok {
		return 0, &graph.UnboundVariableError{Name: name}
	}

	hi, err := n.Evaluate(perturb(bindings, name, +eps))
	if err != nil {
		return 0, err
	}
	lo, err := n.Evaluate(perturb(bindings, name, -eps))
	if err != nil {
		return 0, err
	}
	return (hi - lo) / (2 * eps), nil
}

// GradientAll approximates the gradient with respect to every variable
// reachable from n.
func GradientAll(n *graph.Node, bindings map[string]float64, eps float64) (map[string]float64, error) {
	grads := make(map[string]float64)
	for _, name := range n.Variables() {
		g, err := Gradient(n, name, bindings, eps)
		if err != nil {
			return nil, err
		}
		grads[name] = g
	}
	return grads, nil
}

// perturb copies bindings with one entry shifted by delta.
func perturb(bindings map[string]float64, name string, delta float64) map[string]float64 {
	out := make(map[string]float64, len(bindings))
	for k, v := range bindings {
		out[k] = v
	}
	out[name] += delta
	return out
}
