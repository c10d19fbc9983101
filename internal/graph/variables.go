package graph

import "sort"

// Variables returns the sorted identities of all variables reachable from n.
func (n *Node) Variables() []string {
	set := make(map[string]struct{})
	seen := make(map[*Node]bool)
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		if cur.kind == KindVariable {
			set[cur.name] = struct{}{}
		}
		stack = append(stack, cur.operands...)
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
