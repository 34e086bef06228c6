package grammar

import "fmt"

// VisitorFunc is called for each node. Calling next visits the node's children.
type VisitorFunc func(n Node, next func() error) error

// Visit n and its children depth first. References are not followed.
func Visit(n Node, visitor VisitorFunc) error {
	return visit(map[Node]bool{}, n, visitor)
}

// seen holds compound nodes only. Pointers to empty leaves such as *Any may share
// an address.
func visit(seen map[Node]bool, n Node, visitor VisitorFunc) error {
	if n == nil {
		return nil
	}
	if !isLeaf(n) {
		if seen[n] {
			return nil
		}
		seen[n] = true
	}
	return visitor(n, func() error {
		switch n := n.(type) {
		case *Production:
			return visit(seen, n.Expr, visitor)

		case *Disjunction:
			for _, c := range n.Nodes {
				if err := visit(seen, c, visitor); err != nil {
					return err
				}
			}

		case *Sequence:
			for _, c := range n.Nodes {
				if err := visit(seen, c, visitor); err != nil {
					return err
				}
			}

		case *Optional:
			return visit(seen, n.Node, visitor)

		case *Repetition:
			return visit(seen, n.Node, visitor)

		case *Group:
			return visit(seen, n.Node, visitor)

		case *Negation:
			return visit(seen, n.Node, visitor)

		case *Lookahead:
			return visit(seen, n.Node, visitor)

		case *Reference, *Literal, *Range, *Any, *Pattern:

		default:
			panic(fmt.Sprintf("unsupported node type %T", n))
		}
		return nil
	})
}

func isLeaf(n Node) bool {
	switch n.(type) {
	case *Reference, *Literal, *Range, *Any, *Pattern:
		return true
	}
	return false
}
