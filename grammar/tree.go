package grammar

import (
	"fmt"
	"strings"
)

// Tree is a generic parse tree, with one node per matched production.
type Tree struct {
	Name     string
	Offset   int
	Length   int
	Text     string
	Children []*Tree
}

// String renders the tree as an indented outline.
func (t *Tree) String() string {
	w := &strings.Builder{}
	t.write(w, 0)
	return strings.TrimSuffix(w.String(), "\n")
}

func (t *Tree) write(w *strings.Builder, indent int) {
	fmt.Fprintf(w, "%s%s@%d %q\n", strings.Repeat("  ", indent), t.Name, t.Offset, t.Text)
	for _, child := range t.Children {
		child.write(w, indent+1)
	}
}

// Find returns every node in the tree, including t itself, named name, in
// document order.
func (t *Tree) Find(name string) []*Tree {
	var out []*Tree
	var walk func(n *Tree)
	walk = func(n *Tree) {
		if n.Name == name {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(t)
	return out
}
