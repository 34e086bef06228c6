package grammar

import (
	"fmt"
	"strings"
)

// render returns the EBNF text of n. Compound nodes inside a sequence or repetition are grouped when
// nested is true.
func render(n Node, nested bool) string {
	switch n := n.(type) {
	case nil:
		return ""

	case *Disjunction:
		out := make([]string, len(n.Nodes))
		for i, next := range n.Nodes {
			out[i] = render(next, false)
		}
		return group(strings.Join(out, " | "), nested)

	case *Sequence:
		out := make([]string, len(n.Nodes))
		for i, next := range n.Nodes {
			out[i] = render(next, true)
		}
		return group(strings.Join(out, " "), nested && len(n.Nodes) > 1)

	case *Reference:
		return n.Name

	case *Literal:
		return fmt.Sprintf("%q", n.Text)

	case *Range:
		return fmt.Sprintf("%q … %q", string(n.Begin), string(n.End))

	case *Optional:
		return "[ " + render(n.Node, false) + " ]"

	case *Repetition:
		return repetition(n)

	case *Group:
		return "( " + render(n.Node, false) + " )"

	case *Negation:
		return "!" + render(n.Node, true)

	case *Lookahead:
		return "&" + render(n.Node, true)

	case *Any:
		return "."

	case *Pattern:
		return "/" + n.Regex + "/"

	default:
		panic(fmt.Sprintf("unsupported node type %T", n))
	}
}

// repetition expands Min and Max into plain EBNF: Min mandatory copies followed by
// either "{ x }" or nested options up to Max.
func repetition(n *Repetition) string {
	body := render(n.Node, true)
	out := []string{}
	for i := 0; i < n.Min; i++ {
		out = append(out, body)
	}
	if n.Max < 0 {
		out = append(out, "{ "+render(n.Node, false)+" }")
	} else if extra := n.Max - n.Min; extra > 0 {
		tail := ""
		for i := 0; i < extra; i++ {
			if tail == "" {
				tail = "[ " + render(n.Node, false) + " ]"
			} else {
				tail = "[ " + body + " " + tail + " ]"
			}
		}
		out = append(out, tail)
	}
	return strings.Join(out, " ")
}

func group(s string, nested bool) string {
	if nested {
		return "( " + s + " )"
	}
	return s
}
