package grammar

import (
	"fmt"
	"strings"
)

const railroadHeader = `<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<!-- From https://github.com/tabatkins/railroad-diagrams -->
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`

// Railroad renders g as an HTML page with one railroad diagram per production.
//
// The page expects railroad-diagrams.{css,js} from
// https://github.com/tabatkins/railroad-diagrams alongside it. References link to
// the diagram of the referenced production.
func Railroad(g *Grammar) string {
	w := &strings.Builder{}
	w.WriteString(railroadHeader)
	for _, p := range g.Productions {
		fmt.Fprintf(w, "<h1 id=%q>%s</h1>\n", p.Name, p.Name)
		fmt.Fprintf(w, "<script>\nDiagram(%s).addTo();\n</script>\n", diagram(p.Expr))
	}
	w.WriteString("</body>\n")
	return w.String()
}

func diagram(n Node) string {
	switch n := n.(type) {
	case *Disjunction:
		return "Choice(0, " + diagrams(n.Nodes) + ")"

	case *Sequence:
		if len(n.Nodes) == 0 {
			return "Skip()"
		}
		return "Sequence(" + diagrams(n.Nodes) + ")"

	case *Reference:
		return fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.Name, n.Name)

	case *Literal:
		return fmt.Sprintf("Terminal(%q)", n.Text)

	case *Range:
		return fmt.Sprintf("Terminal(%q)", string(n.Begin)+"…"+string(n.End))

	case *Optional:
		return "Optional(" + diagram(n.Node) + ")"

	case *Repetition:
		body := diagram(n.Node)
		switch {
		case n.Max < 0 && n.Min == 0:
			return "ZeroOrMore(" + body + ")"
		case n.Max < 0 && n.Min == 1:
			return "OneOrMore(" + body + ")"
		case n.Max < 0:
			return fmt.Sprintf("Group(OneOrMore(%s), \"%d..\")", body, n.Min)
		}
		return fmt.Sprintf("Group(OneOrMore(%s), \"%d..%d\")", body, n.Min, n.Max)

	case *Group:
		return diagram(n.Node)

	case *Negation:
		return fmt.Sprintf("Group(%s, \"!\")", diagram(n.Node))

	case *Lookahead:
		return fmt.Sprintf("Group(%s, \"&\")", diagram(n.Node))

	case *Any:
		return `NonTerminal("any character")`

	case *Pattern:
		return fmt.Sprintf("Terminal(%q)", "/"+n.Regex+"/")
	}
	panic(fmt.Sprintf("unsupported node type %T", n))
}

func diagrams(nodes []Node) string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = diagram(n)
	}
	return strings.Join(out, ", ")
}
