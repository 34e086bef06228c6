// Package grammar represents a grammar as data and compiles it into a combo parser.
//
// A Grammar is built once, either in Go with the constructors in this package or
// from EBNF with LoadEBNF, and compiled once with Compile into a fixed tree of
// combo parsers producing a generic parse Tree.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// A Node in the grammar.
type Node interface {
	// String returns the EBNF for the node.
	String() string
	node()
}

// Production = Name "=" Expr "." .
type Production struct {
	Name string
	Expr Node
}

func (p *Production) node()          {}
func (p *Production) String() string { return fmt.Sprintf("%s = %s .", p.Name, render(p.Expr, false)) }

// Lexical reports whether the production is a lexical helper, by the EBNF
// convention of a lower case initial letter.
func (p *Production) Lexical() bool {
	return p.Name != "" && strings.ToLower(p.Name[:1]) == p.Name[:1]
}

// Reference to a production by name.
type Reference struct {
	Name string
}

func (r *Reference) node()          {}
func (r *Reference) String() string { return render(r, false) }

// <expr> {"|" <expr>}
type Disjunction struct {
	Nodes []Node
}

func (d *Disjunction) node()          {}
func (d *Disjunction) String() string { return render(d, false) }

// <expr> {<expr>}
type Sequence struct {
	Nodes []Node
}

func (s *Sequence) node()          {}
func (s *Sequence) String() string { return render(s, false) }

// "text"
type Literal struct {
	Text string
}

func (l *Literal) node()          {}
func (l *Literal) String() string { return render(l, false) }

// "a" … "z"
type Range struct {
	Begin, End rune
}

func (r *Range) node()          {}
func (r *Range) String() string { return render(r, false) }

// [ <expr> ]
type Optional struct {
	Node Node
}

func (o *Optional) node()          {}
func (o *Optional) String() string { return render(o, false) }

// Unlimited is the Max of an unbounded Repetition.
const Unlimited = -1

// { <expr> } repeated between Min and Max times. A negative Max is unbounded.
type Repetition struct {
	Node Node
	Min  int
	Max  int
}

func (r *Repetition) node()          {}
func (r *Repetition) String() string { return render(r, false) }

// ( <expr> )
type Group struct {
	Node Node
}

func (g *Group) node()          {}
func (g *Group) String() string { return render(g, false) }

// !<expr> succeeds, consuming nothing, if expr does not match.
type Negation struct {
	Node Node
}

func (n *Negation) node()          {}
func (n *Negation) String() string { return render(n, false) }

// &<expr> succeeds, consuming nothing, if expr matches.
type Lookahead struct {
	Node Node
}

func (l *Lookahead) node()          {}
func (l *Lookahead) String() string { return render(l, false) }

// Any matches a single character.
type Any struct{}

func (a *Any) node()          {}
func (a *Any) String() string { return "." }

// /regex/
type Pattern struct {
	Regex string
}

func (p *Pattern) node()          {}
func (p *Pattern) String() string { return render(p, false) }

// Seq is a sequence of nodes.
func Seq(nodes ...Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Sequence{Nodes: nodes}
}

// Alt is an ordered choice between nodes.
func Alt(nodes ...Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Disjunction{Nodes: nodes}
}

// Lit matches text literally.
func Lit(text string) Node { return &Literal{Text: text} }

// Ref refers to the production called name.
func Ref(name string) Node { return &Reference{Name: name} }

// Opt matches nodes zero or one times.
func Opt(nodes ...Node) Node { return &Optional{Node: Seq(nodes...)} }

// Rep matches nodes zero or more times.
func Rep(nodes ...Node) Node { return &Repetition{Node: Seq(nodes...), Max: Unlimited} }

// Rep1 matches nodes one or more times.
func Rep1(nodes ...Node) Node { return &Repetition{Node: Seq(nodes...), Min: 1, Max: Unlimited} }

// Span matches a character between begin and end, inclusive.
func Span(begin, end rune) Node { return &Range{Begin: begin, End: end} }

// Not succeeds, consuming nothing, if nodes do not match.
func Not(nodes ...Node) Node { return &Negation{Node: Seq(nodes...)} }

// And succeeds, consuming nothing, if nodes match.
func And(nodes ...Node) Node { return &Lookahead{Node: Seq(nodes...)} }

// Dot matches any character.
func Dot() Node { return &Any{} }

// Re matches a regular expression.
func Re(pattern string) Node { return &Pattern{Regex: pattern} }

// Def defines a production.
func Def(name string, nodes ...Node) *Production {
	return &Production{Name: name, Expr: Seq(nodes...)}
}

// Grammar is a set of productions with a start production.
type Grammar struct {
	Start       string
	Productions []*Production
}

// New creates a Grammar. If start is empty the first production is the start.
func New(start string, productions ...*Production) *Grammar {
	if start == "" && len(productions) > 0 {
		start = productions[0].Name
	}
	return &Grammar{Start: start, Productions: productions}
}

// Lookup a production by name.
func (g *Grammar) Lookup(name string) *Production {
	for _, p := range g.Productions {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// String returns the EBNF for the grammar, one production per line.
func (g *Grammar) String() string {
	out := make([]string, 0, len(g.Productions))
	for _, p := range g.Productions {
		out = append(out, p.String())
	}
	return strings.Join(out, "\n")
}

// Validate the grammar.
//
// Every reference must be defined and production names must be unique. Every
// production other than the start must be referenced.
func (g *Grammar) Validate() error {
	var errs []error
	if g.Start == "" {
		errs = append(errs, errors.New("start production undefined"))
	} else if g.Lookup(g.Start) == nil {
		errs = append(errs, fmt.Errorf("start production %q is missing", g.Start))
	}
	defined := map[string]bool{}
	used := map[string]bool{g.Start: true}
	for _, p := range g.Productions {
		if defined[p.Name] {
			errs = append(errs, fmt.Errorf("duplicate production %q", p.Name))
		}
		defined[p.Name] = true
		err := Visit(p.Expr, func(n Node, next func() error) error {
			switch n := n.(type) {
			case *Reference:
				used[n.Name] = true
			case *Range:
				if n.Begin > n.End {
					return fmt.Errorf("%s: decreasing character range %s", p.Name, n)
				}
			case *Pattern:
				if n.Regex == "" {
					return fmt.Errorf("%s: empty pattern", p.Name)
				}
			}
			return next()
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range g.Productions {
		_ = Visit(p.Expr, func(n Node, next func() error) error {
			if ref, ok := n.(*Reference); ok && !defined[ref.Name] {
				errs = append(errs, fmt.Errorf("%s: undefined production %q", p.Name, ref.Name))
			}
			return next()
		})
		if !used[p.Name] {
			errs = append(errs, fmt.Errorf("unused production %q", p.Name))
		}
	}
	return errors.Join(errs...)
}
