package grammar

import (
	"fmt"
	"regexp"

	"github.com/alecthomas/combo"
)

type parser = combo.Parser[rune, []*Tree]

type compiler struct {
	grammar     *Grammar
	start       string
	memoize     bool
	noBacktrack bool
	trim        bool
	productions map[string]parser
}

// A CompileOption modifies how a Grammar is compiled.
type CompileOption func(c *compiler) error

// Start overrides the start production of the grammar. Productions unreachable
// from name are compiled but never used.
func Start(name string) CompileOption {
	return func(c *compiler) error {
		if c.grammar.Lookup(name) == nil {
			return fmt.Errorf("unknown start production %q", name)
		}
		c.start = name
		return nil
	}
}

// Memoize every production, making the parser a packrat parser.
func Memoize() CompileOption {
	return func(c *compiler) error {
		c.memoize = true
		return nil
	}
}

// NoBacktrack disables backtracking between alternatives.
//
// By default every alternative may fail after consuming input and the next
// alternative is still tried, giving PEG ordered choice. With NoBacktrack an
// alternative that fails after consuming input fails the whole choice.
func NoBacktrack() CompileOption {
	return func(c *compiler) error {
		c.noBacktrack = true
		return nil
	}
}

// Trim lexical productions (those starting with a lower case letter) from the
// Tree. Their children are spliced into their parent.
func Trim() CompileOption {
	return func(c *compiler) error {
		c.trim = true
		return nil
	}
}

// Compile g into a parser producing a Tree rooted at the start production.
//
// The parser must consume the whole input.
func Compile(g *Grammar, options ...CompileOption) (combo.Parser[rune, *Tree], error) {
	c := &compiler{
		grammar:     g,
		start:       g.Start,
		productions: map[string]parser{},
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return combo.Parser[rune, *Tree]{}, err
		}
	}
	check := *g
	if check.Start == "" {
		check.Start = c.start
	}
	if err := check.Validate(); err != nil {
		return combo.Parser[rune, *Tree]{}, fmt.Errorf("invalid grammar: %w", err)
	}
	for _, p := range g.Productions {
		body, err := c.compile(p.Expr)
		if err != nil {
			return combo.Parser[rune, *Tree]{}, fmt.Errorf("%s: %w", p.Name, err)
		}
		c.productions[p.Name] = c.production(p, body)
	}
	root := combo.SkipRight(c.productions[c.start], combo.End[rune]())
	return combo.Map(root, func(trees []*Tree) *Tree { return trees[0] }), nil
}

// production wraps body in a node of the Tree.
func (c *compiler) production(p *Production, body parser) parser {
	trimmed := c.trim && p.Lexical() && p.Name != c.start
	out := combo.New(func(cur combo.Cursor[rune]) combo.Result[[]*Tree] {
		r := body.Run(cur)
		if !r.Ok() || trimmed {
			return r
		}
		tree := &Tree{
			Name:     p.Name,
			Offset:   cur.Offset(),
			Length:   r.Length,
			Text:     string(cur.Remaining()[:r.Length]),
			Children: r.Value,
		}
		return combo.Success([]*Tree{tree}, r.Length)
	}).Name(p.Name)
	if c.memoize {
		out = out.Cache()
	}
	return out
}

func none[A any](A) []*Tree { return nil }

func (c *compiler) compile(n Node) (parser, error) {
	switch n := n.(type) {
	case *Reference:
		name := n.Name
		return combo.Lazy(func() parser { return c.productions[name] }), nil

	case *Disjunction:
		alternatives, err := c.compileAll(n.Nodes)
		if err != nil {
			return parser{}, err
		}
		if !c.noBacktrack {
			for i, alternative := range alternatives {
				alternatives[i] = alternative.Attempt()
			}
		}
		return combo.Choice(alternatives...), nil

	case *Sequence:
		nodes, err := c.compileAll(n.Nodes)
		if err != nil {
			return parser{}, err
		}
		if len(nodes) == 0 {
			return combo.Pure[rune]([]*Tree(nil)), nil
		}
		out := nodes[0]
		for _, next := range nodes[1:] {
			out = combo.Map(combo.AndThen(out, next), func(p combo.Pair[[]*Tree, []*Tree]) []*Tree {
				out := make([]*Tree, 0, len(p.Left)+len(p.Right))
				return append(append(out, p.Left...), p.Right...)
			})
		}
		return out, nil

	case *Literal:
		return combo.Map(combo.Tag(n.Text), none[string]), nil

	case *Range:
		return combo.Map(combo.ElmIn(n.Begin, n.End), none[rune]), nil

	case *Optional:
		body, err := c.compile(n.Node)
		if err != nil {
			return parser{}, err
		}
		return combo.Map(combo.Opt(body), func(o combo.Option[[]*Tree]) []*Tree { return o.Value }), nil

	case *Repetition:
		body, err := c.compile(n.Node)
		if err != nil {
			return parser{}, err
		}
		r := combo.AtLeast(n.Min)
		if n.Max >= 0 {
			r = combo.Between(n.Min, n.Max)
		}
		return combo.Map(combo.Repeat(body, r), flatten), nil

	case *Group:
		return c.compile(n.Node)

	case *Negation:
		body, err := c.compile(n.Node)
		if err != nil {
			return parser{}, err
		}
		return combo.Map(body.Not(), none[struct{}]), nil

	case *Lookahead:
		body, err := c.compile(n.Node)
		if err != nil {
			return parser{}, err
		}
		return combo.Map(body.Peek(), none[[]*Tree]), nil

	case *Any:
		return combo.Map(combo.ElmAny[rune](), none[rune]), nil

	case *Pattern:
		if _, err := regexp.Compile(n.Regex); err != nil {
			return parser{}, fmt.Errorf("invalid pattern: %w", err)
		}
		return combo.Map(combo.Regex[rune](n.Regex), none[string]), nil
	}
	return parser{}, fmt.Errorf("unsupported node type %T", n)
}

func (c *compiler) compileAll(nodes []Node) ([]parser, error) {
	out := make([]parser, 0, len(nodes))
	for _, n := range nodes {
		p, err := c.compile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func flatten(items [][]*Tree) []*Tree {
	var out []*Tree
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}
