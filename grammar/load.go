package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// ParseEBNF loads a Grammar from an EBNF string. See LoadEBNF.
func ParseEBNF(grammar string, start string) (*Grammar, error) {
	return LoadEBNF("<grammar>", strings.NewReader(grammar), start)
}

// LoadEBNF loads a Grammar from EBNF.
//
// The EBNF grammar syntax is as defined by "golang.org/x/exp/ebnf". If start is
// empty the first production in the source is the start production. Productions
// keep their source order.
//
// Here's an example grammar for a list of identifiers:
//
//	List = Ident { "," Ident } .
//	Ident = alpha { alpha | number } .
//	alpha = "a"…"z" | "A"…"Z" | "_" .
//	number = "0"…"9" .
func LoadEBNF(filename string, r io.Reader, start string) (*Grammar, error) {
	ast, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	productions := make([]*ebnf.Production, 0, len(ast))
	for _, production := range ast {
		productions = append(productions, production)
	}
	sort.Slice(productions, func(i, j int) bool {
		return productions[i].Pos().Offset < productions[j].Pos().Offset
	})
	if start == "" {
		if len(productions) == 0 {
			return nil, fmt.Errorf("%s: empty grammar", filename)
		}
		start = productions[0].Name.String
	}
	if err := ebnf.Verify(ast, start); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	g := &Grammar{Start: start}
	for _, production := range productions {
		expr, err := convert(production.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", filename, production.Name.String, err)
		}
		g.Productions = append(g.Productions, &Production{Name: production.Name.String, Expr: expr})
	}
	return g, nil
}

func convert(expr ebnf.Expression) (Node, error) {
	switch n := expr.(type) {
	case nil:
		return &Sequence{}, nil

	case ebnf.Alternative:
		nodes, err := convertAll(n)
		if err != nil {
			return nil, err
		}
		return &Disjunction{Nodes: nodes}, nil

	case ebnf.Sequence:
		nodes, err := convertAll(n)
		if err != nil {
			return nil, err
		}
		return &Sequence{Nodes: nodes}, nil

	case *ebnf.Name:
		return &Reference{Name: n.String}, nil

	case *ebnf.Token:
		return &Literal{Text: n.String}, nil

	case *ebnf.Range:
		begin, err := single(n.Begin)
		if err != nil {
			return nil, err
		}
		end, err := single(n.End)
		if err != nil {
			return nil, err
		}
		return &Range{Begin: begin, End: end}, nil

	case *ebnf.Group:
		body, err := convert(n.Body)
		if err != nil {
			return nil, err
		}
		return &Group{Node: body}, nil

	case *ebnf.Option:
		body, err := convert(n.Body)
		if err != nil {
			return nil, err
		}
		return &Optional{Node: body}, nil

	case *ebnf.Repetition:
		body, err := convert(n.Body)
		if err != nil {
			return nil, err
		}
		return &Repetition{Node: body, Max: Unlimited}, nil
	}
	return nil, fmt.Errorf("%s: unknown EBNF expression %T", expr.Pos(), expr)
}

func convertAll(exprs []ebnf.Expression) ([]Node, error) {
	nodes := make([]Node, 0, len(exprs))
	for _, expr := range exprs {
		node, err := convert(expr)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func single(t *ebnf.Token) (rune, error) {
	if utf8.RuneCountInString(t.String) != 1 {
		return 0, fmt.Errorf("%s: range bound %q must be a single character", t.Pos(), t.String)
	}
	r, _ := utf8.DecodeRuneInString(t.String)
	return r, nil
}
