package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/combo"
)

const identifiers = `
List = Ident { "," Ident } .
Ident = alpha { alpha | digit } .

alpha = "a"…"z" | "A"…"Z" | "_" .
digit = "0"…"9" .
`

func TestCompileEBNF(t *testing.T) {
	tests := []struct {
		name      string
		grammar   string
		options   []CompileOption
		source    string
		tree      string
		failBuild bool
		fail      bool
	}{
		{
			name:      "BadEBNF",
			grammar:   "Production = helper .",
			failBuild: true,
		},
		{
			name:    "EmptyProduction",
			grammar: `Extra = .`,
			source:  "",
			tree:    `Extra@0 ""`,
		},
		{
			name:    "EmptyProductionErrorsWithInput",
			grammar: `Extra = .`,
			source:  "a",
			fail:    true,
		},
		{
			name:    "ExtraInputErrors",
			grammar: `Extra = "b" .`,
			source:  "ba",
			fail:    true,
		},
		{
			name:    "TokenMatch",
			grammar: `Token = "token" .`,
			source:  "token",
			tree:    `Token@0 "token"`,
		},
		{
			name:    "TokenNoMatch",
			grammar: `Token = "token" .`,
			source:  "toke",
			fail:    true,
		},
		{
			name:    "RangeMatch",
			grammar: `Range = "a" … "z" .`,
			source:  "x",
			tree:    `Range@0 "x"`,
		},
		{
			name:    "RangeNoMatch",
			grammar: `Range = "a" … "z" .`,
			source:  "A",
			fail:    true,
		},
		{
			name:    "3rdAlternative",
			grammar: `Alternatives = "a" | "b" | "c" .`,
			source:  "c",
			tree:    `Alternatives@0 "c"`,
		},
		{
			name:    "AlternativeBacktracks",
			grammar: `Keyword = "let" | "lambda" .`,
			source:  "lambda",
			tree:    `Keyword@0 "lambda"`,
		},
		{
			name:    "AlternativeWithoutBacktracking",
			grammar: `Keyword = "let" | "lambda" .`,
			options: []CompileOption{NoBacktrack()},
			source:  "lambda",
			fail:    true,
		},
		{
			name:    "Group",
			grammar: `Group = ( "a" | "b" ) "c" .`,
			source:  "bc",
			tree:    `Group@0 "bc"`,
		},
		{
			name:    "OptionWithInnerMatch",
			grammar: `Option = [ "-" ] "1" .`,
			source:  "-1",
			tree:    `Option@0 "-1"`,
		},
		{
			name:    "OptionWithNoInnerMatch",
			grammar: `Option = [ "t" ] .`,
			source:  "",
			tree:    `Option@0 ""`,
		},
		{
			name:    "Repetition",
			grammar: `Digits = { "0" … "9" } .`,
			source:  "123",
			tree:    `Digits@0 "123"`,
		},
		{
			name:    "Recursion",
			grammar: `Expr = "(" [ Expr ] ")" .`,
			source:  "(())",
			tree: strings.Join([]string{
				`Expr@0 "(())"`,
				`  Expr@1 "()"`,
			}, "\n"),
		},
		{
			name:    "Identifiers",
			grammar: identifiers,
			source:  "ab,c1",
			tree: strings.Join([]string{
				`List@0 "ab,c1"`,
				`  Ident@0 "ab"`,
				`    alpha@0 "a"`,
				`    alpha@1 "b"`,
				`  Ident@3 "c1"`,
				`    alpha@3 "c"`,
				`    digit@4 "1"`,
			}, "\n"),
		},
		{
			name:    "IdentifiersTrimmed",
			grammar: identifiers,
			options: []CompileOption{Trim()},
			source:  "ab,c1",
			tree: strings.Join([]string{
				`List@0 "ab,c1"`,
				`  Ident@0 "ab"`,
				`  Ident@3 "c1"`,
			}, "\n"),
		},
		{
			name:    "IdentifiersMemoized",
			grammar: identifiers,
			options: []CompileOption{Memoize(), Trim()},
			source:  "x_1,y",
			tree: strings.Join([]string{
				`List@0 "x_1,y"`,
				`  Ident@0 "x_1"`,
				`  Ident@4 "y"`,
			}, "\n"),
		},
		{
			name:    "StartOverride",
			grammar: identifiers,
			options: []CompileOption{Start("Ident"), Trim()},
			source:  "abc",
			tree:    `Ident@0 "abc"`,
		},
		{
			name:      "UnknownStart",
			grammar:   identifiers,
			options:   []CompileOption{Start("Missing")},
			failBuild: true,
		},
		{
			name:    "TrailingSeparator",
			grammar: identifiers,
			source:  "ab,",
			fail:    true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var parser combo.Parser[rune, *Tree]
			g, err := ParseEBNF(test.grammar, "")
			if err == nil {
				parser, err = Compile(g, test.options...)
			}
			if test.failBuild {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tree, err := combo.ParseString(parser, test.source)
			if test.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.tree, tree.String())
		})
	}
}

func TestCompileErrorMessage(t *testing.T) {
	g, err := ParseEBNF(`Keyword = "let" | "lambda" .`, "")
	require.NoError(t, err)
	parser, err := Compile(g, NoBacktrack())
	require.NoError(t, err)
	_, err = combo.ParseString(parser, "lambda")
	require.EqualError(t, err, `1:2: failed to parse Keyword: expected 'e' in "let", found 'a' (near "ambda")`)

	g, err = ParseEBNF(identifiers, "")
	require.NoError(t, err)
	parser, err = Compile(g)
	require.NoError(t, err)
	_, err = combo.ParseString(parser, "ab,")
	require.EqualError(t, err, `1:3: expected end of input, found ',' (near ",")`)
}

func TestCompileExtendedNodes(t *testing.T) {
	tests := []struct {
		name    string
		grammar *Grammar
		source  string
		tree    string
		fail    bool
	}{
		{
			name:    "NegationAndDot",
			grammar: New("", Def("Comment", Lit("/*"), Rep(Not(Lit("*/")), Dot()), Lit("*/"))),
			source:  "/* a * b */",
			tree:    `Comment@0 "/* a * b */"`,
		},
		{
			name: "Lookahead",
			grammar: New("",
				Def("Statement", Ref("Word"), Lit(";")),
				Def("Word", Re(`[a-z]+`), And(Lit(";"))),
			),
			source: "abc;",
			tree: strings.Join([]string{
				`Statement@0 "abc;"`,
				`  Word@0 "abc"`,
			}, "\n"),
		},
		{
			name: "LookaheadFails",
			grammar: New("",
				Def("Statement", Ref("Word"), Lit(";")),
				Def("Word", Re(`[a-z]+`), And(Lit(";"))),
			),
			source: "abc,",
			fail:   true,
		},
		{
			name:    "BoundedRepetition",
			grammar: New("", Def("Hex", &Repetition{Node: &Range{Begin: '0', End: '9'}, Min: 2, Max: 3})),
			source:  "123",
			tree:    `Hex@0 "123"`,
		},
		{
			name:    "BoundedRepetitionTooLong",
			grammar: New("", Def("Hex", &Repetition{Node: &Range{Begin: '0', End: '9'}, Min: 2, Max: 3})),
			source:  "1234",
			fail:    true,
		},
		{
			name:    "BoundedRepetitionTooShort",
			grammar: New("", Def("Hex", &Repetition{Node: &Range{Begin: '0', End: '9'}, Min: 2, Max: 3})),
			source:  "1",
			fail:    true,
		},
		{
			name:    "AccentOutsideRange",
			grammar: New("", Def("Word", Rep1(Span('α', 'ω')))),
			source:  "λόγος",
			fail:    true,
		},
		{
			name:    "UnicodeRange",
			grammar: New("", Def("Word", Rep1(Span('α', 'ω')))),
			source:  "λογος",
			tree:    `Word@0 "λογος"`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parser, err := Compile(test.grammar)
			require.NoError(t, err)
			tree, err := combo.ParseString(parser, test.source)
			if test.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.tree, tree.String())
		})
	}
}

func TestCompileRejectsInvalidGrammar(t *testing.T) {
	_, err := Compile(New("", Def("A", Ref("B"))))
	require.EqualError(t, err, `invalid grammar: A: undefined production "B"`)

	_, err = Compile(New("", Def("A", Re("("))))
	require.Error(t, err)
	require.Contains(t, err.Error(), "A: invalid pattern")
}

func TestTreeOffsetsAndFind(t *testing.T) {
	g, err := ParseEBNF(identifiers, "")
	require.NoError(t, err)
	parser, err := Compile(g)
	require.NoError(t, err)
	tree, err := combo.ParseString(parser, "ab,c1")
	require.NoError(t, err)
	require.Equal(t, 5, tree.Length)

	idents := tree.Find("Ident")
	require.Len(t, idents, 2)
	require.Equal(t, 3, idents[1].Offset)
	require.Equal(t, 2, idents[1].Length)
	require.Equal(t, "c1", idents[1].Text)
	require.Len(t, tree.Find("alpha"), 3)
	require.Empty(t, tree.Find("Missing"))
}
