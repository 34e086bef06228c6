package combo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runString[A any](p Parser[rune, A], input string) Result[A] {
	return p.ParseResult([]rune(input))
}

var digit = Map(ElmDigit[rune](), func(r rune) int { return int(r - '0') })

func subtract(rune) func(a, b int) int { return func(a, b int) int { return a - b } }

func TestOrTakesSecondAlternative(t *testing.T) {
	r := runString(Elm('a').Or(Elm('b')), "b")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, 'b', r.Value)
	assert.Equal(t, 1, r.Length)
}

func TestMany0SepDigits(t *testing.T) {
	p := Many0Sep(digit, Elm(','))
	r := runString(p, "1,2,3")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, []int{1, 2, 3}, r.Value)
	assert.Equal(t, 5, r.Length)

	r = runString(p, "")
	require.True(t, r.Ok())
	assert.Equal(t, []int{}, r.Value)
	assert.Equal(t, 0, r.Length)
}

func TestChainLeftSubtraction(t *testing.T) {
	r := runString(ChainLeft1(digit, Map(Elm('-'), subtract)), "9-3-2")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, 4, r.Value)
	assert.Equal(t, 5, r.Length)
}

func TestAttemptClearsCommitment(t *testing.T) {
	r := runString(Tag("abc").Attempt().Or(Tag("abd")), "abd")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, "abd", r.Value)
	assert.Equal(t, 3, r.Length)

	r = runString(Tag("abc").Or(Tag("abd")), "abd")
	require.False(t, r.Ok())
	assert.Equal(t, Committed, r.Status)
	assert.Equal(t, 2, r.Err.Offset)
}

func TestRegexAnchored(t *testing.T) {
	p := Regex[rune]("a.*c$")
	r := runString(p, "xbc")
	require.False(t, r.Ok())
	assert.Equal(t, Mismatch, r.Err.Kind)

	r = runString(p, "abc")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, "abc", r.Value)
	assert.Equal(t, 3, r.Length)
}

func TestZeroWidthCombinators(t *testing.T) {
	a := Tag("ab")
	for _, input := range []string{"", "a", "ab", "abab", "ba"} {
		t.Run(input, func(t *testing.T) {
			if r := runString(a.Not(), input); r.Ok() {
				assert.Equal(t, 0, r.Length)
			} else {
				assert.Equal(t, Uncommitted, r.Status)
			}
			r := runString(a.Exists(), input)
			require.True(t, r.Ok())
			assert.Equal(t, 0, r.Length)
			if p := runString(a.Peek(), input); p.Ok() {
				assert.Equal(t, 0, p.Length)
				assert.Equal(t, "ab", p.Value)
			} else {
				assert.Equal(t, Uncommitted, p.Status)
			}
		})
	}
}

func TestFlatMapCommitsAfterConsuming(t *testing.T) {
	uncommitted := func(rune) Parser[rune, rune] {
		return Fail[rune, rune](Errorf(0, "nope"), Uncommitted)
	}
	r := runString(FlatMap(Elm('a'), uncommitted), "a")
	require.False(t, r.Ok())
	assert.Equal(t, Committed, r.Status)

	r = runString(FlatMap(Elm('a'), func(rune) Parser[rune, rune] { return Elm('b') }), "ac")
	require.False(t, r.Ok())
	assert.Equal(t, Committed, r.Status)
	assert.Equal(t, 1, r.Err.Offset)

	// Nothing consumed, the continuation's own status stands.
	r = runString(FlatMap(Pure[rune](1), func(int) Parser[rune, rune] { return Elm('b') }), "c")
	require.False(t, r.Ok())
	assert.Equal(t, Uncommitted, r.Status)

	r2 := runString(FlatMap(Elm('a'), func(a rune) Parser[rune, string] {
		return Map(Elm('b'), func(b rune) string { return string([]rune{a, b}) })
	}), "ab")
	require.True(t, r2.Ok())
	assert.Equal(t, "ab", r2.Value)
	assert.Equal(t, 2, r2.Length)
}

func TestOrBoundary(t *testing.T) {
	calls := 0
	right := New(func(c Cursor[rune]) Result[string] {
		calls++
		assert.Equal(t, 0, c.Offset())
		return Success("right", 0)
	})
	r := runString(Tag("ab").Or(right), "ax")
	require.False(t, r.Ok())
	assert.Equal(t, 0, calls)

	r = runString(Tag("ab").Or(right), "xx")
	require.True(t, r.Ok())
	assert.Equal(t, "right", r.Value)
	assert.Equal(t, 1, calls)
}

func TestChoice(t *testing.T) {
	p := Choice(Tag("let").Attempt(), Tag("lambda").Attempt(), Tag("l"))
	for input, expected := range map[string]string{"let": "let", "lambda": "lambda", "lx": "l"} {
		r := runString(p, input)
		require.True(t, r.Ok(), "%s: %v", input, r.Err)
		assert.Equal(t, expected, r.Value)
	}
	r := runString(p, "x")
	require.False(t, r.Ok())
	assert.Equal(t, Uncommitted, r.Status)

	r = runString(Choice[rune, string](), "x")
	require.False(t, r.Ok())
}

func TestFunctorLaw(t *testing.T) {
	f := func(r rune) int { return int(r) }
	g := func(i int) int { return i * 2 }
	left := Map(Map(ElmAny[rune](), f), g)
	right := Map(ElmAny[rune](), func(r rune) int { return g(f(r)) })
	for _, input := range []string{"", "a", "z9"} {
		assert.Equal(t, runString(right, input), runString(left, input))
	}
}

func TestFilter(t *testing.T) {
	p := ElmAny[rune]().Filter(IsUpper[rune])
	r := runString(p, "A")
	require.True(t, r.Ok())
	assert.Equal(t, 'A', r.Value)

	r = runString(p, "a")
	require.False(t, r.Ok())
	assert.Equal(t, Uncommitted, r.Status)
	assert.Equal(t, 0, r.Err.Length)

	r = runString(ElmAny[rune]().FilterNot(IsUpper[rune]), "A")
	require.False(t, r.Ok())
}

func TestSequences(t *testing.T) {
	r := runString(AndThen(Elm('a'), Elm('b')), "ab")
	require.True(t, r.Ok())
	assert.Equal(t, Pair[rune, rune]{'a', 'b'}, r.Value)

	r2 := runString(SkipLeft(Elm('a'), Elm('b')), "ab")
	require.True(t, r2.Ok())
	assert.Equal(t, 'b', r2.Value)
	assert.Equal(t, 2, r2.Length)

	r2 = runString(SkipRight(Elm('a'), Elm('b')), "ab")
	require.True(t, r2.Ok())
	assert.Equal(t, 'a', r2.Value)

	paren := Surround(Elm('('), digit, Elm(')'))
	r3 := runString(paren, "(7)")
	require.True(t, r3.Ok())
	assert.Equal(t, 7, r3.Value)
	assert.Equal(t, 3, r3.Length)

	r3 = runString(paren, "(7")
	require.False(t, r3.Ok())
	assert.Equal(t, Committed, r3.Status)
	assert.True(t, errors.Is(r3.Err, &ParseError{Kind: Incomplete}))
}

func TestOpt(t *testing.T) {
	p := Opt(Tag("ab"))
	r := runString(p, "ab")
	require.True(t, r.Ok())
	assert.Equal(t, Some("ab"), r.Value)

	r = runString(p, "ac")
	require.True(t, r.Ok())
	assert.Equal(t, None[string](), r.Value)
	assert.Equal(t, 0, r.Length)
}

func TestExpect(t *testing.T) {
	r := runString(Elm('a').Expect("an a"), "b")
	require.False(t, r.Ok())
	assert.Equal(t, Committed, r.Status)
	assert.Equal(t, "an a", r.Err.Message)

	inner := Tag("ab").Expect("unused")
	r2 := runString(inner, "ax")
	require.False(t, r2.Ok())
	assert.Contains(t, r2.Err.Message, "expected 'b'")
}

func TestLazyRecursion(t *testing.T) {
	var nested Parser[rune, int]
	nested = Map(Surround(Elm('('), Opt(Lazy(func() Parser[rune, int] { return nested })), Elm(')')), func(o Option[int]) int {
		return o.Value + 1
	})
	r := runString(nested, "((()))")
	require.True(t, r.Ok(), "%v", r.Err)
	assert.Equal(t, 3, r.Value)
	assert.Equal(t, 6, r.Length)
}

func TestPureAndFail(t *testing.T) {
	r := runString(Pure[rune]("x"), "abc")
	require.True(t, r.Ok())
	assert.Equal(t, "x", r.Value)
	assert.Equal(t, 0, r.Length)

	r = runString(PureLazy[rune](func() string { return "y" }), "")
	assert.Equal(t, "y", r.Value)

	r = runString(Fail[rune, string](Errorf(0, "boom"), Committed), "abc")
	require.False(t, r.Ok())
	assert.Equal(t, Committed, r.Status)
	assert.Equal(t, "boom", r.Err.Message)

	r = runString(FailLazy[rune, string](func(c Cursor[rune]) (*ParseError, CommittedStatus) {
		return Errorf(c.Offset(), "at %d", c.Offset()), Uncommitted
	}), "abc")
	require.False(t, r.Ok())
	assert.Equal(t, "at 0", r.Err.Message)
}

func TestParseEntryPoints(t *testing.T) {
	v, err := ParseString(SkipRight(Tag("hello"), End[rune]()), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = ParseString(SkipRight(Tag("hello"), End[rune]()), "hello!")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, `1:6: expected end of input, found '!' (near "!")`, perr.Error())

	b, err := ParseBytes(TagBytes("GET"), []byte("GET /"))
	require.NoError(t, err)
	assert.Equal(t, "GET", b)

	r := Elm('a').Run(NewCursor([]rune("a")))
	require.True(t, r.Ok())
}

func TestMapError(t *testing.T) {
	p := Elm('a').MapError(func(err *ParseError) *ParseError {
		return Errorf(err.Offset, "custom")
	})
	r := runString(p, "b")
	require.False(t, r.Ok())
	assert.Equal(t, "custom", r.Err.Message)
	assert.Equal(t, Uncommitted, r.Status)
}
