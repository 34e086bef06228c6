// Package combo is a parser combinator library. Grammars are assembled from small
// typed parsers and evaluated directly over a []byte or []rune input.
//
// A Parser[I, A] consumes symbols of type I and produces a value of type A. The
// primitives are:
//
//   - `Elm`, `ElmPred`, `ElmOf`, `ElmIn`... Match a single symbol.
//   - `Seq`, `Tag`, `TagNoCase` Match a literal sequence.
//   - `Regex` Match an anchored regular expression.
//   - `Take`, `TakeWhile0`, `TakeTill1`... Match runs of symbols.
//   - `Begin`, `End` Match the start or end of input.
//
// They are combined with:
//
//   - `Map`, `FlatMap` Transform and sequence.
//   - `AndThen`, `SkipLeft`, `SkipRight`, `Surround` Sequence.
//   - `p.Or(q)`, `Choice` Ordered choice.
//   - `p.Attempt()` Allow backtracking over p.
//   - `Opt`, `Many0`, `Many1Sep`, `Repeat`... Repetition.
//   - `ChainLeft1`, `ChainRight1` Binary operators by precedence climbing.
//   - `p.Not()`, `p.Exists()`, `p.Peek()` Zero width lookahead.
//   - `p.Cache()` Memoize per position (packrat parsing).
//
// Here's an arithmetic expression grammar.
//
//	var expr combo.Parser[rune, int]
//	number := combo.Map(combo.ParseInt(combo.Many1(combo.ElmDigit[rune]())), func(n int64) int { return int(n) })
//	term := number.Or(combo.Surround(combo.Elm('('), combo.Lazy(func() combo.Parser[rune, int] { return expr }), combo.Elm(')')))
//	mul := combo.Map(combo.Elm('*'), func(rune) func(a, b int) int { return func(a, b int) int { return a * b } })
//	add := combo.Map(combo.Elm('+'), func(rune) func(a, b int) int { return func(a, b int) int { return a + b } })
//	expr = combo.ChainLeft1(combo.ChainLeft1(term, mul), add)
//
// # Commitment
//
// A failure is either committed or uncommitted. Every primitive fails
// uncommitted, and a sequence that fails after consuming input fails committed.
// Or only tries its alternative after an uncommitted failure, so a committed
// failure is reported at the point where the input diverged from the grammar
// rather than as a generic "no alternative matched". Attempt is the only way to
// turn a committed failure back into an uncommitted one.
package combo
