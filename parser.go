package combo

import (
	"sync"
)

// A Parser is a reusable grammar node: a pure function from a Cursor to a Result.
//
// Parsers are built once, hold no input-specific state and may be shared by any
// number of combinators, including (through Lazy) themselves. A Parser may be
// evaluated concurrently from multiple goroutines, as each Parse call owns its own
// memo table.
type Parser[I Element, A any] struct {
	run func(c Cursor[I]) Result[A]
}

// New creates a Parser from a function.
//
// The function must report in Result.Length only symbols it actually examined,
// never more than Cursor.Len().
func New[I Element, A any](f func(c Cursor[I]) Result[A]) Parser[I, A] {
	return Parser[I, A]{run: f}
}

// Run evaluates the Parser at c.
func (p Parser[I, A]) Run(c Cursor[I]) Result[A] {
	if c.ctx == nil {
		c.ctx = newParseContext()
	}
	return p.run(c)
}

// ParseResult evaluates the Parser against input from offset zero and returns the
// complete Result.
func (p Parser[I, A]) ParseResult(input []I, options ...ParseOption) Result[A] {
	ctx := newParseContext(options...)
	r := p.run(newCursor(input, ctx))
	if r.Err != nil {
		r.Err = annotate(r.Err, input)
	}
	return r
}

// Parse input into a value.
//
// The returned error, if any, is a *ParseError.
func (p Parser[I, A]) Parse(input []I, options ...ParseOption) (A, error) {
	return p.ParseResult(input, options...).Unwrap()
}

// ParseString parses a string with a character Parser.
func ParseString[A any](p Parser[rune, A], s string, options ...ParseOption) (A, error) {
	return p.Parse([]rune(s), options...)
}

// ParseBytes parses a byte slice with a byte Parser.
func ParseBytes[A any](p Parser[byte, A], b []byte, options ...ParseOption) (A, error) {
	return p.Parse(b, options...)
}

// Pure always succeeds with value, consuming nothing.
func Pure[I Element, A any](value A) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		return Success(value, 0)
	})
}

// PureLazy always succeeds with the value returned by f, consuming nothing.
func PureLazy[I Element, A any](f func() A) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		return Success(f(), 0)
	})
}

// Unit always succeeds with the empty struct.
func Unit[I Element]() Parser[I, struct{}] {
	return Pure[I](struct{}{})
}

// Fail always fails with err and the given status.
func Fail[I Element, A any](err *ParseError, status CommittedStatus) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		return Failure[A](err, status)
	})
}

// FailLazy always fails with the error and status returned by f.
func FailLazy[I Element, A any](f func(c Cursor[I]) (*ParseError, CommittedStatus)) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		err, status := f(c)
		return Failure[A](err, status)
	})
}

// Lazy defers construction of a Parser until it is first evaluated.
//
// This is how recursive grammars are expressed:
//
//	var value combo.Parser[rune, any]
//	array := combo.Surround(combo.Elm('['), combo.Many0Sep(combo.Lazy(func() combo.Parser[rune, any] { return value }), combo.Elm(',')), combo.Elm(']'))
//
// The factory is called at most once.
func Lazy[I Element, A any](factory func() Parser[I, A]) Parser[I, A] {
	var (
		once   sync.Once
		parser Parser[I, A]
	)
	return New(func(c Cursor[I]) Result[A] {
		once.Do(func() { parser = factory() })
		return parser.run(c)
	})
}

// Map transforms the value of a successful parse.
func Map[I Element, A, B any](p Parser[I, A], f func(A) B) Parser[I, B] {
	return New(func(c Cursor[I]) Result[B] {
		return MapSuccess(p.run(c), f)
	})
}

// FlatMap runs p, then the parser returned by f at the position after p.
//
// If p consumed input, a failure of the continuation is committed regardless of
// the continuation's own status.
func FlatMap[I Element, A, B any](p Parser[I, A], f func(A) Parser[I, B]) Parser[I, B] {
	return New(func(c Cursor[I]) Result[B] {
		r := p.run(c)
		if r.Err != nil {
			return failed[B](r)
		}
		return f(r.Value).run(c.Advance(r.Length)).
			WithCommittedFallback(r.Length != 0).
			WithAddedLength(r.Length)
	})
}

// Filter rejects successful values for which pred returns false.
//
// A rejected match becomes an uncommitted, zero-width Mismatch.
func (p Parser[I, A]) Filter(pred func(A) bool) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		r := p.run(c)
		if r.Err != nil || pred(r.Value) {
			return r
		}
		return Failure[A](mismatch(c.offset, 0, "predicate not satisfied"), Uncommitted)
	})
}

// FilterNot rejects successful values for which pred returns true.
func (p Parser[I, A]) FilterNot(pred func(A) bool) Parser[I, A] {
	return p.Filter(func(a A) bool { return !pred(a) })
}

// MapError transforms the error of a failed parse, keeping its status.
func (p Parser[I, A]) MapError(f func(*ParseError) *ParseError) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		return p.run(c).MapError(f)
	})
}
