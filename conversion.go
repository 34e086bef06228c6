package combo

import (
	"strconv"
)

// MapResult transforms the value of p with a fallible function.
//
// An error from f becomes an uncommitted Conversion failure spanning the input p
// matched.
func MapResult[I Element, A, B any](p Parser[I, A], f func(A) (B, error)) Parser[I, B] {
	return New(func(c Cursor[I]) Result[B] {
		r := p.run(c)
		if r.Err != nil {
			return failed[B](r)
		}
		v, err := f(r.Value)
		if err != nil {
			return Failure[B](conversion(c.offset, r.Length, err.Error()), Uncommitted)
		}
		return Success(v, r.Length)
	})
}

// MapOption transforms the value of p with a partial function.
//
// If f reports false the result is an uncommitted Conversion failure.
func MapOption[I Element, A, B any](p Parser[I, A], f func(A) (B, bool)) Parser[I, B] {
	return New(func(c Cursor[I]) Result[B] {
		r := p.run(c)
		if r.Err != nil {
			return failed[B](r)
		}
		v, ok := f(r.Value)
		if !ok {
			return Failure[B](conversion(c.offset, r.Length, "conversion failed"), Uncommitted)
		}
		return Success(v, r.Length)
	})
}

// Collect replaces the value of p with the input it consumed.
func Collect[I Element, A any](p Parser[I, A]) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		r := p.run(c)
		if r.Err != nil {
			return failed[[]I](r)
		}
		return Success(c.slice(r.Length), r.Length)
	})
}

// Discard the value of p.
func (p Parser[I, A]) Discard() Parser[I, struct{}] {
	return Map(p, func(A) struct{} { return struct{}{} })
}

// NextOffset replaces the value of p with the offset following the match.
func (p Parser[I, A]) NextOffset() Parser[I, int] {
	return New(func(c Cursor[I]) Result[int] {
		r := p.run(c)
		if r.Err != nil {
			return failed[int](r)
		}
		return Success(c.offset+r.Length, r.Length)
	})
}

// LastOffset replaces the value of p with the offset of the last symbol it
// consumed, or the start offset if it consumed nothing.
func (p Parser[I, A]) LastOffset() Parser[I, int] {
	return New(func(c Cursor[I]) Result[int] {
		r := p.run(c)
		if r.Err != nil {
			return failed[int](r)
		}
		if r.Length == 0 {
			return Success(c.offset, 0)
		}
		return Success(c.offset+r.Length-1, r.Length)
	})
}

// String converts a run of characters into a string.
func String[I Element](p Parser[I, []I]) Parser[I, string] {
	return Map(p, text[I])
}

// ParseInt converts the matched text of p into a base 10 integer.
func ParseInt[I Element, A any](p Parser[I, A]) Parser[I, int64] {
	return MapResult(String(Collect(p)), func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// ParseFloat converts the matched text of p into a float.
func ParseFloat[I Element, A any](p Parser[I, A]) Parser[I, float64] {
	return MapResult(String(Collect(p)), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}
