package combo

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// Option is the value of an optional parser.
type Option[A any] struct {
	Value A
	Valid bool
}

// Some returns a valid Option holding value.
func Some[A any](value A) Option[A] { return Option[A]{Value: value, Valid: true} }

// None returns an invalid Option.
func None[A any]() Option[A] { return Option[A]{} }

// Or tries q at the original position if p fails without committing.
//
// A committed failure of p is returned without trying q.
func (p Parser[I, A]) Or(q Parser[I, A]) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		r := p.run(c)
		if r.Err == nil || r.Status == Committed {
			return r
		}
		return q.run(c)
	})
}

// Choice tries each parser in order, as a chain of Or.
//
// If every alternative fails uncommitted the last error is returned.
func Choice[I Element, A any](parsers ...Parser[I, A]) Parser[I, A] {
	if len(parsers) == 0 {
		return New(func(c Cursor[I]) Result[A] {
			return Failure[A](mismatch(c.offset, 0, "no alternatives"), Uncommitted)
		})
	}
	return New(func(c Cursor[I]) Result[A] {
		var r Result[A]
		for _, p := range parsers {
			r = p.run(c)
			if r.Err == nil || r.Status == Committed {
				return r
			}
		}
		return r
	})
}

// Attempt demotes a committed failure of p to uncommitted, so that an enclosing Or
// may still try an alternative.
func (p Parser[I, A]) Attempt() Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		return p.run(c).WithUncommitted()
	})
}

// sequence runs p then q, combining their values with f.
func sequence[I Element, A, B, C any](p Parser[I, A], q Parser[I, B], f func(A, B) C) Parser[I, C] {
	return New(func(c Cursor[I]) Result[C] {
		left := p.run(c)
		if left.Err != nil {
			return failed[C](left)
		}
		right := q.run(c.Advance(left.Length))
		if right.Err != nil {
			return failed[C](right).WithCommittedFallback(left.Length != 0)
		}
		return Success(f(left.Value, right.Value), left.Length+right.Length)
	})
}

// AndThen runs p then q, returning both values.
func AndThen[I Element, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, Pair[A, B]] {
	return sequence(p, q, func(a A, b B) Pair[A, B] { return Pair[A, B]{Left: a, Right: b} })
}

// SkipLeft runs p then q, returning the value of q.
func SkipLeft[I Element, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, B] {
	return sequence(p, q, func(_ A, b B) B { return b })
}

// SkipRight runs p then q, returning the value of p.
func SkipRight[I Element, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, A] {
	return sequence(p, q, func(a A, _ B) A { return a })
}

// Surround runs open, p, close in sequence, returning the value of p.
func Surround[I Element, L, A, R any](open Parser[I, L], p Parser[I, A], close Parser[I, R]) Parser[I, A] {
	return SkipRight(SkipLeft(open, p), close)
}

// Opt makes p optional.
//
// A failure of p, committed or not, yields an invalid Option without consuming input.
func Opt[I Element, A any](p Parser[I, A]) Parser[I, Option[A]] {
	return Map(p.Attempt(), Some[A]).Or(Pure[I](None[A]()))
}

// Not succeeds, consuming nothing, only if p fails.
func (p Parser[I, A]) Not() Parser[I, struct{}] {
	return New(func(c Cursor[I]) Result[struct{}] {
		if r := p.run(c); r.Err != nil {
			return Success(struct{}{}, 0)
		}
		return Failure[struct{}](mismatch(c.offset, 0, "not predicate failed"), Uncommitted)
	})
}

// Exists reports whether p would succeed, consuming nothing.
func (p Parser[I, A]) Exists() Parser[I, bool] {
	return New(func(c Cursor[I]) Result[bool] {
		return Success(p.run(c).Err == nil, 0)
	})
}

// Peek runs p and returns its value without consuming input.
//
// A failure of p is always uncommitted.
func (p Parser[I, A]) Peek() Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		r := p.run(c)
		if r.Err != nil {
			return r.WithUncommitted()
		}
		r.Length = 0
		return r
	})
}

// Expect replaces an uncommitted failure of p with a committed one carrying message.
//
// A committed failure passes through unchanged.
func (p Parser[I, A]) Expect(message string) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		r := p.run(c)
		if r.Err == nil || r.Status == Committed {
			return r
		}
		return Failure[A](mismatch(r.Err.Offset, r.Err.Length, message), Committed)
	})
}
