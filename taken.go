package combo

import "fmt"

// Take consumes exactly n symbols.
func Take[I Element](n int) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		if c.Len() < n {
			return Failure[[]I](incomplete(c.offset), Uncommitted)
		}
		return Success(c.slice(n), n)
	})
}

// Skip consumes exactly n symbols, discarding them.
func Skip[I Element](n int) Parser[I, struct{}] {
	return New(func(c Cursor[I]) Result[struct{}] {
		if c.Len() < n {
			return Failure[struct{}](incomplete(c.offset), Uncommitted)
		}
		return Success(struct{}{}, n)
	})
}

// span returns the length of the longest prefix of in, up to limit symbols, whose
// symbols all satisfy f.
func span[I Element](in []I, limit int, f func(I) bool) int {
	n := 0
	for n < len(in) && n < limit && f(in[n]) {
		n++
	}
	return n
}

const unlimited = int(^uint(0) >> 1)

// TakeWhile0 consumes the longest prefix, possibly empty, of symbols satisfying f.
func TakeWhile0[I Element](f func(I) bool) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		n := span(c.Remaining(), unlimited, f)
		return Success(c.slice(n), n)
	})
}

// TakeWhile1 consumes the longest non-empty prefix of symbols satisfying f.
func TakeWhile1[I Element](f func(I) bool) Parser[I, []I] {
	return TakeWhileNM(1, unlimited, f)
}

// TakeWhileNM consumes between n and m symbols satisfying f, as many as possible.
func TakeWhileNM[I Element](n, m int, f func(I) bool) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		rest := c.Remaining()
		k := span(rest, m, f)
		if k < n {
			if k == len(rest) {
				return Failure[[]I](incomplete(c.offset+k), Uncommitted)
			}
			msg := fmt.Sprintf("expected at least %d matching symbols, found %d before %s", n, k, quote(rest[k]))
			return Failure[[]I](mismatch(c.offset+k, 1, msg), Uncommitted)
		}
		return Success(c.slice(k), k)
	})
}

// till returns the length of in up to and including the first symbol satisfying
// f, or -1.
func till[I Element](in []I, f func(I) bool) int {
	for i, e := range in {
		if f(e) {
			return i + 1
		}
	}
	return -1
}

// TakeTill0 consumes up to and including the first symbol satisfying f, or all
// remaining input if there is none.
func TakeTill0[I Element](f func(I) bool) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		n := till(c.Remaining(), f)
		if n < 0 {
			n = c.Len()
		}
		return Success(c.slice(n), n)
	})
}

// TakeTill1 consumes up to and including the first symbol satisfying f, failing if
// there is none.
func TakeTill1[I Element](f func(I) bool) Parser[I, []I] {
	return New(func(c Cursor[I]) Result[[]I] {
		n := till(c.Remaining(), f)
		if n < 0 {
			return Failure[[]I](incomplete(c.offset+c.Len()), Uncommitted)
		}
		return Success(c.slice(n), n)
	})
}

// Begin succeeds, consuming nothing, at the start of input.
func Begin[I Element]() Parser[I, struct{}] {
	return New(func(c Cursor[I]) Result[struct{}] {
		if c.offset != 0 {
			return Failure[struct{}](mismatch(c.offset, 0, "expected beginning of input"), Uncommitted)
		}
		return Success(struct{}{}, 0)
	})
}

// End succeeds, consuming nothing, at the end of input.
func End[I Element]() Parser[I, struct{}] {
	return New(func(c Cursor[I]) Result[struct{}] {
		if !c.AtEnd() {
			return Failure[struct{}](mismatch(c.offset, 1, "expected end of input, found "+found(c.Remaining())), Uncommitted)
		}
		return Success(struct{}{}, 0)
	})
}

// Empty always succeeds, consuming nothing.
func Empty[I Element]() Parser[I, struct{}] { return Unit[I]() }
