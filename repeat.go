package combo

import "fmt"

// BoundKind is the kind of one end of a Range.
type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind BoundKind
	N    int
}

// Range of repetition counts.
type Range struct {
	Start Bound
	End   Bound
}

// AtLeast n repetitions.
func AtLeast(n int) Range { return Range{Start: Bound{Included, n}} }

// AtMost m repetitions, inclusive.
func AtMost(m int) Range { return Range{End: Bound{Included, m}} }

// Between n and m repetitions, inclusive.
func Between(n, m int) Range { return Range{Start: Bound{Included, n}, End: Bound{Included, m}} }

// HalfOpen is at least n and fewer than m repetitions.
func HalfOpen(n, m int) Range { return Range{Start: Bound{Included, n}, End: Bound{Excluded, m}} }

// Exactly n repetitions.
func Exactly(n int) Range { return Between(n, n) }

// Any number of repetitions.
func Any() Range { return Range{} }

func (r Range) min() int {
	if r.Start.Kind == Unbounded {
		return 0
	}
	if r.Start.Kind == Excluded {
		return r.Start.N + 1
	}
	return r.Start.N
}

// full reports whether count items reach the upper bound.
func (r Range) full(count int) bool {
	switch r.End.Kind {
	case Included:
		return count >= r.End.N
	case Excluded:
		return count+1 >= r.End.N
	}
	return false
}

func (r Range) String() string {
	w := ""
	switch r.Start.Kind {
	case Included:
		w = fmt.Sprintf("%d", r.Start.N)
	case Excluded:
		w = fmt.Sprintf("%d", r.Start.N+1)
	}
	switch r.End.Kind {
	case Included:
		return w + "..=" + fmt.Sprintf("%d", r.End.N)
	case Excluded:
		return w + ".." + fmt.Sprintf("%d", r.End.N)
	}
	return w + ".."
}

// RepeatSep matches p repeatedly within r, with sep between matches.
//
// Matching is greedy and never retries. The loop stops at the upper bound, when sep
// fails, or when p fails after sep. In the last case the matched separator still
// counts towards the consumed length. Fewer than the minimum matches fail
// uncommitted.
//
// Any failure of p ends the loop, committed or not, so Many0Sep(Tag("ab"), sep)
// stops quietly before a partial "a". Without an upper bound the loop also stops
// once the minimum is met and a whole separator and item iteration consumed
// nothing.
func RepeatSep[I Element, A, S any](p Parser[I, A], r Range, sep Parser[I, S]) Parser[I, []A] {
	return repeat(p, r, func(c Cursor[I]) (int, bool) {
		s := sep.run(c)
		return s.Length, s.Err == nil
	})
}

// Repeat matches p repeatedly within r.
//
// Any failure of p ends the loop, committed or not: Many0(Tag("ab")) on "abac"
// matches one "ab" and leaves the committed partial match unreported. Without an
// upper bound the loop also stops once the minimum is met and an item consumed
// nothing.
func Repeat[I Element, A any](p Parser[I, A], r Range) Parser[I, []A] {
	return repeat(p, r, nil)
}

// Many0 matches p zero or more times. It never fails.
func Many0[I Element, A any](p Parser[I, A]) Parser[I, []A] { return Repeat(p, AtLeast(0)) }

// Many1 matches p one or more times.
func Many1[I Element, A any](p Parser[I, A]) Parser[I, []A] { return Repeat(p, AtLeast(1)) }

// ManyNM matches p between n and m times, inclusive.
func ManyNM[I Element, A any](p Parser[I, A], n, m int) Parser[I, []A] {
	return Repeat(p, Between(n, m))
}

// Count matches p exactly n times.
func Count[I Element, A any](p Parser[I, A], n int) Parser[I, []A] { return Repeat(p, Exactly(n)) }

// Many0Sep matches p zero or more times separated by sep.
func Many0Sep[I Element, A, S any](p Parser[I, A], sep Parser[I, S]) Parser[I, []A] {
	return RepeatSep(p, AtLeast(0), sep)
}

// Many1Sep matches p one or more times separated by sep.
func Many1Sep[I Element, A, S any](p Parser[I, A], sep Parser[I, S]) Parser[I, []A] {
	return RepeatSep(p, AtLeast(1), sep)
}

// ManyNMSep matches p between n and m times, inclusive, separated by sep.
func ManyNMSep[I Element, A, S any](p Parser[I, A], n, m int, sep Parser[I, S]) Parser[I, []A] {
	return RepeatSep(p, Between(n, m), sep)
}

// CountSep matches p exactly n times separated by sep.
func CountSep[I Element, A, S any](p Parser[I, A], n int, sep Parser[I, S]) Parser[I, []A] {
	return RepeatSep(p, Exactly(n), sep)
}

// repeat is the shared loop. sep, if not nil, runs before every match except the
// first and reports its consumed length and success.
func repeat[I Element, A any](p Parser[I, A], r Range, sep func(c Cursor[I]) (int, bool)) Parser[I, []A] {
	return New(func(c Cursor[I]) Result[[]A] {
		items := []A{}
		total := 0
		cur := c
		for !r.full(len(items)) {
			step := 0
			next := cur
			if sep != nil && len(items) > 0 {
				n, ok := sep(next)
				if !ok {
					break
				}
				step += n
				next = next.Advance(n)
			}
			item := p.run(next)
			if item.Err != nil {
				// A matched separator is not rolled back.
				total += step
				break
			}
			step += item.Length
			items = append(items, item.Value)
			total += step
			cur = next.Advance(item.Length)
			if step == 0 && r.End.Kind == Unbounded && len(items) >= r.min() && (sep == nil || len(items) > 1) {
				// An unbounded loop that made no progress would match identically forever.
				break
			}
		}
		if least := r.min(); len(items) < least {
			msg := fmt.Sprintf("expected repeat at least %d times, found %d times", least, len(items))
			return Failure[[]A](mismatch(c.offset+total, total, msg), Uncommitted)
		}
		return Success(items, total)
	})
}
