package combo

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// elmMatch builds a single-symbol matcher. "expected" describes what is accepted
// and is only rendered on failure.
func elmMatch[I Element](expected func() string, f func(I) bool) Parser[I, I] {
	return New(func(c Cursor[I]) Result[I] {
		if c.AtEnd() {
			return Failure[I](incomplete(c.offset), Uncommitted)
		}
		e := c.input[c.offset]
		if f(e) {
			return Success(e, 1)
		}
		return Failure[I](mismatch(c.offset, 1, "expected "+expected()+", found "+quote(e)), Uncommitted)
	})
}

func describe(s string) func() string { return func() string { return s } }

// ElmAny matches any single symbol.
func ElmAny[I Element]() Parser[I, I] {
	return elmMatch(describe("any symbol"), func(I) bool { return true })
}

// Elm matches exactly e.
func Elm[I Element](e I) Parser[I, I] {
	return elmMatch(func() string { return quote(e) }, func(actual I) bool { return actual == e })
}

// ElmPred matches a single symbol satisfying f.
func ElmPred[I Element](f func(I) bool) Parser[I, I] {
	return elmMatch(describe("symbol matching predicate"), f)
}

// ElmSpace matches a space or tab.
func ElmSpace[I Element]() Parser[I, I] { return elmMatch(describe("space"), IsSpace[I]) }

// ElmMultiSpace matches a space, tab, carriage return or newline.
func ElmMultiSpace[I Element]() Parser[I, I] {
	return elmMatch(describe("whitespace"), IsMultiSpace[I])
}

// ElmAlpha matches an ASCII letter.
func ElmAlpha[I Element]() Parser[I, I] { return elmMatch(describe("letter"), IsAlpha[I]) }

// ElmAlphaDigit matches an ASCII letter or digit.
func ElmAlphaDigit[I Element]() Parser[I, I] {
	return elmMatch(describe("letter or digit"), IsAlphaDigit[I])
}

// ElmDigit matches an ASCII decimal digit.
func ElmDigit[I Element]() Parser[I, I] { return elmMatch(describe("digit"), IsDigit[I]) }

// ElmHexDigit matches an ASCII hexadecimal digit.
func ElmHexDigit[I Element]() Parser[I, I] {
	return elmMatch(describe("hex digit"), IsHexDigit[I])
}

// ElmOctDigit matches an ASCII octal digit.
func ElmOctDigit[I Element]() Parser[I, I] {
	return elmMatch(describe("octal digit"), IsOctDigit[I])
}

// ElmOf matches any symbol in set.
func ElmOf[I Element](set []I) Parser[I, I] {
	return elmMatch(func() string { return "one of " + quoteSet(set) }, func(e I) bool { return contains(set, e) })
}

// NoneOf matches any symbol not in set.
func NoneOf[I Element](set []I) Parser[I, I] {
	return elmMatch(func() string { return "none of " + quoteSet(set) }, func(e I) bool { return !contains(set, e) })
}

// ElmIn matches a symbol in the inclusive range lo to hi.
func ElmIn[I Element](lo, hi I) Parser[I, I] {
	return elmMatch(func() string { return fmt.Sprintf("%s…%s", quote(lo), quote(hi)) }, func(e I) bool { return e >= lo && e <= hi })
}

// ElmFromUntil matches a symbol in the half-open range lo to hi, excluding hi.
func ElmFromUntil[I Element](lo, hi I) Parser[I, I] {
	return elmMatch(func() string { return fmt.Sprintf("%s…%s exclusive", quote(lo), quote(hi)) }, func(e I) bool { return e >= lo && e < hi })
}

func contains[I Element](set []I, e I) bool {
	for _, s := range set {
		if s == e {
			return true
		}
	}
	return false
}

func quoteSet[I Element](set []I) string {
	parts := make([]string, len(set))
	for i, e := range set {
		parts[i] = quote(e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// matchSeq matches n expected symbols with eq. A mismatch after the first symbol
// is committed.
func matchSeq[I Element, A any](value A, n int, at func(i int) I, eq func(want, got I) bool, expected func() string) Parser[I, A] {
	return New(func(c Cursor[I]) Result[A] {
		rest := c.Remaining()
		for i := 0; i < n; i++ {
			if i >= len(rest) {
				return Failure[A](incomplete(c.offset+i), Uncommitted)
			}
			if want := at(i); !eq(want, rest[i]) {
				msg := fmt.Sprintf("expected %s in %s, found %s", quote(want), expected(), quote(rest[i]))
				return Failure[A](mismatch(c.offset+i, 1, msg), committedIf(i != 0))
			}
		}
		return Success(value, n)
	})
}

func same[I Element](want, got I) bool { return want == got }

// Seq matches the exact sequence of symbols seq.
func Seq[I Element](seq []I) Parser[I, []I] {
	return matchSeq(seq, len(seq), func(i int) I { return seq[i] }, same[I], func() string { return quoteSeq(seq) })
}

// Tag matches the literal string s.
func Tag(s string) Parser[rune, string] {
	runes := []rune(s)
	return matchSeq(s, len(runes), func(i int) rune { return runes[i] }, same[rune], describe(fmt.Sprintf("%q", s)))
}

// TagNoCase matches the literal string s ignoring case.
func TagNoCase(s string) Parser[rune, string] {
	runes := []rune(s)
	return matchSeq(s, len(runes), func(i int) rune { return runes[i] }, equalFold, describe(fmt.Sprintf("%q", s)))
}

// TagBytes matches the literal string s against byte input.
func TagBytes(s string) Parser[byte, string] {
	return matchSeq(s, len(s), func(i int) byte { return s[i] }, same[byte], describe(fmt.Sprintf("%q", s)))
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}

func quoteSeq[I Element](seq []I) string {
	return fmt.Sprintf("%q", text(seq))
}

// Regex matches the regular expression pattern anchored at the current position,
// returning the matched text.
//
// The remaining input is matched as text, so a trailing "$" anchors to the end of
// input. Regex panics if pattern does not compile.
func Regex[I Element](pattern string) Parser[I, string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return New(func(c Cursor[I]) Result[string] {
		matched, n, ok := matchRegex(re, c.Remaining())
		if !ok {
			msg := fmt.Sprintf("expected match for /%s/, found %s", pattern, found(c.Remaining()))
			return Failure[string](mismatch(c.offset, 0, msg), Uncommitted)
		}
		return Success(matched, n)
	})
}

// matchRegex returns the matched text and the number of symbols it spans.
func matchRegex[I Element](re *regexp.Regexp, in []I) (string, int, bool) {
	switch in := any(in).(type) {
	case []byte:
		loc := re.FindIndex(in)
		if loc == nil {
			return "", 0, false
		}
		return string(in[:loc[1]]), loc[1], true
	case []rune:
		loc := re.FindReaderIndex(&runeReader{runes: in})
		if loc == nil {
			return "", 0, false
		}
		n := runeCount(in, loc[1])
		return string(in[:n]), n, true
	}
	s := text(in)
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", 0, false
	}
	if isByteElement[I]() {
		return s[:loc[1]], loc[1], true
	}
	return s[:loc[1]], utf8.RuneCountInString(s[:loc[1]]), true
}

// runeReader presents a rune slice to the regexp engine without encoding it.
type runeReader struct {
	runes []rune
	pos   int
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.runes) {
		return 0, 0, io.EOF
	}
	ch := r.runes[r.pos]
	r.pos++
	return ch, runeWidth(ch), nil
}

// runeCount converts a byte offset into the UTF-8 encoding of runes back into a
// number of runes.
func runeCount(runes []rune, bytes int) int {
	n := 0
	for i, size := 0, 0; i < len(runes) && size < bytes; i++ {
		size += runeWidth(runes[i])
		n++
	}
	return n
}

func runeWidth(r rune) int {
	if w := utf8.RuneLen(r); w > 0 {
		return w
	}
	return utf8.RuneLen(utf8.RuneError)
}
