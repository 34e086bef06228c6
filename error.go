package combo

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// Mismatch indicates that the input did not match what was expected.
	Mismatch ErrorKind = iota
	// Conversion indicates that a post-parse transform of a matched value failed.
	Conversion
	// Incomplete indicates that the input ran out before a required match.
	Incomplete
)

func (k ErrorKind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case Conversion:
		return "conversion"
	case Incomplete:
		return "incomplete"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Position of an error within the input.
//
// Line and Column are only populated for errors returned from Parse, and only for
// character input.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError describes why a parse failed.
type ParseError struct {
	Kind ErrorKind
	// Offset of the failure from the start of the input.
	Offset int
	// Length of the input examined at Offset.
	Length int
	// Unadorned message, eg. "expected 'a', found 'b'".
	Message string
	// Label of the innermost named node (see Parser.Name) the failure occurred in.
	Label string
	// Cause is the error wrapped by a label.
	Cause *ParseError
	// Pos and Near are filled in by Parse once the error is final.
	Pos  Position
	Near string
}

// Errorf creates a new Mismatch error at the given offset.
func Errorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: Mismatch, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func mismatch(offset, length int, message string) *ParseError {
	return &ParseError{Kind: Mismatch, Offset: offset, Length: length, Message: message}
}

func conversion(offset, length int, message string) *ParseError {
	return &ParseError{Kind: Conversion, Offset: offset, Length: length, Message: message}
}

func incomplete(offset int) *ParseError {
	return &ParseError{Kind: Incomplete, Offset: offset, Message: "incomplete input"}
}

func (e *ParseError) Error() string {
	w := &strings.Builder{}
	if e.Pos.Line != 0 {
		w.WriteString(e.Pos.String())
	} else {
		fmt.Fprintf(w, "offset %d", e.Offset)
	}
	w.WriteString(": ")
	w.WriteString(e.Message)
	if e.Cause != nil {
		w.WriteString(": ")
		w.WriteString(e.Cause.Message)
	}
	if e.Near != "" {
		fmt.Fprintf(w, " (near %s)", e.Near)
	}
	return w.String()
}

// Unwrap returns the labelled cause, if any.
func (e *ParseError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Is matches any *ParseError with the same Kind, so that
// errors.Is(err, &ParseError{Kind: Incomplete}) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind && t.Message == ""
}

// withLabel returns a copy of e describing a failure inside the named node.
func (e *ParseError) withLabel(label string) *ParseError {
	if e.Label != "" {
		return e
	}
	return &ParseError{
		Kind:    e.Kind,
		Offset:  e.Offset,
		Length:  e.Length,
		Message: "failed to parse " + label,
		Label:   label,
		Cause:   e,
	}
}

const nearLimit = 16

// annotate fills in the position and an excerpt of the input for a final error.
func annotate[I Element](e *ParseError, input []I) *ParseError {
	out := *e
	offset := e.Offset
	if offset > len(input) {
		offset = len(input)
	}
	out.Pos = Position{Offset: offset}
	if !isByteElement[I]() {
		line, col := 1, 1
		for _, r := range input[:offset] {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		out.Pos.Line, out.Pos.Column = line, col
	}
	end := offset + nearLimit
	if end > len(input) {
		end = len(input)
	}
	if offset < end {
		near := text(input[offset:end])
		if end < len(input) {
			near += "..."
		}
		out.Near = strconv.Quote(near)
	}
	return &out
}

func quoteRune(r rune) string { return strconv.QuoteRune(r) }

func quoteByte(b byte) string {
	if b < 0x80 {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

func found[I Element](in []I) string {
	if len(in) == 0 {
		return "end of input"
	}
	return quote(in[0])
}
