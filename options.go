package combo

import "io"

// A ParseOption modifies the behaviour of a single parse.
type ParseOption func(ctx *parseContext)

// WithoutMemo disables memoization for the parse. Cached nodes evaluate their inner
// parser every time.
func WithoutMemo() ParseOption {
	return func(ctx *parseContext) {
		ctx.noMemo = true
	}
}

// WithMemoLimit bounds the memo table to at most n entries, evicting the least
// recently used. A limit of zero or less means unbounded.
func WithMemoLimit(n int) ParseOption {
	return func(ctx *parseContext) {
		if n > 0 {
			ctx.memoLimit = n
		}
	}
}

// Trace the parse to "w".
//
// Every named node (see Parser.Name) writes a line on entry and on exit.
func Trace(w io.Writer) ParseOption {
	return func(ctx *parseContext) {
		ctx.trace = w
	}
}
