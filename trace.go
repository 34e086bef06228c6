package combo

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

const traceLookahead = 8

// traceEnter writes the entry line for a named node, if tracing is enabled.
func traceEnter[I Element](c Cursor[I], label string) {
	ctx := c.ctx
	if ctx == nil || ctx.trace == nil {
		return
	}
	rest := c.Remaining()
	if len(rest) > traceLookahead {
		rest = rest[:traceLookahead]
	}
	fmt.Fprintf(ctx.trace, "%s%s @%d %q\n", strings.Repeat(" ", ctx.depth), label, c.offset, text(rest))
	ctx.depth += 2
}

// traceExit writes the exit line for a named node, if tracing is enabled.
func traceExit[I Element, A any](c Cursor[I], label string, r Result[A]) {
	ctx := c.ctx
	if ctx == nil || ctx.trace == nil {
		return
	}
	ctx.depth -= 2
	fmt.Fprintf(ctx.trace, "%s%s = %s\n", strings.Repeat(" ", ctx.depth), label, outcome(r))
}

// outcome renders a Result for diagnostics.
func outcome[A any](r Result[A]) string {
	if r.Err != nil {
		return fmt.Sprintf("%s failure: %s", r.Status, r.Err)
	}
	return fmt.Sprintf("success %s (length %d)", repr.String(r.Value), r.Length)
}
