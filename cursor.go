package combo

// Cursor is an immutable position within an input.
//
// Moving is always expressed as producing a new Cursor with Advance. The input is
// borrowed for the duration of one parse and never modified.
type Cursor[I Element] struct {
	input  []I
	offset int
	ctx    *parseContext
}

// NewCursor returns a Cursor at the start of input.
func NewCursor[I Element](input []I) Cursor[I] {
	return Cursor[I]{input: input}
}

func newCursor[I Element](input []I, ctx *parseContext) Cursor[I] {
	return Cursor[I]{input: input, ctx: ctx}
}

// Input returns the complete input the Cursor points into.
func (c Cursor[I]) Input() []I { return c.input }

// Offset of the Cursor from the start of the input.
func (c Cursor[I]) Offset() int { return c.offset }

// Remaining returns the input from the Cursor to the end.
func (c Cursor[I]) Remaining() []I { return c.input[c.offset:] }

// Len returns the number of symbols remaining.
func (c Cursor[I]) Len() int { return len(c.input) - c.offset }

// AtEnd reports whether the input is exhausted.
func (c Cursor[I]) AtEnd() bool { return c.offset >= len(c.input) }

// Advance returns a new Cursor n symbols further on.
//
// n must have been reported by a successful Result produced at this Cursor. No
// bounds checking is performed here; leaf matchers are responsible for that.
func (c Cursor[I]) Advance(n int) Cursor[I] {
	c.offset += n
	return c
}

// slice returns the n symbols starting at the Cursor.
func (c Cursor[I]) slice(n int) []I {
	return c.input[c.offset : c.offset+n]
}

// context returns the per-parse context, creating one if this Cursor was built
// outside of Parse.
func (c *Cursor[I]) context() *parseContext {
	if c.ctx == nil {
		c.ctx = newParseContext()
	}
	return c.ctx
}
