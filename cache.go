package combo

import "sync/atomic"

var nodeIDs atomic.Uint64

// Cache memoizes p per start offset for the duration of one parse.
//
// The first Result computed at an offset is returned verbatim on every later visit
// to that offset. Memoization is scoped to a single Parse call and is disabled by
// WithoutMemo.
func (p Parser[I, A]) Cache() Parser[I, A] {
	id := nodeIDs.Add(1)
	return New(func(c Cursor[I]) Result[A] {
		ctx := c.context()
		if ctx.noMemo {
			return p.run(c)
		}
		key := memoKey{node: id, offset: c.offset}
		table := ctx.table()
		if v, ok := table.get(key); ok {
			return v.(Result[A])
		}
		r := p.run(c)
		table.put(key, r)
		return r
	})
}
