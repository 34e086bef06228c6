package combo

import (
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Context for a single parse.
//
// It is created by Parse, shared by every Cursor derived from the initial one, and
// discarded when Parse returns.
type parseContext struct {
	memo      memoTable
	memoLimit int
	noMemo    bool
	trace     io.Writer
	depth     int
}

func newParseContext(options ...ParseOption) *parseContext {
	ctx := &parseContext{}
	for _, option := range options {
		option(ctx)
	}
	return ctx
}

// table returns the memo table, creating it on first use.
func (p *parseContext) table() memoTable {
	if p.memo == nil {
		if p.memoLimit > 0 {
			p.memo = newLRUMemo(p.memoLimit)
		} else {
			p.memo = mapMemo{}
		}
	}
	return p.memo
}

type memoKey struct {
	node   uint64
	offset int
}

type memoTable interface {
	get(key memoKey) (any, bool)
	put(key memoKey, value any)
	len() int
}

type mapMemo map[memoKey]any

func (m mapMemo) get(key memoKey) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapMemo) put(key memoKey, value any) { m[key] = value }
func (m mapMemo) len() int                    { return len(m) }

// An LRU bounded memo table. Evicted entries are simply recomputed.
type lruMemo struct {
	cache *lru.Cache[memoKey, any]
}

func newLRUMemo(size int) *lruMemo {
	cache, err := lru.New[memoKey, any](size)
	if err != nil {
		// Only returned for a non-positive size, which newParseContext rules out.
		panic(err)
	}
	return &lruMemo{cache: cache}
}

func (l *lruMemo) get(key memoKey) (any, bool) { return l.cache.Get(key) }
func (l *lruMemo) put(key memoKey, value any)  { l.cache.Add(key, value) }
func (l *lruMemo) len() int                    { return l.cache.Len() }
