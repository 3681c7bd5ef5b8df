package sharedstr

import "sync/atomic"

// counter abstracts the live-view count so the two shared string
// variants can swap the refcount primitive without touching anything
// else in the buffer or view code.
type counter interface {
	retain()
	release() int32
}

// localCount is the single-goroutine counter. A buffer counted by
// localCount must never be touched from more than one goroutine.
type localCount struct {
	n int32
}

func (c *localCount) retain() { c.n++ }

func (c *localCount) release() int32 {
	c.n--
	return c.n
}

// syncCount is the atomic counter used by the Sync variant.
type syncCount struct {
	n atomic.Int32
}

func (c *syncCount) retain() { c.n.Add(1) }

func (c *syncCount) release() int32 { return c.n.Add(-1) }

// buffer is the backing storage shared by every view derived from one
// source. The bytes are never mutated after construction and are let go
// exactly when the last view releases its reference.
type buffer struct {
	data    []byte
	refs    counter
	release func([]byte)
}

// newBuffer takes ownership of data and starts the live count at one.
func newBuffer(data []byte, refs counter) *buffer {
	refs.retain()
	return &buffer{data: data, refs: refs}
}

func (b *buffer) retain() { b.refs.retain() }

// drop decrements the live count. On the transition to zero the storage
// reference is cleared and the release hook, if set, fires exactly once.
func (b *buffer) drop() {
	if b.refs.release() == 0 {
		if b.release != nil {
			b.release(b.data)
		}
		b.data = nil
	}
}
