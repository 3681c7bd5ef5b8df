package sharedstr

import "bytes"

// SharedSyncString is the cross-goroutine variant of SharedString: same
// operations, atomic live-count bookkeeping. Concurrent Clone and Drop
// on windows of one buffer cannot corrupt the count, double free or free
// early. The content itself needs no locking; it is never mutated.
type SharedSyncString struct {
	view
}

// NewSync takes ownership of s and wraps it in a fresh atomically
// counted buffer with a live count of one. The bytes are not copied.
func NewSync(s string) SharedSyncString {
	return SharedSyncString{view: wholeView(newBuffer(stringBytes(s), new(syncCount)))}
}

// NewSyncBytes takes ownership of b; the caller must not modify it
// afterwards.
func NewSyncBytes(b []byte) SharedSyncString {
	return SharedSyncString{view: wholeView(newBuffer(b, new(syncCount)))}
}

// Clone returns another owner of the same window. Safe to call
// concurrently with other Clone and Drop calls on shares of the buffer.
func (s SharedSyncString) Clone() SharedSyncString {
	if s.buf != nil {
		s.buf.retain()
	}
	return s
}

// Slice returns the sub-window [from, to) as a new owner of the same
// buffer, failing with ErrOutOfBounds when the range does not fit.
func (s SharedSyncString) Slice(from, to int) (SharedSyncString, error) {
	v, err := s.view.slice(from, to)
	if err != nil {
		return SharedSyncString{}, err
	}
	return SharedSyncString{view: v}, nil
}

// Split returns a lazy, single-pass splitter over the visible bytes.
func (s SharedSyncString) Split(delim byte) *SyncSplitter {
	return &SyncSplitter{state: newSplitState(s.view, delim)}
}

// Equal reports whether s and o expose identical bytes, regardless of
// their offsets or buffers.
func (s SharedSyncString) Equal(o SharedSyncString) bool {
	return bytes.Equal(s.bytes(), o.bytes())
}
