// Package sharedstr splits one owned, immutable byte buffer into many
// independently owned windows without copying. Every window shares the
// same refcounted backing buffer; the storage is released exactly when
// the last window drops. SharedString is the single-goroutine variant,
// SharedSyncString the cross-goroutine one; they expose the same
// operations and differ only in refcount bookkeeping.
package sharedstr

import (
	"bytes"
	"unsafe"
)

// SharedString is an independently owned window into a refcounted
// immutable buffer. Clone shares the bytes, Drop releases the share,
// Detach escapes into a standalone copy. Values must stay on one
// goroutine; use SharedSyncString to cross goroutines.
type SharedString struct {
	view
}

// New takes ownership of s and wraps it in a fresh buffer with a live
// count of one. The bytes are not copied.
func New(s string) SharedString {
	return SharedString{view: wholeView(newBuffer(stringBytes(s), new(localCount)))}
}

// NewBytes takes ownership of b; the caller must not modify it afterwards.
func NewBytes(b []byte) SharedString {
	return SharedString{view: wholeView(newBuffer(b, new(localCount)))}
}

// Clone returns another owner of the same window. Only the live count
// and the (offset, length) pair are touched; no bytes are copied.
func (s SharedString) Clone() SharedString {
	if s.buf != nil {
		s.buf.retain()
	}
	return s
}

// Slice returns the sub-window [from, to) as a new owner of the same
// buffer, failing with ErrOutOfBounds when the range does not fit.
func (s SharedString) Slice(from, to int) (SharedString, error) {
	v, err := s.view.slice(from, to)
	if err != nil {
		return SharedString{}, err
	}
	return SharedString{view: v}, nil
}

// Split returns a lazy, single-pass splitter over the visible bytes.
func (s SharedString) Split(delim byte) *Splitter {
	return &Splitter{state: newSplitState(s.view, delim)}
}

// Equal reports whether s and o expose identical bytes, regardless of
// their offsets or buffers.
func (s SharedString) Equal(o SharedString) bool {
	return bytes.Equal(s.bytes(), o.bytes())
}

// stringBytes aliases the bytes of s. The buffer never mutates its
// storage, so sharing a string's memory is safe and avoids the copy.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
