package sharedstr

import (
	"bytes"
	"unicode/utf8"
	"unsafe"
)

// view is an (offset, length) window into a backing buffer. Construction
// validates bounds once; every access after that trusts the invariant
// off >= 0 && off+n <= len(buf.data).
type view struct {
	buf *buffer
	off int
	n   int
}

func wholeView(buf *buffer) view {
	return view{buf: buf, n: len(buf.data)}
}

// bytes returns the visible window without copying. The capacity is
// clipped so appends can never reach past the window.
func (v view) bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf.data[v.off : v.off+v.n : v.off+v.n]
}

// slice returns the sub-window [from, to) holding its own share of the
// buffer. The bytes are not copied.
func (v view) slice(from, to int) (view, error) {
	if v.buf == nil || from < 0 || from > to || to > v.n {
		return view{}, ErrOutOfBounds
	}
	v.buf.retain()
	return view{buf: v.buf, off: v.off + from, n: to - from}, nil
}

// Len returns the number of visible bytes.
func (v view) Len() int { return v.n }

// At returns the byte at index i. It panics when i is outside the window.
func (v view) At(i int) byte { return v.bytes()[i] }

// Bytes returns the visible bytes without copying. The slice aliases the
// shared buffer and must be treated as read-only.
func (v view) Bytes() []byte { return v.bytes() }

// Text returns the visible bytes as a string without copying. It fails
// with ErrInvalidEncoding when the window is not valid UTF-8; the buffer
// holds untyped bytes, so validity is checked only here, at the point of
// interpretation.
func (v view) Text() (string, error) {
	b := v.bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(&b[0], len(b)), nil
}

// String returns a copy of the visible bytes. Unlike Text it never fails
// and never aliases the shared buffer.
func (v view) String() string { return string(v.bytes()) }

// Detach copies the visible bytes into a standalone string decoupled
// from the shared buffer.
func (v view) Detach() string { return string(v.bytes()) }

// DetachBytes copies the visible bytes into a fresh slice the caller
// uniquely owns.
func (v view) DetachBytes() []byte {
	return append([]byte(nil), v.bytes()...)
}

// EqualString reports whether the visible bytes match s.
func (v view) EqualString(s string) bool {
	b := v.bytes()
	return len(b) == len(s) && string(b) == s
}

// EqualBytes reports whether the visible bytes match b.
func (v view) EqualBytes(b []byte) bool {
	return bytes.Equal(v.bytes(), b)
}

// Drop releases this value's share of the buffer. Call it at most once
// per owned value; Clone first for every additional owner. Drop on the
// zero value is a no-op.
func (v view) Drop() {
	if v.buf != nil {
		v.buf.drop()
	}
}
