// Package byteparse holds the low-level byte scanning shared by the
// higher-level parsers. A Cursor walks a slice forward only; failed
// multi-byte reads leave the position untouched.
package byteparse

import "strconv"

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSpace reports whether b is ASCII whitespace.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Cursor is a forward-only scanner over a byte slice.
type Cursor struct {
	b   []byte
	pos int
}

func New(b []byte) *Cursor { return &Cursor{b: b} }

func NewString(s string) *Cursor { return &Cursor{b: []byte(s)} }

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.pos }

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.b) {
		return 0, false
	}
	return c.b[c.pos], true
}

// Accept consumes the next byte when it equals want.
func (c *Cursor) Accept(want byte) bool {
	if c.pos < len(c.b) && c.b[c.pos] == want {
		c.pos++
		return true
	}
	return false
}

// TakeWhile consumes the longest run satisfying fn and returns it. The
// returned slice aliases the input.
func (c *Cursor) TakeWhile(fn func(byte) bool) []byte {
	start := c.pos
	for c.pos < len(c.b) && fn(c.b[c.pos]) {
		c.pos++
	}
	return c.b[start:c.pos]
}

// SkipSpace consumes leading ASCII whitespace.
func (c *Cursor) SkipSpace() {
	c.TakeWhile(IsSpace)
}

// Rest returns everything not yet consumed, without consuming it.
func (c *Cursor) Rest() []byte { return c.b[c.pos:] }

// Float consumes a decimal number: one or more digits, then optionally a
// dot and more digits. It reports false without advancing when the input
// does not start with a digit.
func (c *Cursor) Float() (float64, bool) {
	start := c.pos
	if len(c.TakeWhile(IsDigit)) == 0 {
		return 0, false
	}
	if c.Accept('.') {
		c.TakeWhile(IsDigit)
	}
	f, err := strconv.ParseFloat(string(c.b[start:c.pos]), 64)
	if err != nil {
		c.pos = start
		return 0, false
	}
	return f, true
}
