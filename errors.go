package sharedstr

import "errors"

var (
	// ErrOutOfBounds reports a window that does not fit its buffer.
	// Internal producers compute bounds from buffer facts and never
	// trigger it; seeing it from Slice means the requested range is wrong.
	ErrOutOfBounds = errors.New("window exceeds buffer bounds")

	// ErrInvalidEncoding reports bytes interpreted as text that are not
	// valid UTF-8. Recoverable: fall back to Bytes.
	ErrInvalidEncoding = errors.New("bytes are not valid utf-8")
)
