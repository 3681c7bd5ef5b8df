package sharedstr

import "bytes"

// splitState is the walk shared by both splitter variants: the remaining
// unconsumed window plus the delimiter. Single pass; once exhausted it
// never emits again. The state owns one share of the buffer so produced
// windows stay valid even if the source value drops mid-iteration.
type splitState struct {
	rest  view
	delim byte
	done  bool
}

func newSplitState(v view, delim byte) splitState {
	if v.buf != nil {
		v.buf.retain()
	}
	return splitState{rest: v, delim: delim}
}

// next emits the window before the next delimiter, or the whole
// remainder when none is left. Consecutive delimiters yield empty
// windows; so do delimiters at either end. Each emitted window carries
// its own share of the buffer.
func (st *splitState) next() (view, bool) {
	if st.done {
		return view{}, false
	}
	i := bytes.IndexByte(st.rest.bytes(), st.delim)
	if i < 0 {
		// Final element: the splitter's share transfers to the caller.
		out := st.rest
		st.rest = view{}
		st.done = true
		return out, true
	}
	out := view{buf: st.rest.buf, off: st.rest.off, n: i}
	if out.buf != nil {
		out.buf.retain()
	}
	st.rest.off += i + 1
	st.rest.n -= i + 1
	return out, true
}

// drop releases the splitter's share when iteration stops early. Safe to
// call repeatedly and after exhaustion.
func (st *splitState) drop() {
	if st.done {
		return
	}
	st.done = true
	st.rest.Drop()
	st.rest = view{}
}

// Splitter is a lazy, single-pass producer of the delimiter-separated
// windows of a SharedString. It is not restartable: after the final
// element every Next reports false.
type Splitter struct {
	state splitState
}

// Next returns the next element and whether one was produced. An input
// without the delimiter yields exactly one element, the whole input. The
// returned value owns its own share of the buffer and outlives both the
// splitter and the source.
func (it *Splitter) Next() (SharedString, bool) {
	v, ok := it.state.next()
	return SharedString{view: v}, ok
}

// Drop releases the splitter's hold on the buffer without consuming the
// remaining elements. Only needed when iteration stops early; an
// exhausted splitter has already released.
func (it *Splitter) Drop() { it.state.drop() }

// SyncSplitter is the splitter produced by SharedSyncString.Split. The
// emitted values share the source's atomically counted buffer. A single
// SyncSplitter is not safe for concurrent Next calls; the values it
// emits are safe to hand to other goroutines.
type SyncSplitter struct {
	state splitState
}

// Next returns the next element and whether one was produced.
func (it *SyncSplitter) Next() (SharedSyncString, bool) {
	v, ok := it.state.next()
	return SharedSyncString{view: v}, ok
}

// Drop releases the splitter's hold on the buffer without consuming the
// remaining elements.
func (it *SyncSplitter) Drop() { it.state.drop() }
