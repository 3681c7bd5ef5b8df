package sharedstr

import (
	"strings"
	"testing"
)

var benchInput = strings.Repeat("field,", 63) + "field"

func BenchmarkCloneDrop(b *testing.B) {
	s := New(benchInput)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Drop()
	}
	s.Drop()
}

func BenchmarkSyncCloneDrop(b *testing.B) {
	s := NewSync(benchInput)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Drop()
	}
	s.Drop()
}

func BenchmarkSplit(b *testing.B) {
	s := New(benchInput)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := s.Split(',')
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			e.Drop()
		}
	}
	s.Drop()
}

func BenchmarkStringsSplit(b *testing.B) {
	// stdlib comparison: allocates the whole element slice up front
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strings.Split(benchInput, ",")
	}
}

func BenchmarkDetach(b *testing.B) {
	s := New(benchInput)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Detach()
	}
	s.Drop()
}

func BenchmarkSliceEqual(b *testing.B) {
	s := New(benchInput)
	w, _ := s.Slice(0, 5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !w.EqualString("field") {
			b.Fatal("mismatch")
		}
	}
	w.Drop()
	s.Drop()
}
