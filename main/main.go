package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/sharedstr"
)

// Heap profiling harness for the split path: simulates a long-running
// polling loop that re-splits a kernel-text sized blob every tick.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	blob := strings.Repeat("SomeKey:        123456 kB\n", 4096)
	for i := 0; i < 10000; i++ {
		s := sharedstr.New(blob)
		it := s.Split('\n')
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			e.Drop()
		}
		s.Drop()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
