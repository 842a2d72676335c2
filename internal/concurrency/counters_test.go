package concurrency

import (
	"sync"
	"testing"
)

func TestPaddedUint64_Basic(t *testing.T) {
	var c PaddedUint64
	if c.Load() != 0 {
		t.Fatalf("expected zero, got %d", c.Load())
	}
	if got := c.Add(3); got != 3 {
		t.Fatalf("Add returned %d, want 3", got)
	}
	if !c.CompareAndSwap(3, 7) {
		t.Fatal("CAS with correct old value failed")
	}
	if c.CompareAndSwap(3, 9) {
		t.Fatal("CAS with stale old value succeeded")
	}
	if c.Load() != 7 {
		t.Fatalf("expected 7, got %d", c.Load())
	}
}

func TestPaddedUint64_ConcurrentAdd(t *testing.T) {
	var c PaddedUint64
	const goroutines, increments = 8, 10000
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if c.Load() != goroutines*increments {
		t.Fatalf("expected %d, got %d", goroutines*increments, c.Load())
	}
}
