package buffer

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Producers retry rejected writes until accepted; the single embedded
// consumer must then account for every value exactly once.
func TestCircularBuffer_MPSC_Checksum(t *testing.T) {
	b, err := NewCircularBuffer[int](6) // capacity 64, far below load
	if err != nil {
		t.Fatal(err)
	}
	producers := 10
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !b.Write(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	var receivedSum int64
	totalItems := int64(producers * itemsPerProducer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		received := int64(0)
		for received < totalItems {
			if val, ok := b.TryRead(); ok {
				receivedSum += int64(val)
				received++
			} else {
				runtime.Gosched()
			}
		}
	}()

	wg.Wait()
	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(10 * time.Second):
		t.Error("Timeout waiting for consumer")
	}
	if b.WriteCount() != uint64(totalItems) {
		t.Errorf("WriteCount %d, want %d", b.WriteCount(), totalItems)
	}
}

// Overwrite buffer under concurrent producers with capacity above the
// total write count: a pre-attached cursor drains the exact checksum.
func TestRingBuffer_MPSC_Checksum(t *testing.T) {
	b, err := NewRingBuffer[int](17) // capacity 131072 > total writes
	if err != nil {
		t.Fatal(err)
	}
	cur := b.GetCursor()
	producers := 10
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				b.Write(val)
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}
	wg.Wait()

	var receivedSum int64
	total := producers * itemsPerProducer
	for i := 0; i < total; i++ {
		val, ok := cur.TryRead()
		if !ok {
			t.Fatalf("read %d failed with all writes committed", i)
		}
		receivedSum += int64(val)
	}
	if sentSum != receivedSum {
		t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
	}
	if cur.LostCount() != 0 {
		t.Errorf("LostCount %d, want 0", cur.LostCount())
	}
}
