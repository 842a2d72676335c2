package buffer

import (
	"testing"

	"pgregory.net/rapid"
)

// Randomized op sequences against a plain-slice model: the reject
// buffer must behave exactly like a bounded FIFO that refuses overflow.
func TestCircularBuffer_ModelProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		exp := rapid.IntRange(1, 6).Draw(t, "exponent")
		b, err := NewCircularBuffer[int](exp)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		capacity := 1 << exp

		var model []int
		var rejected uint64
		ops := rapid.IntRange(1, 500).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			if rapid.Bool().Draw(t, "isWrite") {
				v := rapid.Int().Draw(t, "value")
				accepted := b.Write(v)
				if len(model) < capacity {
					if !accepted {
						t.Fatalf("write rejected with %d/%d filled", len(model), capacity)
					}
					model = append(model, v)
				} else {
					if accepted {
						t.Fatalf("write accepted while full")
					}
					rejected++
				}
			} else {
				v, ok := b.TryRead()
				if len(model) == 0 {
					if ok {
						t.Fatalf("read from empty buffer succeeded")
					}
				} else {
					if !ok {
						t.Fatalf("read failed with %d items available", len(model))
					}
					if v != model[0] {
						t.Fatalf("read %d, model head %d", v, model[0])
					}
					model = model[1:]
				}
			}

			if got := b.Available(); got != uint64(len(model)) {
				t.Fatalf("Available %d, model %d", got, len(model))
			}
			if b.Available() > uint64(capacity) {
				t.Fatalf("Available exceeds capacity")
			}
			if b.RejectedCount() != rejected {
				t.Fatalf("RejectedCount %d, model %d", b.RejectedCount(), rejected)
			}
			if b.WriteCount() != b.ReadCount()+b.Available() {
				t.Fatalf("counter identity broken: w=%d r=%d a=%d",
					b.WriteCount(), b.ReadCount(), b.Available())
			}
		}
	})
}

// The overwrite buffer never rejects, and a cursor's counters always
// close against the shared write count.
func TestRingBufferCursor_CounterProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		exp := rapid.IntRange(1, 5).Draw(t, "exponent")
		b, err := NewRingBuffer[int](exp)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		capacity := uint64(1) << exp
		cur := b.GetCursor()

		next := 0
		ops := rapid.IntRange(1, 500).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			if rapid.Bool().Draw(t, "isWrite") {
				if !b.Write(next) {
					t.Fatalf("overwrite buffer rejected a write")
				}
				next++
			} else {
				cur.TryRead()
			}

			w := b.WriteCount()
			if w != cur.ReadCount()+cur.LostCount()+cur.Available() {
				t.Fatalf("counter identity broken: w=%d r=%d l=%d a=%d",
					w, cur.ReadCount(), cur.LostCount(), cur.Available())
			}
			if cur.Available() > capacity {
				t.Fatalf("Available %d exceeds capacity %d", cur.Available(), capacity)
			}
		}
	})
}
