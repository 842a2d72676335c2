package buffer

import (
	"testing"

	"go.uber.org/goleak"
)

// Blocking reads must never leak parked goroutines past a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
