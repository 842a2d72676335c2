// File: buffer/capacity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity validation shared by the bounded buffer types. Capacities are
// always powers of two so slot addressing is a single mask operation.

package buffer

import "github.com/momentics/hioload-buffers/api"

const (
	// DefaultCapacityExponent yields 2^16 = 65536 slots, comfortably
	// above common workloads.
	DefaultCapacityExponent = 16

	// maxCapacityExponent bounds a single buffer at 2^30 slots.
	maxCapacityExponent = 30
)

// capacityFromExponent converts an exponent k into 2^k slots, failing
// fast on non-positive or oversized exponents.
func capacityFromExponent(exponent int) (uint64, error) {
	if exponent <= 0 || exponent > maxCapacityExponent {
		return 0, api.NewError(api.ErrCodeInvalidCapacity,
			"capacity exponent out of range").
			WithContext("exponent", exponent).
			WithContext("max", maxCapacityExponent)
	}
	return 1 << uint(exponent), nil
}
