package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageAndContext(t *testing.T) {
	err := NewError(ErrCodeInvalidCapacity, "capacity exponent out of range")
	assert.Equal(t, "capacity exponent out of range", err.Error())

	err = err.WithContext("exponent", 31).WithContext("max", 30)
	assert.Contains(t, err.Error(), "capacity exponent out of range")
	assert.Contains(t, err.Error(), "exponent")
	assert.Equal(t, 31, err.Context["exponent"])
	assert.Equal(t, 30, err.Context["max"])
}

func TestError_UnwrapMatchesSentinels(t *testing.T) {
	cases := []struct {
		code     ErrorCode
		sentinel error
	}{
		{ErrCodeInvalidArgument, ErrInvalidArgument},
		{ErrCodeInvalidCapacity, ErrInvalidCapacity},
		{ErrCodeNotSupported, ErrNotSupported},
	}
	for _, tc := range cases {
		err := NewError(tc.code, "boom")
		assert.ErrorIs(t, err, tc.sentinel, "code %d", tc.code)
	}

	internal := NewError(ErrCodeInternal, "boom")
	assert.NotErrorIs(t, internal, ErrInvalidArgument)
}

func TestError_WithContextOnZeroValue(t *testing.T) {
	err := &Error{Code: ErrCodeNotSupported, Message: "nope"}
	err = err.WithContext("kind", "queue")
	require.NotNil(t, err.Context)
	assert.Equal(t, "queue", err.Context["kind"])
}
