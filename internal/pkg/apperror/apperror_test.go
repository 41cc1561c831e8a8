package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	notFound := New(KindNotFound, "overtime request not found")
	wrapped := fmt.Errorf("decide: %w", notFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.True(t, errors.Is(wrapped, notFound))
	assert.False(t, errors.Is(wrapped, ErrForbidden))
	assert.False(t, errors.Is(wrapped, New(KindNotFound, "employee not found")))
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("failed to get overtime request", cause)

	assert.Equal(t, "failed to get overtime request: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrStorage))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation errors", err: validator.ValidationErrors{{Field: "decision", Message: "decision is required"}}, want: KindValidation},
		{name: "wrapped forbidden", err: fmt.Errorf("x: %w", New(KindForbidden, "no")), want: KindForbidden},
		{name: "invalid transition", err: New(KindInvalidTransition, "already decided"), want: KindInvalidTransition},
		{name: "plain", err: errors.New("boom"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "employee not found", Message(fmt.Errorf("ctx: %w", New(KindNotFound, "employee not found"))))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
