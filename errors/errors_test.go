package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorIsComparesType(t *testing.T) {
	err := NewArgsCount(3)

	assert.True(t, errors.Is(err, ErrArgsCount))
	assert.False(t, errors.Is(err, ErrArgsName))
	assert.Equal(t, MessageArgsCount, err.Error())
	assert.Equal(t, 3, err.Details["count"])
}

func TestArgsNameDetails(t *testing.T) {
	err := NewArgsName("level", "unknown level")

	assert.True(t, errors.Is(err, ErrArgsName))
	assert.Equal(t, "level", err.Details["field"])
	assert.Equal(t, MessageArgsName, err.Error())
}

func TestResourceUnwrapsCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/nope/out.log", Err: fs.ErrNotExist}
	err := NewResource("/nope/out.log", cause)

	assert.True(t, errors.Is(err, ErrResource))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "open /nope/out.log")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	plain := errors.New("boom")
	converted := FromError(plain)
	require.NotNil(t, converted)
	assert.Equal(t, ErrorTypeUnknown, converted.Type)
	assert.Same(t, plain, converted.InnerError)

	wrapped := fmt.Errorf("outer: %w", NewArgsCount(1))
	assert.Equal(t, ErrorTypeArgsCount, FromError(wrapped).Type)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"count", NewArgsCount(0), ErrorTypeArgsCount},
		{"name", NewArgsName("mode", "empty"), ErrorTypeArgsName},
		{"wrapped resource", fmt.Errorf("x: %w", NewResource("f", fs.ErrPermission)), ErrorTypeResource},
		{"plain", errors.New("plain"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}
