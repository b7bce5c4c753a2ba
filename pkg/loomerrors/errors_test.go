package loomerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesStack(t *testing.T) {
	err := New(ErrorTypeShape, "attribute values must be 1-dimensional")
	assert.Equal(t, ErrorTypeShape, err.Type)
	assert.NotEmpty(t, err.Stack)
	assert.Equal(t, "shape: attribute values must be 1-dimensional", err.Error())
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeValue, "bad element kind").
		WithDetail("kind", "object").
		WithDetail("index", 3)

	assert.Equal(t, "object", err.Details["kind"])
	assert.Equal(t, 3, err.Details["index"])
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrorTypeData, "decode failed")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "data: decode failed: boom", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeInternal, "ignored"))
}

func TestWrapKeepsExistingStack(t *testing.T) {
	inner := New(ErrorTypeType, "unsupported array-like input")
	outer := Wrap(inner, ErrorTypeType, "coercion failed")

	assert.Equal(t, inner.Stack, outer.Stack)
	assert.True(t, IsType(outer, ErrorTypeType))
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeShape, "no singleton axis")
	assert.True(t, IsType(err, ErrorTypeShape))
	assert.False(t, IsType(err, ErrorTypeValue))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeShape))
	assert.False(t, IsType(nil, ErrorTypeShape))
}
